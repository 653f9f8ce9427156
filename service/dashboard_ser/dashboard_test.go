package dashboard_ser

import (
	"context"
	"errors"
	"testing"

	"inkwell/models"
	"inkwell/models/ctypes"
)

// stubStore 可编程的内存存储
type stubStore struct {
	profile    *models.UserModel
	authored   []models.ArticleModel
	bookmarked []models.ArticleModel
	liked      []models.ArticleModel

	profileErr    error
	authoredErr   error
	bookmarkedErr error
	likedErr      error
}

func (s *stubStore) Profile(ctx context.Context, userID uint) (*models.UserModel, error) {
	return s.profile, s.profileErr
}

func (s *stubStore) Authored(ctx context.Context, userID uint) ([]models.ArticleModel, error) {
	return s.authored, s.authoredErr
}

func (s *stubStore) Bookmarked(ctx context.Context, userID uint) ([]models.ArticleModel, error) {
	return s.bookmarked, s.bookmarkedErr
}

func (s *stubStore) Liked(ctx context.Context, userID uint) ([]models.ArticleModel, error) {
	return s.liked, s.likedErr
}

func sampleArticles(ids ...string) []models.ArticleModel {
	articles := make([]models.ArticleModel, 0, len(ids))
	for _, id := range ids {
		articles = append(articles, models.ArticleModel{
			ID:      id,
			Title:   "文章" + id,
			Content: "正文",
			Status:  ctypes.ArticlePublished,
		})
	}
	return articles
}

func TestOverviewLoadsAllSlots(t *testing.T) {
	store := &stubStore{
		profile:    &models.UserModel{Nickname: "小明", Bio: "写点东西"},
		authored:   sampleArticles("a1", "a2"),
		bookmarked: sampleArticles("b1"),
		liked:      sampleArticles("c1", "c2", "c3"),
	}
	loader := NewLoader(store, nil)

	overview := loader.Overview(context.Background(), 5)

	if overview.Profile == nil || overview.Profile.Name != "小明" {
		t.Fatalf("Profile = %+v", overview.Profile)
	}
	if len(overview.Authored) != 2 || len(overview.Bookmarked) != 1 || len(overview.Liked) != 3 {
		t.Fatalf("板块数量不对: %d/%d/%d",
			len(overview.Authored), len(overview.Bookmarked), len(overview.Liked))
	}
	if len(overview.Failed) != 0 {
		t.Fatalf("不应有失败板块: %v", overview.Failed)
	}
}

func TestOverviewIsolatesSlotFailure(t *testing.T) {
	// 收藏板块失败，其余三个板块照常返回
	store := &stubStore{
		profile:       &models.UserModel{Nickname: "小明"},
		authored:      sampleArticles("a1"),
		bookmarkedErr: errors.New("timeout"),
		liked:         sampleArticles("c1"),
	}
	loader := NewLoader(store, nil)

	overview := loader.Overview(context.Background(), 5)

	if overview.Profile == nil {
		t.Fatal("profile板块不应受收藏失败影响")
	}
	if len(overview.Authored) != 1 || len(overview.Liked) != 1 {
		t.Fatal("其余板块不应受收藏失败影响")
	}
	if overview.Bookmarked == nil || len(overview.Bookmarked) != 0 {
		t.Fatalf("失败板块应为空切片: %v", overview.Bookmarked)
	}
	if len(overview.Failed) != 1 || overview.Failed[0] != "bookmarked" {
		t.Fatalf("Failed = %v", overview.Failed)
	}
}

func TestOverviewAllSlotsFailing(t *testing.T) {
	boom := errors.New("db down")
	store := &stubStore{profileErr: boom, authoredErr: boom, bookmarkedErr: boom, likedErr: boom}
	loader := NewLoader(store, nil)

	overview := loader.Overview(context.Background(), 5)

	if overview.Profile != nil {
		t.Fatal("profile失败时应为nil")
	}
	if len(overview.Failed) != 4 {
		t.Fatalf("四个板块都应记入Failed: %v", overview.Failed)
	}
}
