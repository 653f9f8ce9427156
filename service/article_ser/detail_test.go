package article_ser

import (
	"context"
	"errors"
	"testing"

	"inkwell/models"
	"inkwell/models/ctypes"
	"inkwell/seed"
)

// stubStore 内存文章存储
type stubStore struct {
	byID    map[string]*models.ArticleModel
	all     []models.ArticleModel
	byIDErr error
	allErr  error
}

func (s *stubStore) PublishedByID(ctx context.Context, id string) (*models.ArticleModel, error) {
	if s.byIDErr != nil {
		return nil, s.byIDErr
	}
	return s.byID[id], nil
}

func (s *stubStore) PublishedAll(ctx context.Context) ([]models.ArticleModel, error) {
	if s.allErr != nil {
		return nil, s.allErr
	}
	return s.all, nil
}

func publishedArticle(id, title string, tags ...string) *models.ArticleModel {
	return &models.ArticleModel{
		ID:      id,
		Title:   title,
		Content: "正文内容正文内容",
		Tags:    ctypes.StringList(tags),
		Status:  ctypes.ArticlePublished,
		User:    models.UserModel{Nickname: "作者"},
	}
}

func TestDetailTransportErrorSkipsFallback(t *testing.T) {
	store := &stubStore{byIDErr: errors.New("connection refused")}
	seeds := seed.NewRepository(seed.Article{ID: "s1", Title: "兜底", Content: "x"})
	loader := NewLoader(store, seeds, nil)

	// 即使兜底库里有同ID，传输层错误也不走兜底
	_, err := loader.Detail(context.Background(), "s1")
	if err == nil {
		t.Fatal("查询失败应返回错误而不是兜底记录")
	}
}

func TestDetailFallsBackToSeed(t *testing.T) {
	store := &stubStore{byID: map[string]*models.ArticleModel{}}
	seeds := seed.NewRepository(seed.Article{
		ID:      "s1",
		Title:   "兜底文章",
		Content: "这是兜底正文，摘要从这里截取。",
	})
	loader := NewLoader(store, seeds, nil)

	detail, err := loader.Detail(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}

	if detail.Title != "兜底文章" {
		t.Fatalf("Title = %q", detail.Title)
	}
	// 展示字段必须全部非空
	if detail.Excerpt == "" || detail.CoverURL == "" || detail.ReadTime == "" ||
		detail.AuthorName == "" || detail.AuthorAvatar == "" {
		t.Fatalf("兜底记录的展示字段不应为空: %+v", detail)
	}
	if detail.Tags == nil || detail.Related == nil || detail.PopularTags == nil {
		t.Fatal("切片字段应为空切片而不是nil")
	}
}

func TestDetailNotFoundInEitherSource(t *testing.T) {
	store := &stubStore{byID: map[string]*models.ArticleModel{}}
	loader := NewLoader(store, seed.NewRepository(), nil)

	detail, err := loader.Detail(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("应返回ErrNotFound, got %v", err)
	}
	if detail != nil {
		t.Fatal("not found时不应返回记录，更不应附带相关文章和热门标签")
	}
}

func TestDetailPopulatesRelatedAndPopular(t *testing.T) {
	main := publishedArticle("a1", "主文章", "tech", "ai")
	store := &stubStore{
		byID: map[string]*models.ArticleModel{"a1": main},
		all: []models.ArticleModel{
			*main,
			*publishedArticle("a2", "相关1", "tech"),
			*publishedArticle("a3", "相关2", "ai", "design"),
			*publishedArticle("a4", "无关", "cooking"),
			*publishedArticle("a5", "相关3", "tech"),
			*publishedArticle("a6", "相关4", "tech"),
		},
	}
	loader := NewLoader(store, seed.NewRepository(), nil)

	detail, err := loader.Detail(context.Background(), "a1")
	if err != nil {
		t.Fatal(err)
	}

	if len(detail.Related) != 3 {
		t.Fatalf("相关文章最多3篇, got %d", len(detail.Related))
	}
	for _, r := range detail.Related {
		if r.ID == "a1" {
			t.Fatal("相关文章不应包含自身")
		}
		if r.ID == "a4" {
			t.Fatal("无共享标签的文章不应出现在相关列表")
		}
	}

	if len(detail.PopularTags) == 0 {
		t.Fatal("主数据源命中时应计算热门标签")
	}
	if detail.PopularTags[0] != "tech" {
		t.Fatalf("tech出现最多应排第一, got %v", detail.PopularTags)
	}
}

func TestDetailRelatedFailureIsIsolated(t *testing.T) {
	main := publishedArticle("a1", "主文章", "tech")
	store := &stubStore{
		byID:   map[string]*models.ArticleModel{"a1": main},
		allErr: errors.New("timeout"),
	}
	loader := NewLoader(store, seed.NewRepository(), nil)

	detail, err := loader.Detail(context.Background(), "a1")
	if err != nil {
		t.Fatalf("相关文章查询失败不应影响主记录, got %v", err)
	}
	if detail.Title != "主文章" {
		t.Fatalf("Title = %q", detail.Title)
	}
	if len(detail.Related) != 0 || len(detail.PopularTags) != 0 {
		t.Fatal("降级时相关文章与热门标签应为空")
	}
}
