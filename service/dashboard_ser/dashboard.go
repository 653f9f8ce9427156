package dashboard_ser

import (
	"context"
	"sync"

	"inkwell/global"
	"inkwell/models"

	"go.uber.org/zap"
)

// ProfileCard 仪表盘顶部的用户资料
type ProfileCard struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
	JoinedAt string `json:"joined_at"`
}

// ArticleCard 仪表盘列表里的文章摘要
type ArticleCard struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Excerpt      string   `json:"excerpt"`
	CoverURL     string   `json:"cover_url"`
	Tags         []string `json:"tags"`
	Status       string   `json:"status"`
	LookCount    uint     `json:"look_count"`
	LikeCount    uint     `json:"like_count"`
	CommentCount uint     `json:"comment_count"`
}

// Overview 仪表盘聚合数据
// 四个板块独立加载，某一块失败只置空该块并记入Failed
type Overview struct {
	Profile    *ProfileCard  `json:"profile"`
	Authored   []ArticleCard `json:"authored"`
	Bookmarked []ArticleCard `json:"bookmarked"`
	Liked      []ArticleCard `json:"liked"`
	Failed     []string      `json:"failed,omitempty"`
}

// Loader 仪表盘聚合加载器
type Loader struct {
	store Store
	log   *zap.SugaredLogger
}

// NewLoader 创建加载器，log为nil时静默
func NewLoader(store Store, log *zap.SugaredLogger) *Loader {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Loader{store: store, log: log}
}

// DefaultLoader 基于数据库的加载器
func DefaultLoader() *Loader {
	return NewLoader(NewGormStore(), global.Log)
}

// Overview 并行拉取四个板块
// 各板块失败互不影响，失败的板块名写入Failed，其余照常返回
func (l *Loader) Overview(ctx context.Context, userID uint) *Overview {
	overview := &Overview{
		Authored:   []ArticleCard{},
		Bookmarked: []ArticleCard{},
		Liked:      []ArticleCard{},
	}

	var mu sync.Mutex
	fail := func(slot string, err error) {
		l.log.Warn("仪表盘板块加载失败",
			zap.String("slot", slot),
			zap.Uint("user_id", userID),
			zap.String("error", err.Error()))
		mu.Lock()
		overview.Failed = append(overview.Failed, slot)
		mu.Unlock()
	}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		user, err := l.store.Profile(ctx, userID)
		if err != nil {
			fail("profile", err)
			return
		}
		overview.Profile = profileCardOf(user)
	}()

	go func() {
		defer wg.Done()
		articles, err := l.store.Authored(ctx, userID)
		if err != nil {
			fail("authored", err)
			return
		}
		overview.Authored = cardsOf(articles)
	}()

	go func() {
		defer wg.Done()
		articles, err := l.store.Bookmarked(ctx, userID)
		if err != nil {
			fail("bookmarked", err)
			return
		}
		overview.Bookmarked = cardsOf(articles)
	}()

	go func() {
		defer wg.Done()
		articles, err := l.store.Liked(ctx, userID)
		if err != nil {
			fail("liked", err)
			return
		}
		overview.Liked = cardsOf(articles)
	}()

	wg.Wait()
	return overview
}

func profileCardOf(user *models.UserModel) *ProfileCard {
	return &ProfileCard{
		ID:       user.ID,
		Name:     user.DisplayName(),
		Avatar:   user.AvatarOrDefault(),
		Bio:      user.Bio,
		JoinedAt: user.CreatedAt.String(),
	}
}

func cardsOf(articles []models.ArticleModel) []ArticleCard {
	cards := make([]ArticleCard, 0, len(articles))
	for _, a := range articles {
		tags := []string(a.Tags)
		if tags == nil {
			tags = []string{}
		}
		cards = append(cards, ArticleCard{
			ID:           a.ID,
			Title:        a.Title,
			Excerpt:      a.ExcerptOrDefault(),
			CoverURL:     a.CoverURL,
			Tags:         tags,
			Status:       string(a.Status),
			LookCount:    a.LookCount,
			LikeCount:    a.LikeCount,
			CommentCount: a.CommentCount,
		})
	}
	return cards
}
