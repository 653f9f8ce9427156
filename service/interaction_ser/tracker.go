package interaction_ser

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrAuthRequired 未登录用户发起写操作，在发请求前就拦下
	ErrAuthRequired = errors.New("需要登录")
	// ErrBusy 同一用户对同一文章的同类操作还在进行中
	ErrBusy = errors.New("上一次操作还在进行中")
)

// Status 当前用户对一篇文章的交互状态
type Status struct {
	IsLiked      bool  `json:"is_liked"`
	IsBookmarked bool  `json:"is_bookmarked"`
	LikesCount   int64 `json:"likes_count"`
}

// Tracker 文章交互服务
// 写入后不做本地加减，一律回读数据库，以服务端计数为准
type Tracker struct {
	gateway Gateway

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewTracker 创建交互服务实例
func NewTracker(gateway Gateway) *Tracker {
	return &Tracker{
		gateway:  gateway,
		inflight: make(map[string]struct{}),
	}
}

var (
	defaultTracker *Tracker
	defaultOnce    sync.Once
)

// Default 基于数据库网关的全局实例
func Default() *Tracker {
	defaultOnce.Do(func() {
		defaultTracker = NewTracker(NewGormGateway())
	})
	return defaultTracker
}

// Status 读取交互状态：点赞数、是否点赞、是否收藏
// 未登录用户只读计数，不查关系行，两个布尔值固定为false
func (t *Tracker) Status(ctx context.Context, viewerID uint, articleID string) (*Status, error) {
	count, err := t.gateway.LikesCount(ctx, articleID)
	if err != nil {
		return nil, err
	}

	status := &Status{LikesCount: count}
	if viewerID == 0 {
		return status, nil
	}

	liked, err := t.gateway.HasLiked(ctx, viewerID, articleID)
	if err != nil {
		return nil, err
	}
	bookmarked, err := t.gateway.HasBookmarked(ctx, viewerID, articleID)
	if err != nil {
		return nil, err
	}

	status.IsLiked = liked
	status.IsBookmarked = bookmarked
	return status, nil
}

// ToggleLike 点赞或取消点赞，返回写入后回读的最新状态
func (t *Tracker) ToggleLike(ctx context.Context, viewerID uint, articleID string) (*Status, error) {
	return t.toggle(ctx, viewerID, articleID, "like",
		t.gateway.HasLiked, t.gateway.InsertLike, t.gateway.DeleteLike)
}

// ToggleBookmark 收藏或取消收藏，与点赞互不阻塞
func (t *Tracker) ToggleBookmark(ctx context.Context, viewerID uint, articleID string) (*Status, error) {
	return t.toggle(ctx, viewerID, articleID, "bookmark",
		t.gateway.HasBookmarked, t.gateway.InsertBookmark, t.gateway.DeleteBookmark)
}

type existsFunc func(ctx context.Context, userID uint, articleID string) (bool, error)
type writeFunc func(ctx context.Context, userID uint, articleID string) error

func (t *Tracker) toggle(ctx context.Context, viewerID uint, articleID, kind string,
	exists existsFunc, insert, remove writeFunc) (*Status, error) {

	if viewerID == 0 {
		return nil, ErrAuthRequired
	}

	// 同类操作的忙标志按(操作,用户,文章)隔离，点赞在途不影响收藏
	key := fmt.Sprintf("%s:%d:%s", kind, viewerID, articleID)
	if !t.acquire(key) {
		return nil, ErrBusy
	}
	defer t.release(key)

	on, err := exists(ctx, viewerID, articleID)
	if err != nil {
		return nil, err
	}

	write := insert
	if on {
		write = remove
	}
	if err := write(ctx, viewerID, articleID); err != nil {
		// 写失败不回读，本地状态保持原样
		return nil, err
	}

	// 写入成功后无条件回读三个值，不信任本地的加减
	return t.Status(ctx, viewerID, articleID)
}

func (t *Tracker) acquire(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, busy := t.inflight[key]; busy {
		return false
	}
	t.inflight[key] = struct{}{}
	return true
}

func (t *Tracker) release(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inflight, key)
}
