package interaction_ser

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// stubGateway 可编程的内存网关，记录每次调用
type stubGateway struct {
	mu    sync.Mutex
	calls []string

	likesCount int64
	liked      bool
	bookmarked bool

	insertLikeErr     error
	deleteLikeErr     error
	insertBookmarkErr error

	// 写入成功后改变回读结果，模拟服务端计数
	afterWriteCount int64
	blockWrite      chan struct{} // 不为nil时写操作阻塞在此
}

func (s *stubGateway) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
}

func (s *stubGateway) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *stubGateway) LikesCount(ctx context.Context, articleID string) (int64, error) {
	s.record("LikesCount")
	return s.likesCount, nil
}

func (s *stubGateway) HasLiked(ctx context.Context, userID uint, articleID string) (bool, error) {
	s.record("HasLiked")
	return s.liked, nil
}

func (s *stubGateway) HasBookmarked(ctx context.Context, userID uint, articleID string) (bool, error) {
	s.record("HasBookmarked")
	return s.bookmarked, nil
}

func (s *stubGateway) InsertLike(ctx context.Context, userID uint, articleID string) error {
	s.record("InsertLike")
	if s.blockWrite != nil {
		<-s.blockWrite
	}
	if s.insertLikeErr != nil {
		return s.insertLikeErr
	}
	s.liked = true
	s.likesCount = s.afterWriteCount
	return nil
}

func (s *stubGateway) DeleteLike(ctx context.Context, userID uint, articleID string) error {
	s.record("DeleteLike")
	if s.deleteLikeErr != nil {
		return s.deleteLikeErr
	}
	s.liked = false
	s.likesCount = s.afterWriteCount
	return nil
}

func (s *stubGateway) InsertBookmark(ctx context.Context, userID uint, articleID string) error {
	s.record("InsertBookmark")
	if s.insertBookmarkErr != nil {
		return s.insertBookmarkErr
	}
	s.bookmarked = true
	return nil
}

func (s *stubGateway) DeleteBookmark(ctx context.Context, userID uint, articleID string) error {
	s.record("DeleteBookmark")
	s.bookmarked = false
	return nil
}

func TestToggleLikeRequiresAuth(t *testing.T) {
	gw := &stubGateway{}
	tracker := NewTracker(gw)

	_, err := tracker.ToggleLike(context.Background(), 0, "a1")
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("未登录应返回ErrAuthRequired, got %v", err)
	}
	if gw.callCount() != 0 {
		t.Fatalf("未登录的写操作不应发起任何网关调用, calls=%v", gw.calls)
	}
}

func TestStatusAnonymousSkipsRelationReads(t *testing.T) {
	gw := &stubGateway{likesCount: 7, liked: true, bookmarked: true}
	tracker := NewTracker(gw)

	status, err := tracker.Status(context.Background(), 0, "a1")
	if err != nil {
		t.Fatal(err)
	}
	if status.IsLiked || status.IsBookmarked {
		t.Fatal("匿名用户的布尔状态应固定为false")
	}
	if status.LikesCount != 7 {
		t.Fatalf("LikesCount = %d", status.LikesCount)
	}
	for _, call := range gw.calls {
		if call == "HasLiked" || call == "HasBookmarked" {
			t.Fatalf("匿名用户不应查询关系行, calls=%v", gw.calls)
		}
	}
}

func TestToggleLikeAdoptsServerCount(t *testing.T) {
	// 服务端回读的计数与本地+1无关，tracker必须照单全收
	gw := &stubGateway{likesCount: 3, afterWriteCount: 42}
	tracker := NewTracker(gw)

	status, err := tracker.ToggleLike(context.Background(), 5, "a1")
	if err != nil {
		t.Fatal(err)
	}
	if !status.IsLiked {
		t.Fatal("点赞后IsLiked应为true")
	}
	if status.LikesCount != 42 {
		t.Fatalf("应采用服务端计数42而不是本地猜测, got %d", status.LikesCount)
	}
}

func TestToggleLikeRemovesExisting(t *testing.T) {
	gw := &stubGateway{liked: true, likesCount: 10, afterWriteCount: 9}
	tracker := NewTracker(gw)

	status, err := tracker.ToggleLike(context.Background(), 5, "a1")
	if err != nil {
		t.Fatal(err)
	}
	if status.IsLiked {
		t.Fatal("再次点赞应取消")
	}
	if status.LikesCount != 9 {
		t.Fatalf("LikesCount = %d", status.LikesCount)
	}
}

func TestToggleLikeWriteFailureLeavesStateUnchanged(t *testing.T) {
	gw := &stubGateway{likesCount: 3, insertLikeErr: errors.New("db down")}
	tracker := NewTracker(gw)

	_, err := tracker.ToggleLike(context.Background(), 5, "a1")
	if err == nil {
		t.Fatal("写失败应返回错误")
	}

	// 失败后忙标志已清除，且状态未被部分应用
	status, err := tracker.Status(context.Background(), 5, "a1")
	if err != nil {
		t.Fatal(err)
	}
	if status.IsLiked || status.LikesCount != 3 {
		t.Fatalf("失败的写入不应改变状态: %+v", status)
	}
}

func TestToggleLikeBusyGuard(t *testing.T) {
	block := make(chan struct{})
	gw := &stubGateway{blockWrite: block}
	tracker := NewTracker(gw)

	done := make(chan struct{})
	go func() {
		defer close(done)
		tracker.ToggleLike(context.Background(), 5, "a1")
	}()

	// 等第一次操作进入写阶段
	for gw.callCount() < 2 {
		time.Sleep(time.Millisecond)
	}

	if _, err := tracker.ToggleLike(context.Background(), 5, "a1"); !errors.Is(err, ErrBusy) {
		t.Fatalf("在途期间的第二次同类操作应返回ErrBusy, got %v", err)
	}

	// 收藏有独立的忙标志，不受点赞在途影响
	if _, err := tracker.ToggleBookmark(context.Background(), 5, "a1"); err != nil {
		t.Fatalf("点赞在途不应阻塞收藏, got %v", err)
	}

	close(block)
	<-done

	// 完成后可以再次操作
	if _, err := tracker.ToggleLike(context.Background(), 5, "a1"); err != nil {
		t.Fatalf("操作完成后忙标志应已清除, got %v", err)
	}
}

func TestToggleBookmarkDoesNotTouchLikeCountPath(t *testing.T) {
	gw := &stubGateway{likesCount: 5}
	tracker := NewTracker(gw)

	status, err := tracker.ToggleBookmark(context.Background(), 5, "a1")
	if err != nil {
		t.Fatal(err)
	}
	if !status.IsBookmarked {
		t.Fatal("收藏后IsBookmarked应为true")
	}
	for _, call := range gw.calls {
		if call == "InsertLike" || call == "DeleteLike" {
			t.Fatalf("收藏不应触发点赞写入, calls=%v", gw.calls)
		}
	}
}
