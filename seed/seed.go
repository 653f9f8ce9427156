// Package seed 提供内置的兜底文章库
// 主数据源为空或查不到时，文章详情和首页用它托底
package seed

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// 缺省值
const (
	DefaultCover    = "/uploads/cover/default.png"
	DefaultAvatar   = "/uploads/avatar/default.png"
	DefaultReadTime = "5 min read"
	DefaultAuthor   = "匿名"
	excerptRunes    = 120
)

// Article 兜底文章记录，字段与线上文章对齐，可选字段入库时补全缺省值
type Article struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Excerpt      string   `json:"excerpt"`
	Content      string   `json:"content"`
	CoverURL     string   `json:"cover_url"`
	Tags         []string `json:"tags"`
	AuthorName   string   `json:"author_name"`
	AuthorAvatar string   `json:"author_avatar"`
	PublishedAt  string   `json:"published_at"`
	ReadTime     string   `json:"read_time"`
	LikeCount    uint     `json:"like_count"`
	CommentCount uint     `json:"comment_count"`
	Featured     bool     `json:"featured"`
}

// Repository 兜底文章仓库
// 显式的Add入口代替包级可变切片，写入可注入可测试
type Repository struct {
	mu       sync.RWMutex
	articles []Article
	index    map[string]int
}

// NewRepository 创建仓库并写入初始记录
func NewRepository(articles ...Article) *Repository {
	r := &Repository{
		index: make(map[string]int),
	}
	for _, a := range articles {
		r.Add(a)
	}
	return r
}

// Add 添加一条记录，缺省字段补全；同ID覆盖
func (r *Repository) Add(article Article) {
	article = normalize(article)

	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[article.ID]; ok {
		r.articles[i] = article
		return
	}
	r.index[article.ID] = len(r.articles)
	r.articles = append(r.articles, article)
}

// Find 按ID查找
func (r *Repository) Find(id string) (Article, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return Article{}, false
	}
	return r.articles[i], true
}

// All 返回全部记录的副本
func (r *Repository) All() []Article {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Article, len(r.articles))
	copy(out, r.articles)
	return out
}

// Len 记录条数
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.articles)
}

// normalize 补全可选字段，保证每条记录的展示字段都非空
func normalize(a Article) Article {
	if strings.TrimSpace(a.Excerpt) == "" {
		a.Excerpt = truncate(a.Content, excerptRunes)
	}
	if a.CoverURL == "" {
		a.CoverURL = DefaultCover
	}
	if a.AuthorName == "" {
		a.AuthorName = DefaultAuthor
	}
	if a.AuthorAvatar == "" {
		a.AuthorAvatar = DefaultAvatar
	}
	if a.ReadTime == "" {
		a.ReadTime = DefaultReadTime
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	return a
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

var (
	defaultRepo *Repository
	defaultOnce sync.Once
)

// Default 内置文章库的全局实例
func Default() *Repository {
	defaultOnce.Do(func() {
		defaultRepo = NewRepository(corpus...)
	})
	return defaultRepo
}
