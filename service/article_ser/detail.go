package article_ser

import (
	"context"
	"errors"

	"inkwell/global"
	"inkwell/models"
	"inkwell/models/ctypes"
	"inkwell/seed"
	"inkwell/service/tag_ser"

	"go.uber.org/zap"
)

// ErrNotFound 主数据源和兜底库都没有这篇文章
var ErrNotFound = errors.New("文章不存在")

// 相关文章数量上限
const relatedLimit = 3

// RelatedArticle 相关文章摘要
type RelatedArticle struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Excerpt     string        `json:"excerpt"`
	CoverURL    string        `json:"cover_url"`
	Tags        []string      `json:"tags"`
	PublishedAt ctypes.MyTime `json:"published_at"`
}

// Detail 文章展示记录
// 所有展示字段都保证非空，缺失的源数据在组装时补缺省值
type Detail struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Excerpt      string           `json:"excerpt"`
	Content      string           `json:"content"`
	CoverURL     string           `json:"cover_url"`
	Tags         []string         `json:"tags"`
	PublishedAt  string           `json:"published_at"`
	ReadTime     string           `json:"read_time"`
	LookCount    uint             `json:"look_count"`
	LikeCount    uint             `json:"like_count"`
	CommentCount uint             `json:"comment_count"`
	Featured     bool             `json:"featured"`
	AuthorName   string           `json:"author_name"`
	AuthorAvatar string           `json:"author_avatar"`
	AuthorBio    string           `json:"author_bio"`
	Related      []RelatedArticle `json:"related"`
	PopularTags  []string         `json:"popular_tags"`
}

// Loader 文章聚合加载器
type Loader struct {
	store Store
	seeds *seed.Repository
	log   *zap.SugaredLogger
}

// NewLoader 创建加载器，log为nil时静默
func NewLoader(store Store, seeds *seed.Repository, log *zap.SugaredLogger) *Loader {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Loader{store: store, seeds: seeds, log: log}
}

// DefaultLoader 基于数据库和内置文章库的加载器
func DefaultLoader() *Loader {
	return NewLoader(NewGormStore(), seed.Default(), global.Log)
}

// Detail 加载一篇文章的完整展示记录
// 查询出错直接返回错误；查无此行时落到兜底库；两边都没有返回ErrNotFound
func (l *Loader) Detail(ctx context.Context, id string) (*Detail, error) {
	article, err := l.store.PublishedByID(ctx, id)
	if err != nil {
		// 传输层错误不走兜底
		return nil, err
	}

	if article == nil {
		if record, ok := l.seeds.Find(id); ok {
			return detailFromSeed(record), nil
		}
		return nil, ErrNotFound
	}

	detail := detailFromModel(article)

	// 相关文章和热门标签尽力而为，失败只降级不报错
	all, err := l.store.PublishedAll(ctx)
	if err != nil {
		l.log.Warn("加载相关文章失败", zap.String("article_id", id), zap.String("error", err.Error()))
		return detail, nil
	}

	detail.Related = relatedOf(article, all)
	detail.PopularTags = tag_ser.RankTags(tag_ser.TagSetsOf(all, func(a models.ArticleModel) []string {
		return a.Tags
	}), tag_ser.DefaultLimit)

	return detail, nil
}

// relatedOf 取与当前文章至少共享一个标签的其他已发布文章，最多relatedLimit篇
func relatedOf(article *models.ArticleModel, all []models.ArticleModel) []RelatedArticle {
	related := make([]RelatedArticle, 0, relatedLimit)
	for _, candidate := range all {
		if candidate.ID == article.ID {
			continue
		}
		if !sharesTag(article.Tags, candidate.Tags) {
			continue
		}

		item := RelatedArticle{
			ID:       candidate.ID,
			Title:    candidate.Title,
			Excerpt:  candidate.ExcerptOrDefault(),
			CoverURL: coverOrDefault(candidate.CoverURL),
			Tags:     tagsOrEmpty(candidate.Tags),
		}
		if candidate.PublishedAt != nil {
			item.PublishedAt = *candidate.PublishedAt
		}
		related = append(related, item)

		if len(related) == relatedLimit {
			break
		}
	}
	return related
}

func sharesTag(a, b ctypes.StringList) bool {
	for _, tag := range a {
		if b.Contains(tag) {
			return true
		}
	}
	return false
}

// detailFromModel 从数据库模型组装展示记录，补全缺省值
func detailFromModel(a *models.ArticleModel) *Detail {
	detail := &Detail{
		ID:           a.ID,
		Title:        a.Title,
		Excerpt:      a.ExcerptOrDefault(),
		Content:      a.Content,
		CoverURL:     coverOrDefault(a.CoverURL),
		Tags:         tagsOrEmpty(a.Tags),
		ReadTime:     a.ReadTime(),
		LookCount:    a.LookCount,
		LikeCount:    a.LikeCount,
		CommentCount: a.CommentCount,
		Featured:     a.Featured,
		AuthorName:   a.User.DisplayName(),
		AuthorAvatar: a.User.AvatarOrDefault(),
		AuthorBio:    a.User.Bio,
		Related:      []RelatedArticle{},
		PopularTags:  []string{},
	}
	if a.PublishedAt != nil {
		detail.PublishedAt = a.PublishedAt.String()
	} else {
		detail.PublishedAt = a.CreatedAt.String()
	}
	return detail
}

// detailFromSeed 从兜底记录组装展示记录，仓库写入时字段已补全
func detailFromSeed(record seed.Article) *Detail {
	return &Detail{
		ID:           record.ID,
		Title:        record.Title,
		Excerpt:      record.Excerpt,
		Content:      record.Content,
		CoverURL:     record.CoverURL,
		Tags:         record.Tags,
		PublishedAt:  record.PublishedAt,
		ReadTime:     record.ReadTime,
		LikeCount:    record.LikeCount,
		CommentCount: record.CommentCount,
		Featured:     record.Featured,
		AuthorName:   record.AuthorName,
		AuthorAvatar: record.AuthorAvatar,
		Related:      []RelatedArticle{},
		PopularTags:  []string{},
	}
}

func coverOrDefault(url string) string {
	if url != "" {
		return url
	}
	if global.Config != nil && global.Config.Site.PlaceholderCover != "" {
		return global.Config.Site.PlaceholderCover
	}
	return seed.DefaultCover
}

func tagsOrEmpty(tags ctypes.StringList) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
