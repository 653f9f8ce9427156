package models

import (
	"inkwell/models/ctypes"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// ArticleIndex 文章搜索索引名
const ArticleIndex = "article_index"

// EsArticle 文章搜索文档，只保留搜索和列表展示需要的字段
type EsArticle struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Abstract     string        `json:"abstract"`
	Content      string        `json:"content"`
	Tags         []string      `json:"tags"`
	UserName     string        `json:"user_name"`
	CoverURL     string        `json:"cover_url"`
	LookCount    uint          `json:"look_count"`
	LikeCount    uint          `json:"like_count"`
	CommentCount uint          `json:"comment_count"`
	PublishedAt  ctypes.MyTime `json:"published_at"`
}

// EsArticleFromModel 从数据库模型构建搜索文档
func EsArticleFromModel(a *ArticleModel) *EsArticle {
	doc := &EsArticle{
		ID:           a.ID,
		Title:        a.Title,
		Abstract:     a.ExcerptOrDefault(),
		Content:      a.Content,
		Tags:         a.Tags,
		UserName:     a.User.DisplayName(),
		CoverURL:     a.CoverURL,
		LookCount:    a.LookCount,
		LikeCount:    a.LikeCount,
		CommentCount: a.CommentCount,
	}
	if a.PublishedAt != nil {
		doc.PublishedAt = *a.PublishedAt
	}
	return doc
}

// EsArticleMapping 索引映射
func EsArticleMapping() map[string]types.Property {
	return map[string]types.Property{
		"title":         types.NewTextProperty(),
		"abstract":      types.NewTextProperty(),
		"content":       types.NewTextProperty(),
		"tags":          types.NewKeywordProperty(),
		"user_name":     types.NewKeywordProperty(),
		"cover_url":     types.NewKeywordProperty(),
		"look_count":    types.NewIntegerNumberProperty(),
		"like_count":    types.NewIntegerNumberProperty(),
		"comment_count": types.NewIntegerNumberProperty(),
		"published_at":  types.NewDateProperty(),
	}
}
