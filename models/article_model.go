package models

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"inkwell/global"
	"inkwell/models/ctypes"

	"gorm.io/gorm"
)

// ArticleModel 文章模型
type ArticleModel struct {
	ID          string               `gorm:"primaryKey;size:32" json:"id"`
	CreatedAt   ctypes.MyTime        `gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP;comment:创建时间" json:"created_at"`
	UpdatedAt   ctypes.MyTime        `gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP;comment:更新时间" json:"updated_at"`
	DeletedAt   gorm.DeletedAt       `gorm:"type:datetime NULL;index;comment:删除时间" json:"-"`
	Title       string               `gorm:"size:100;not null" json:"title"`                     // 文章标题
	Abstract    string               `gorm:"size:256" json:"abstract"`                           // 文章摘要
	Content     string               `gorm:"type:longtext" json:"content"`                       // 文章内容(markdown)
	CoverURL    string               `gorm:"size:256" json:"cover_url"`                          // 封面
	Tags        ctypes.StringList    `gorm:"type:json" json:"tags"`                              // 标签集合
	Status      ctypes.ArticleStatus `gorm:"size:16;default:draft;index" json:"status"`          // draft/published
	Featured    bool                 `json:"featured"`                                           // 是否推荐
	PublishedAt *ctypes.MyTime       `gorm:"type:datetime NULL" json:"published_at"`             // 发布时间
	LookCount   uint                 `json:"look_count"`                                         // 浏览量
	LikeCount   uint                 `json:"like_count"`                                         // 点赞量
	CommentCount uint                `json:"comment_count"`                                      // 评论量
	UserID      uint                 `gorm:"index" json:"user_id"`                               // 作者id
	User        UserModel            `gorm:"foreignKey:UserID" json:"user,omitempty"`            // 作者
}

// TableName 指定表名
func (ArticleModel) TableName() string {
	return "articles"
}

// IsPublished 文章是否已发布
func (a *ArticleModel) IsPublished() bool {
	return a.Status == ctypes.ArticlePublished
}

// ExcerptOrDefault 摘要为空时从正文截取
func (a *ArticleModel) ExcerptOrDefault() string {
	if strings.TrimSpace(a.Abstract) != "" {
		return a.Abstract
	}
	return TruncateRunes(a.Content, 120)
}

// TruncateRunes 按字符数截断字符串，多字节安全
func TruncateRunes(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}

// ReadTime 估算阅读时长，按每分钟400字
func (a *ArticleModel) ReadTime() string {
	count := utf8.RuneCountInString(a.Content)
	minutes := count / 400
	if minutes < 1 {
		minutes = 1
	}
	return FormatReadTime(minutes)
}

// FormatReadTime 格式化阅读时长
func FormatReadTime(minutes int) string {
	return strconv.Itoa(minutes) + " min read"
}

// PublishedArticles 获取全部已发布文章，按发布时间倒序
func PublishedArticles() ([]ArticleModel, error) {
	var articles []ArticleModel
	err := global.DB.Model(&ArticleModel{}).
		Where("status = ?", ctypes.ArticlePublished).
		Order("published_at DESC").
		Find(&articles).Error
	return articles, err
}
