package models

import "inkwell/models/ctypes"

// RelationBase 交互关系行的公共字段
// 关系行不走软删除，删除即取消，否则唯一索引会挡住再次点赞
type RelationBase struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	CreatedAt ctypes.MyTime `gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP" json:"created_at"`
}

// ArticleLike 文章点赞关系，(user_id, article_id) 唯一
type ArticleLike struct {
	RelationBase
	UserID    uint   `gorm:"not null;uniqueIndex:idx_like_user_article" json:"user_id"`
	ArticleID string `gorm:"size:32;not null;uniqueIndex:idx_like_user_article;index" json:"article_id"`

	User    UserModel    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Article ArticleModel `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
}

// TableName 指定表名
func (ArticleLike) TableName() string {
	return "article_likes"
}

// BookmarkModel 收藏关系，与点赞同构，但文章上不维护收藏计数
type BookmarkModel struct {
	RelationBase
	UserID    uint   `gorm:"not null;uniqueIndex:idx_bookmark_user_article" json:"user_id"`
	ArticleID string `gorm:"size:32;not null;uniqueIndex:idx_bookmark_user_article;index" json:"article_id"`

	User    UserModel    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Article ArticleModel `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
}

// TableName 指定表名
func (BookmarkModel) TableName() string {
	return "bookmarks"
}

// CommentLike 评论点赞关系
type CommentLike struct {
	RelationBase
	UserID    uint `gorm:"not null;uniqueIndex:idx_comment_like" json:"user_id"`
	CommentID uint `gorm:"not null;uniqueIndex:idx_comment_like" json:"comment_id"`

	User    UserModel    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comment CommentModel `gorm:"foreignKey:CommentID" json:"comment,omitempty"`
}

// TableName 指定表名
func (CommentLike) TableName() string {
	return "comment_likes"
}
