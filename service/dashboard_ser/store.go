package dashboard_ser

import (
	"context"

	"inkwell/global"
	"inkwell/models"
	"inkwell/models/ctypes"
)

// Store 仪表盘各板块的数据入口
type Store interface {
	Profile(ctx context.Context, userID uint) (*models.UserModel, error)
	Authored(ctx context.Context, userID uint) ([]models.ArticleModel, error)
	Bookmarked(ctx context.Context, userID uint) ([]models.ArticleModel, error)
	Liked(ctx context.Context, userID uint) ([]models.ArticleModel, error)
}

// gormStore 基于MySQL的实现
type gormStore struct{}

// NewGormStore 创建数据库存储
func NewGormStore() Store {
	return &gormStore{}
}

func (s *gormStore) Profile(ctx context.Context, userID uint) (*models.UserModel, error) {
	var user models.UserModel
	err := global.DB.WithContext(ctx).Take(&user, userID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) Authored(ctx context.Context, userID uint) ([]models.ArticleModel, error) {
	var articles []models.ArticleModel
	err := global.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&articles).Error
	return articles, err
}

func (s *gormStore) Bookmarked(ctx context.Context, userID uint) ([]models.ArticleModel, error) {
	var articles []models.ArticleModel
	err := global.DB.WithContext(ctx).
		Joins("JOIN bookmarks ON bookmarks.article_id = articles.id").
		Where("bookmarks.user_id = ? AND articles.status = ?", userID, ctypes.ArticlePublished).
		Order("bookmarks.created_at DESC").
		Find(&articles).Error
	return articles, err
}

func (s *gormStore) Liked(ctx context.Context, userID uint) ([]models.ArticleModel, error) {
	var articles []models.ArticleModel
	err := global.DB.WithContext(ctx).
		Joins("JOIN article_likes ON article_likes.article_id = articles.id").
		Where("article_likes.user_id = ? AND articles.status = ?", userID, ctypes.ArticlePublished).
		Order("article_likes.created_at DESC").
		Find(&articles).Error
	return articles, err
}
