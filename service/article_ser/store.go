package article_ser

import (
	"context"
	"errors"

	"inkwell/global"
	"inkwell/models"
	"inkwell/models/ctypes"

	"gorm.io/gorm"
)

// Store 文章数据的只读入口
// PublishedByID查不到行时返回(nil, nil)，错误只代表查询本身失败
type Store interface {
	PublishedByID(ctx context.Context, id string) (*models.ArticleModel, error)
	PublishedAll(ctx context.Context) ([]models.ArticleModel, error)
}

// gormStore 基于MySQL的实现
type gormStore struct{}

// NewGormStore 创建数据库存储
func NewGormStore() Store {
	return &gormStore{}
}

func (s *gormStore) PublishedByID(ctx context.Context, id string) (*models.ArticleModel, error) {
	var article models.ArticleModel
	err := global.DB.WithContext(ctx).
		Preload("User").
		Where("id = ? AND status = ?", id, ctypes.ArticlePublished).
		First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *gormStore) PublishedAll(ctx context.Context) ([]models.ArticleModel, error) {
	var articles []models.ArticleModel
	err := global.DB.WithContext(ctx).
		Where("status = ?", ctypes.ArticlePublished).
		Order("published_at DESC").
		Find(&articles).Error
	return articles, err
}
