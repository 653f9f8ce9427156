package interaction_ser

import (
	"context"
	"errors"

	"inkwell/global"
	"inkwell/models"

	"gorm.io/gorm"
)

// Gateway 交互数据的读写入口
// 点赞计数以articles表上的冗余计数为准，由插入/删除关系行的事务维护
type Gateway interface {
	LikesCount(ctx context.Context, articleID string) (int64, error)
	HasLiked(ctx context.Context, userID uint, articleID string) (bool, error)
	HasBookmarked(ctx context.Context, userID uint, articleID string) (bool, error)
	InsertLike(ctx context.Context, userID uint, articleID string) error
	DeleteLike(ctx context.Context, userID uint, articleID string) error
	InsertBookmark(ctx context.Context, userID uint, articleID string) error
	DeleteBookmark(ctx context.Context, userID uint, articleID string) error
}

// gormGateway 基于MySQL的实现
type gormGateway struct{}

// NewGormGateway 创建数据库网关
func NewGormGateway() Gateway {
	return &gormGateway{}
}

func (g *gormGateway) db() *gorm.DB {
	return global.DB
}

func (g *gormGateway) LikesCount(ctx context.Context, articleID string) (int64, error) {
	var count int64
	err := g.db().WithContext(ctx).
		Model(&models.ArticleModel{}).
		Where("id = ?", articleID).
		Select("like_count").
		Scan(&count).Error
	return count, err
}

func (g *gormGateway) HasLiked(ctx context.Context, userID uint, articleID string) (bool, error) {
	return g.relationExists(ctx, &models.ArticleLike{}, userID, articleID)
}

func (g *gormGateway) HasBookmarked(ctx context.Context, userID uint, articleID string) (bool, error) {
	return g.relationExists(ctx, &models.BookmarkModel{}, userID, articleID)
}

func (g *gormGateway) relationExists(ctx context.Context, model interface{}, userID uint, articleID string) (bool, error) {
	var count int64
	err := g.db().WithContext(ctx).
		Model(model).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error
	return count > 0, err
}

func (g *gormGateway) InsertLike(ctx context.Context, userID uint, articleID string) error {
	return g.db().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := models.ArticleLike{
			UserID:    userID,
			ArticleID: articleID,
		}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		// 点赞关系与冗余计数在同一事务内更新
		return tx.Model(&models.ArticleModel{}).
			Where("id = ?", articleID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).
			Error
	})
}

func (g *gormGateway) DeleteLike(ctx context.Context, userID uint, articleID string) error {
	return g.db().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND article_id = ?", userID, articleID).
			Delete(&models.ArticleLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// 关系行已不在，计数不动
			return nil
		}
		return tx.Model(&models.ArticleModel{}).
			Where("id = ? AND like_count > 0", articleID).
			UpdateColumn("like_count", gorm.Expr("like_count - 1")).
			Error
	})
}

func (g *gormGateway) InsertBookmark(ctx context.Context, userID uint, articleID string) error {
	bookmark := models.BookmarkModel{
		UserID:    userID,
		ArticleID: articleID,
	}
	return g.db().WithContext(ctx).Create(&bookmark).Error
}

func (g *gormGateway) DeleteBookmark(ctx context.Context, userID uint, articleID string) error {
	result := g.db().WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&models.BookmarkModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("收藏记录不存在")
	}
	return nil
}
