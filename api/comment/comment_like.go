package comment

import (
	"inkwell/global"
	"inkwell/models"
	"inkwell/models/res"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CommentLikeRequest struct {
	ID uint `json:"id" validate:"required"`
}

// CommentLike 评论点赞开关，与文章点赞一样以库里的关系行为准
func (cm *Comment) CommentLike(c *gin.Context) {
	_claims, _ := c.Get("claims")
	claims := _claims.(*utils.CustomClaims)

	var req CommentLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		global.Log.Error("c.ShouldBindJSON() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err := utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	var comment models.CommentModel
	if err := global.DB.Take(&comment, req.ID).Error; err != nil {
		res.Error(c, res.CommentNotFound, "评论不存在")
		return
	}

	var liked bool
	err = global.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.CommentLike{}).
			Where("user_id = ? AND comment_id = ?", claims.UserID, req.ID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			if err := tx.
				Where("user_id = ? AND comment_id = ?", claims.UserID, req.ID).
				Delete(&models.CommentLike{}).Error; err != nil {
				return err
			}
			return tx.Model(&models.CommentModel{}).
				Where("id = ? AND digg_count > 0", req.ID).
				UpdateColumn("digg_count", gorm.Expr("digg_count - ?", 1)).Error
		}

		liked = true
		if err := tx.Create(&models.CommentLike{
			UserID:    claims.UserID,
			CommentID: req.ID,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.CommentModel{}).
			Where("id = ?", req.ID).
			UpdateColumn("digg_count", gorm.Expr("digg_count + ?", 1)).Error
	})
	if err != nil {
		global.Log.Error("评论点赞失败", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "评论点赞失败")
		return
	}

	// 回读最新计数
	var diggCount uint
	global.DB.Model(&models.CommentModel{}).
		Where("id = ?", req.ID).
		Select("digg_count").
		Scan(&diggCount)

	res.Success(c, gin.H{"is_liked": liked, "digg_count": diggCount})
}
