package comment

import (
	"errors"

	"inkwell/global"
	"inkwell/models"
	"inkwell/models/res"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type CommentDeleteRequest struct {
	ID uint `json:"id" validate:"required"`
}

// CommentDelete 删除评论，仅评论作者本人
func (cm *Comment) CommentDelete(c *gin.Context) {
	_claims, _ := c.Get("claims")
	claims := _claims.(*utils.CustomClaims)

	var req CommentDeleteRequest
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

	err = models.CommentDelete(req.ID, claims.UserID)
	if errors.Is(err, models.ErrNotCommentOwner) {
		res.Error(c, res.CommentNotOwner, "没有权限操作此评论")
		return
	}
	if err != nil {
		global.Log.Error("models.CommentDelete() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "删除评论失败")
		return
	}

	global.Log.Info("删除评论成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, nil)
}
