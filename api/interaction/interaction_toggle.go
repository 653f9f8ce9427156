package interaction

import (
	"context"
	"errors"
	"net/http"

	"inkwell/global"
	"inkwell/middleware"
	"inkwell/models/res"
	"inkwell/service/interaction_ser"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type InteractionToggleRequest struct {
	ID string `uri:"id" validate:"required"`
}

// ToggleLike 点赞或取消点赞
func (i *Interaction) ToggleLike(c *gin.Context) {
	i.toggle(c, "点赞", interaction_ser.Default().ToggleLike)
}

// ToggleBookmark 收藏或取消收藏
func (i *Interaction) ToggleBookmark(c *gin.Context) {
	i.toggle(c, "收藏", interaction_ser.Default().ToggleBookmark)
}

func (i *Interaction) toggle(c *gin.Context, action string,
	do func(ctx context.Context, viewerID uint, articleID string) (*interaction_ser.Status, error)) {

	var req InteractionToggleRequest
	err := c.ShouldBindUri(&req)
	if err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err = utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	status, err := do(c.Request.Context(), middleware.GetUserID(c), req.ID)
	if errors.Is(err, interaction_ser.ErrAuthRequired) {
		res.HttpError(c, http.StatusUnauthorized, res.TokenMissing, "请先登录")
		return
	}
	if errors.Is(err, interaction_ser.ErrBusy) {
		res.Error(c, res.InteractionBusy, "操作太快了，请稍后再试")
		return
	}
	if err != nil {
		global.Log.Error(action+"失败", zap.String("error", err.Error()))
		res.Error(c, res.DBError, action+"失败")
		return
	}

	global.Log.Info(action+"成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, status)
}
