package article

import (
	"inkwell/global"
	"inkwell/models"
	"inkwell/models/ctypes"
	"inkwell/models/res"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ArticleStatusRequest struct {
	ID     string               `json:"id" validate:"required"`
	Status ctypes.ArticleStatus `json:"status" validate:"required"`
}

// ArticleStatus 发布或撤回文章，作者本人或管理员可操作
func (a *Article) ArticleStatus(c *gin.Context) {
	var req ArticleStatusRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		global.Log.Error("c.ShouldBindJSON() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err = utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	if !req.Status.Valid() {
		res.Error(c, res.InvalidParameter, "未知的文章状态")
		return
	}

	_claims, _ := c.Get("claims")
	claims := _claims.(*utils.CustomClaims)

	var article models.ArticleModel
	if err := global.DB.Take(&article, "id = ?", req.ID).Error; err != nil {
		res.Error(c, res.ArticleNotFound, "文章不存在")
		return
	}
	if article.UserID != claims.UserID && claims.Role != ctypes.RoleAdmin {
		res.Error(c, res.ArticleNotOwner, "没有权限操作此文章")
		return
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Status == ctypes.ArticlePublished && article.PublishedAt == nil {
		updates["published_at"] = ctypes.Now()
	}
	if err := global.DB.Model(&article).Updates(updates).Error; err != nil {
		global.Log.Error("更新文章状态失败", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "更新文章状态失败")
		return
	}

	if req.Status == ctypes.ArticlePublished {
		syncToSearch(c, &article)
	}

	global.Log.Info("更新文章状态成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, nil)
}
