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

type ArticleUpdateRequest struct {
	ID       string   `json:"id" validate:"required"`
	Title    string   `json:"title" validate:"required,min=1,max=100"`
	Abstract string   `json:"abstract" validate:"max=256"`
	Content  string   `json:"content" validate:"required,min=1,max=100000"`
	CoverURL string   `json:"cover_url" validate:"max=256"`
	Tags     []string `json:"tags" validate:"max=10,dive,min=1,max=20"`
}

// ArticleUpdate 更新文章，作者本人或管理员可操作
func (a *Article) ArticleUpdate(c *gin.Context) {
	var req ArticleUpdateRequest
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

	content, err := utils.SanitizeMarkdown(req.Content)
	if err != nil {
		global.Log.Error("utils.SanitizeMarkdown() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "内容处理失败")
		return
	}

	abstract := req.Abstract
	if abstract == "" {
		abstract = models.TruncateRunes(utils.PlainText(content), 120)
	}

	updates := map[string]interface{}{
		"title":     req.Title,
		"abstract":  abstract,
		"content":   content,
		"cover_url": req.CoverURL,
		"tags":      ctypes.StringList(req.Tags),
	}
	if err := global.DB.Model(&article).Updates(updates).Error; err != nil {
		global.Log.Error("更新文章失败", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "更新文章失败")
		return
	}

	if article.IsPublished() {
		syncToSearch(c, &article)
	}

	global.Log.Info("更新文章成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, nil)
}
