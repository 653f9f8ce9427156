package article

import (
	"inkwell/global"
	"inkwell/models"
	"inkwell/models/ctypes"
	"inkwell/models/res"
	"inkwell/seed"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ArticleListRequest struct {
	models.PageInfo
	Tag      string `form:"tag" validate:"max=20"`
	Featured bool   `form:"featured"`
}

// ArticleList 已发布文章列表，库里还没有文章时用内置文章垫底
func (a *Article) ArticleList(c *gin.Context) {
	var req ArticleListRequest
	err := c.ShouldBindQuery(&req)
	if err != nil {
		global.Log.Error("c.ShouldBindQuery() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err = utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	query := global.DB.Model(&models.ArticleModel{}).
		Where("status = ?", ctypes.ArticlePublished)
	if req.Tag != "" {
		query = query.Where("JSON_CONTAINS(tags, JSON_QUOTE(?))", req.Tag)
	}
	if req.Featured {
		query = query.Where("featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		global.Log.Error("统计文章总数失败", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查询文章失败")
		return
	}

	if total == 0 && req.Tag == "" {
		// 空库兜底，只在第一页返回内置文章
		list := []seed.Article{}
		if req.Page == 1 {
			list = seed.Default().All()
		}
		res.SuccessWithPage(c, list, int64(seed.Default().Len()), req.Page, req.PageSize)
		return
	}

	var articles []models.ArticleModel
	err = query.
		Preload("User").
		Order("published_at DESC").
		Limit(req.PageSize).
		Offset((req.Page - 1) * req.PageSize).
		Find(&articles).Error
	if err != nil {
		global.Log.Error("查询文章列表失败", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查询文章失败")
		return
	}

	global.Log.Info("文章列表成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.SuccessWithPage(c, articles, total, req.Page, req.PageSize)
}
