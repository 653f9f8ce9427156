package article

import (
	"inkwell/global"
	"inkwell/models"
	"inkwell/models/res"
	"inkwell/service/redis_ser"
	"inkwell/service/search_ser"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ArticleDeleteRequest struct {
	IDList []string `json:"id_list" validate:"required,min=1"`
}

// ArticleDelete 批量删除文章，仅管理员
func (a *Article) ArticleDelete(c *gin.Context) {
	var req ArticleDeleteRequest
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

	err = global.DB.Delete(&models.ArticleModel{}, "id IN ?", req.IDList).Error
	if err != nil {
		global.Log.Error("删除文章失败", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "删除文章失败")
		return
	}

	// 统计数据和搜索文档跟着清理，失败只记日志
	for _, articleID := range req.IDList {
		if err := redis_ser.DeleteArticleStats(articleID); err != nil {
			global.Log.Warn("redis_ser.DeleteArticleStats() failed",
				zap.String("article_id", articleID),
				zap.String("error", err.Error()),
			)
		}
	}
	if global.Es != nil {
		if err := search_ser.NewService().Delete(c.Request.Context(), req.IDList); err != nil {
			global.Log.Warn("删除搜索文档失败", zap.String("error", err.Error()))
		}
	}

	global.Log.Info("删除文章成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, nil)
}
