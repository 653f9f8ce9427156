package article

import (
	"inkwell/global"
	"inkwell/models/res"
	"inkwell/service/search_ser"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ArticleSearchRequest struct {
	search_ser.SearchParams
}

// ArticleSearch 全文搜索，标题命中权重最高
func (a *Article) ArticleSearch(c *gin.Context) {
	var req ArticleSearchRequest
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

	results, err := search_ser.NewService().Search(c.Request.Context(), req.SearchParams)
	if err != nil {
		global.Log.Error("search_ser.Search() failed", zap.String("error", err.Error()))
		res.Error(c, res.SearchError, "搜索文章失败")
		return
	}

	global.Log.Info("文章搜索成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.SuccessWithPage(c, results.Articles, results.Total, req.Page, req.PageSize)
}
