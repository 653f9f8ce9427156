package tag

import (
	"inkwell/global"
	"inkwell/models/res"
	"inkwell/service/tag_ser"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Tag struct{}

type TagPopularRequest struct {
	Limit int `form:"limit"`
}

// 侧边栏标签数量，站点配置缺省时使用
const sidebarTagLimit = 10

// TagPopular 热门标签，按出现次数倒序
func (t *Tag) TagPopular(c *gin.Context) {
	var req TagPopularRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = global.Config.Site.PopularTagLimit
	}
	if limit <= 0 {
		limit = sidebarTagLimit
	}

	tags, err := tag_ser.PopularTags(c.Request.Context(), limit)
	if err != nil {
		global.Log.Error("tag_ser.PopularTags() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "获取热门标签失败")
		return
	}

	res.Success(c, tags)
}
