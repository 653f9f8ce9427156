package dashboard

import (
	"inkwell/global"
	"inkwell/models/res"
	"inkwell/service/dashboard_ser"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Dashboard struct{}

// DashboardOverview 个人主页聚合数据，四个板块并行加载
func (d *Dashboard) DashboardOverview(c *gin.Context) {
	_claims, _ := c.Get("claims")
	claims := _claims.(*utils.CustomClaims)

	overview := dashboard_ser.DefaultLoader().Overview(c.Request.Context(), claims.UserID)

	global.Log.Info("加载仪表盘成功",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Uint("user_id", claims.UserID),
	)
	res.Success(c, overview)
}
