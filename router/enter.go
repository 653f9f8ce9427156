package router

import (
	"net/http"
	"time"

	"inkwell/core"
	"inkwell/global"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterGroup struct {
	*gin.RouterGroup
}

func InitRouter() *gin.Engine {
	gin.SetMode(global.Config.System.Env)
	router := gin.New()
	router.Use(core.GinMiddleware(), core.GinRecovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"New-Access-Token"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	// 静态资源，封面和头像都从这里走
	router.StaticFS("uploads", http.Dir("uploads"))

	apiRouterGroup := router.Group("api")
	routerGroupApp := RouterGroup{apiRouterGroup}
	routerGroupApp.SystemRouter()
	routerGroupApp.UserRouter()
	routerGroupApp.ArticleRouter()
	routerGroupApp.InteractionRouter()
	routerGroupApp.CommentRouter()
	routerGroupApp.TagRouter()
	routerGroupApp.DashboardRouter()
	return router
}
