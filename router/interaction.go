package router

import (
	"inkwell/api"
	"inkwell/middleware"
)

func (router RouterGroup) InteractionRouter() {
	interactionApi := api.AppGroupApp.InteractionApi
	interactionRouter := router.Group("interaction")
	// 写接口也走OptionalAuth，匿名请求由服务层拦截，不发任何数据库查询
	interactionRouter.GET(":id", middleware.OptionalAuth(), interactionApi.InteractionStatus)
	interactionRouter.POST(":id/like", middleware.OptionalAuth(), interactionApi.ToggleLike)
	interactionRouter.POST(":id/bookmark", middleware.OptionalAuth(), interactionApi.ToggleBookmark)
}
