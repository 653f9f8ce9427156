package router

import (
	"inkwell/api"
	"inkwell/middleware"
)

func (router RouterGroup) ArticleRouter() {
	articleApi := api.AppGroupApp.ArticleApi
	articleRouter := router.Group("article")
	articleRouter.GET(":id", articleApi.ArticleDetail)
	articleRouter.GET("list", articleApi.ArticleList)
	articleRouter.GET("search", articleApi.ArticleSearch)
	articleRouter.POST("", middleware.JwtAuth(), articleApi.ArticleCreate)
	articleRouter.PUT("", middleware.JwtAuth(), articleApi.ArticleUpdate)
	articleRouter.PUT("status", middleware.JwtAuth(), articleApi.ArticleStatus)
	articleRouter.POST("delete", middleware.JwtAdmin(), articleApi.ArticleDelete)
}
