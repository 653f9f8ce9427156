package router

import (
	"inkwell/api"
	"inkwell/middleware"
)

func (router RouterGroup) CommentRouter() {
	commentApi := api.AppGroupApp.CommentApi
	commentRouter := router.Group("comment")
	commentRouter.GET("list", commentApi.CommentList)
	commentRouter.POST("", middleware.JwtAuth(), commentApi.CommentCreate)
	commentRouter.DELETE("", middleware.JwtAuth(), commentApi.CommentDelete)
	commentRouter.POST("like", middleware.JwtAuth(), commentApi.CommentLike)
}
