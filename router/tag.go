package router

import (
	"inkwell/api"
)

func (router RouterGroup) TagRouter() {
	tagApi := api.AppGroupApp.TagApi
	tagRouter := router.Group("tag")
	tagRouter.GET("popular", tagApi.TagPopular)
}
