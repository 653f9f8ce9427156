package router

import (
	"inkwell/api"
	"inkwell/middleware"
)

func (router RouterGroup) UserRouter() {
	userApi := api.AppGroupApp.UserApi
	userRouter := router.Group("user")
	userRouter.POST("register", userApi.UserRegister)
	userRouter.POST("login", userApi.UserLogin)
	userRouter.POST("logout", middleware.JwtAuth(), userApi.UserLogout)
	userRouter.GET("info", middleware.JwtAuth(), userApi.UserInfo)
	userRouter.PUT("", middleware.JwtAuth(), userApi.UserUpdate)
	userRouter.GET("list", middleware.JwtAdmin(), userApi.UserList)
	userRouter.PUT("state", middleware.JwtAdmin(), userApi.UserState)
}
