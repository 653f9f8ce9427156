package router

import (
	"inkwell/api"
	"inkwell/middleware"
)

func (router RouterGroup) DashboardRouter() {
	dashboardApi := api.AppGroupApp.DashboardApi
	dashboardRouter := router.Group("dashboard")
	dashboardRouter.GET("", middleware.JwtAuth(), dashboardApi.DashboardOverview)
}
