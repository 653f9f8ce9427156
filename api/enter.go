package api

import (
	"inkwell/api/article"
	"inkwell/api/comment"
	"inkwell/api/dashboard"
	"inkwell/api/interaction"
	"inkwell/api/system"
	"inkwell/api/tag"
	"inkwell/api/user"
)

type AppGroup struct {
	SystemApi      system.System
	UserApi        user.User
	ArticleApi     article.Article
	InteractionApi interaction.Interaction
	CommentApi     comment.Comment
	TagApi         tag.Tag
	DashboardApi   dashboard.Dashboard
}

var AppGroupApp = new(AppGroup)
