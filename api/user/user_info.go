package user

import (
	"inkwell/global"
	"inkwell/models"
	"inkwell/models/res"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (u *User) UserInfo(c *gin.Context) {
	var user models.UserModel
	_claims, _ := c.Get("claims")
	claims := _claims.(*utils.CustomClaims)
	if err := user.FindByID(claims.UserID); err != nil {
		global.Log.Error("user.FindByID() failed", zap.String("error", err.Error()))
		res.Error(c, res.UserNotFound, "获取用户信息失败")
		return
	}
	global.Log.Info("获取用户信息成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, user)
}
