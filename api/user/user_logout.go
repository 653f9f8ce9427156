package user

import (
	"inkwell/global"
	"inkwell/models/res"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserLogout 登出，access token进黑名单，refresh token作废
func (u *User) UserLogout(c *gin.Context) {
	_claims, _ := c.Get("claims")
	claims := _claims.(*utils.CustomClaims)

	tokenString := c.Request.Header.Get("Authorization")
	if len(tokenString) >= 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}

	if err := utils.InvalidateTokens(claims.UserID, tokenString); err != nil {
		global.Log.Error("utils.InvalidateTokens() failed", zap.String("error", err.Error()))
		res.Error(c, res.CacheError, "登出失败")
		return
	}

	global.Log.Info("用户登出成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, nil)
}
