package middleware

import (
	"net/http"

	"inkwell/global"
	"inkwell/models/ctypes"
	"inkwell/models/res"
	"inkwell/service/redis_ser"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// authenticate 验证 Token 并把用户信息存入上下文
// 只负责校验，不调用 c.Next()，失败时中止请求并返回false
func authenticate(c *gin.Context) bool {
	tokenString := c.Request.Header.Get("Authorization")
	// 检查 Token 是否存在并去除 "Bearer " 前缀
	if len(tokenString) < 7 || tokenString[:7] != "Bearer " {
		res.HttpError(c, http.StatusUnauthorized, res.TokenMissing, "缺少token")
		c.Abort()
		return false
	}
	tokenString = tokenString[7:]

	// 检查令牌是否在黑名单中
	isBlacklisted, err := redis_ser.IsTokenBlacklisted(tokenString)
	if err != nil {
		global.Log.Error("检查令牌黑名单失败", zap.Error(err))
		res.HttpError(c, http.StatusInternalServerError, res.ServerError, "服务器错误")
		c.Abort()
		return false
	}
	if isBlacklisted {
		res.HttpError(c, http.StatusUnauthorized, res.TokenInvalid, "token已失效")
		c.Abort()
		return false
	}

	// 解析 Token
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		if err.Error() == "token已过期" {
			// 过期的token签名仍然有效，取出载荷走刷新流程
			expiredClaims, parseErr := utils.ParseExpiredToken(tokenString)
			if parseErr != nil {
				res.HttpError(c, http.StatusUnauthorized, res.TokenExpired, "token已过期且无法刷新")
				c.Abort()
				return false
			}

			refreshToken, refreshErr := redis_ser.GetRefreshToken(expiredClaims.UserID)
			if refreshErr != nil {
				res.HttpError(c, http.StatusUnauthorized, res.TokenExpired, "登录已过期，请重新登录")
				c.Abort()
				return false
			}

			newAccessToken, refreshErr := utils.RefreshAccessToken(refreshToken, expiredClaims.PayLoad)
			if refreshErr != nil || newAccessToken == "" {
				global.Log.Error("utils.RefreshAccessToken() failed", zap.Error(refreshErr))
				res.HttpError(c, http.StatusUnauthorized, res.TokenExpired, "token刷新失败")
				c.Abort()
				return false
			}

			// 刷新成功，新token放进响应头让客户端替换
			c.Header("New-Access-Token", newAccessToken)
			c.Set("claims", expiredClaims)
			return true
		}
		res.HttpError(c, http.StatusUnauthorized, res.TokenInvalid, "token无效")
		c.Abort()
		return false
	}

	// 将用户信息保存到上下文中，方便后续使用
	c.Set("claims", claims)
	return true
}

// JwtAuth 中间件，负责验证 Token 并将用户信息存储到上下文
func JwtAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}
		c.Next()
	}
}

// JwtAdmin 中间件，基于 JwtAuth 并检查用户角色
// 角色校验必须发生在后续handler执行之前，所以不能套用 JwtAuth()
func JwtAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}

		// 验证用户角色是否为管理员
		_claims, _ := c.Get("claims")
		claims := _claims.(*utils.CustomClaims)
		if claims.Role != ctypes.RoleAdmin {
			res.HttpError(c, http.StatusForbidden, res.PermissionDenied, "权限不足")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth 中间件，带token就解析，不带或无效按匿名处理
// 匿名请求不中止，交互状态接口据此返回只读数据
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Request.Header.Get("Authorization")
		if len(tokenString) < 7 || tokenString[:7] != "Bearer " {
			c.Next()
			return
		}
		tokenString = tokenString[7:]

		if isBlacklisted, err := redis_ser.IsTokenBlacklisted(tokenString); err != nil || isBlacklisted {
			c.Next()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// GetUserID 从上下文取当前用户ID，匿名返回0
func GetUserID(c *gin.Context) uint {
	_claims, ok := c.Get("claims")
	if !ok {
		return 0
	}
	claims, ok := _claims.(*utils.CustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}
