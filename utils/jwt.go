package utils

import (
	"errors"
	"time"

	"inkwell/global"
	"inkwell/models/ctypes"
	"inkwell/service/redis_ser"

	"github.com/dgrijalva/jwt-go"
)

type PayLoad struct {
	Account string          `json:"account"`
	Role    ctypes.UserRole `json:"role"`
	UserID  uint            `json:"user_id"`
}

type CustomClaims struct {
	PayLoad
	jwt.StandardClaims
}

type RefreshClaims struct {
	UserID uint `json:"user_id"`
	jwt.StandardClaims
}

// access token 有效期
const accessTokenExpire = 2 * time.Hour

// GenerateAccessToken 生成 Access Token
func GenerateAccessToken(payload PayLoad) (string, error) {
	claims := CustomClaims{
		PayLoad: payload,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(accessTokenExpire).Unix(),
			Issuer:    global.Config.Jwt.Issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(global.Config.Jwt.Secret))
}

// GenerateRefreshToken 生成 Refresh Token
func GenerateRefreshToken(userID uint) (string, error) {
	claims := RefreshClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(global.Config.Jwt.Expires) * 24 * time.Hour).Unix(),
			Issuer:    global.Config.Jwt.Issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(global.Config.Jwt.Secret))
}

// ParseToken 解析 Token
func ParseToken(tokenString string) (*CustomClaims, error) {
	var claims CustomClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(global.Config.Jwt.Secret), nil
	})

	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok {
			if ve.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, errors.New("token已过期")
			} else if ve.Errors&jwt.ValidationErrorMalformed != 0 {
				return nil, errors.New("token格式错误")
			} else if ve.Errors&jwt.ValidationErrorSignatureInvalid != 0 {
				return nil, errors.New("token签名无效")
			}
		}
		return nil, errors.New("token无效")
	}

	if !token.Valid {
		return nil, errors.New("token验证失败")
	}

	return &claims, nil
}

// ParseExpiredToken 从过期的 token 中取出载荷，只用于刷新流程
func ParseExpiredToken(tokenString string) (*CustomClaims, error) {
	var claims CustomClaims
	parser := jwt.Parser{SkipClaimsValidation: true}
	token, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(global.Config.Jwt.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token无效")
	}
	return &claims, nil
}

// RefreshAccessToken 用有效的 refresh token 换新的 access token
func RefreshAccessToken(refreshToken string, payload PayLoad) (string, error) {
	var rClaims RefreshClaims
	token, err := jwt.ParseWithClaims(refreshToken, &rClaims, func(token *jwt.Token) (interface{}, error) {
		return []byte(global.Config.Jwt.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("refresh token无效")
	}
	if rClaims.UserID != payload.UserID {
		return "", errors.New("refresh token不属于当前用户")
	}
	return GenerateAccessToken(payload)
}

// InvalidateTokens 登出时令牌处理：access token进黑名单，refresh token删除
func InvalidateTokens(userID uint, accessToken string) error {
	if err := redis_ser.BlacklistToken(accessToken, accessTokenExpire); err != nil {
		return err
	}
	return redis_ser.DeleteRefreshToken(userID)
}
