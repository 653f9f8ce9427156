package redis_ser

import (
	"context"
	"strconv"
	"time"

	"inkwell/global"
)

const tokenBlacklist = "token_blacklist:"

// BlacklistToken 将access token加入黑名单
func BlacklistToken(accessToken string, ttl time.Duration) error {
	return global.Redis.Set(context.Background(),
		GetRedisKey(tokenBlacklist+accessToken),
		"invalid",
		ttl).Err()
}

// IsTokenBlacklisted 检查令牌是否在黑名单中
func IsTokenBlacklisted(accessToken string) (bool, error) {
	count, err := global.Redis.Exists(context.Background(),
		GetRedisKey(tokenBlacklist+accessToken)).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetRefreshToken 保存用户的refresh token
func SetRefreshToken(userID uint, token string, ttl time.Duration) error {
	key := RefreshToken + strconv.Itoa(int(userID))
	return global.Redis.Set(context.Background(), GetRedisKey(key), token, ttl).Err()
}

// GetRefreshToken 获取用户的refresh token
func GetRefreshToken(userID uint) (string, error) {
	key := RefreshToken + strconv.Itoa(int(userID))
	return global.Redis.Get(context.Background(), GetRedisKey(key)).Result()
}

// DeleteRefreshToken 删除用户的refresh token
func DeleteRefreshToken(userID uint) error {
	key := RefreshToken + strconv.Itoa(int(userID))
	return global.Redis.Del(context.Background(), GetRedisKey(key)).Err()
}
