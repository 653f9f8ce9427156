package redis_ser

import "strings"

const (
	Prefix        = "inkwell:"
	ArticlePrefix = "article"
	TagPrefix     = "tag"
	RefreshToken  = "refresh_token:user_id:"
)

// BuildKey 拼接带统一前缀的Redis键
func BuildKey(parts ...string) string {
	return Prefix + strings.Join(parts, ":")
}

// GetRedisKey 带统一前缀的键
func GetRedisKey(key string) string {
	return Prefix + key
}
