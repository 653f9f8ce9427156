package redis_ser

import (
	"context"
	"strconv"
	"time"

	"inkwell/global"

	"github.com/bits-and-blooms/bloom/v3"
	"go.uber.org/zap"
)

const (
	// 统计字段名
	FieldLookCount = "look_count"

	ViewIPExpire = 10 * time.Minute // IP访问记录过期时间

	// 布隆过滤器相关常量
	BloomFilterKey     = Prefix + "article:bloom" // 布隆过滤器的键
	BloomFilterSize    = 100000                   // 预期元素数量
	BloomFalsePositive = 0.01                     // 期望的误判率

	ArticleStatsExpire = 7 * 24 * time.Hour // 文章统计数据过期时间
)

// GetArticleStatsKey 获取文章统计数据的Redis键
func GetArticleStatsKey(articleID string) string {
	return BuildKey(ArticlePrefix, "stats", articleID)
}

// ArticleStatsPattern 统计键的scan模式
func ArticleStatsPattern() string {
	return BuildKey(ArticlePrefix, "stats", "*")
}

// ArticleIDFromStatsKey 从统计键中取出文章ID
func ArticleIDFromStatsKey(key string) string {
	prefix := BuildKey(ArticlePrefix, "stats", "")
	if len(key) <= len(prefix) {
		return ""
	}
	return key[len(prefix):]
}

// checkIPViewArticle 检查IP是否最近访问过文章
// SetNX：这个IP最近没访问过就设置成功返回true，访问过返回false
func checkIPViewArticle(articleID, ip string) (bool, error) {
	key := BuildKey(ArticlePrefix, "view", "ip", articleID, ip)
	return global.Redis.SetNX(
		context.Background(),
		key,
		1,
		ViewIPExpire,
	).Result()
}

// IncrArticleLookCount 增加文章浏览数，同一IP十分钟内只记一次
// 布隆过滤器说一定不存在的ID直接跳过，不在Redis里留键
func IncrArticleLookCount(articleID, ip string) error {
	ctx := context.Background()

	if exists, err := CheckBloomFilter(articleID); err == nil && !exists {
		global.Log.Info("文章ID在布隆过滤器中不存在", zap.String("articleID", articleID))
		return nil
	}

	isNewView, err := checkIPViewArticle(articleID, ip)
	if err != nil {
		global.Log.Error("检查IP访问记录失败",
			zap.String("articleID", articleID),
			zap.String("ip", ip),
			zap.String("error", err.Error()),
		)
		return err
	}

	if !isNewView {
		return nil
	}

	pipe := global.Redis.Pipeline()
	pipe.HIncrBy(ctx, GetArticleStatsKey(articleID), FieldLookCount, 1)
	pipe.Expire(ctx, GetArticleStatsKey(articleID), ArticleStatsExpire)

	if _, err = pipe.Exec(ctx); err != nil {
		global.Log.Error("增加文章浏览数失败",
			zap.String("articleID", articleID),
			zap.String("ip", ip),
			zap.String("error", err.Error()),
		)
		return err
	}

	return nil
}

// GetArticleStats 获取文章的待同步统计数据
func GetArticleStats(articleID string) (map[string]int64, error) {
	result, err := global.Redis.HGetAll(
		context.Background(),
		GetArticleStatsKey(articleID),
	).Result()
	if err != nil {
		return nil, err
	}

	stats := make(map[string]int64)
	for field, value := range result {
		count, _ := strconv.ParseInt(value, 10, 64)
		stats[field] = count
	}

	return stats, nil
}

// DeleteArticleStats 删除文章统计数据（同步落库后调用）
func DeleteArticleStats(articleID string) error {
	return global.Redis.Del(
		context.Background(),
		GetArticleStatsKey(articleID),
	).Err()
}

// getBloomFilter 获取布隆过滤器
func getBloomFilter() (*bloom.BloomFilter, error) {
	ctx := context.Background()

	data, err := global.Redis.Get(ctx, BloomFilterKey).Bytes()
	if err != nil && err.Error() != "redis: nil" {
		return nil, err
	}

	filter := bloom.NewWithEstimates(BloomFilterSize, BloomFalsePositive)

	if len(data) > 0 {
		filter.UnmarshalBinary(data)
	}

	return filter, nil
}

// saveBloomFilter 保存布隆过滤器到Redis
func saveBloomFilter(filter *bloom.BloomFilter) error {
	data, err := filter.MarshalBinary()
	if err != nil {
		return err
	}
	return global.Redis.Set(context.Background(), BloomFilterKey, data, 0).Err()
}

// AddToBloomFilter 将文章ID添加到布隆过滤器
func AddToBloomFilter(articleID string) error {
	filter, err := getBloomFilter()
	if err != nil {
		global.Log.Error("获取布隆过滤器失败", zap.Error(err))
		return err
	}

	filter.Add([]byte(articleID))

	if err := saveBloomFilter(filter); err != nil {
		global.Log.Error("保存布隆过滤器失败", zap.Error(err))
		return err
	}

	return nil
}

// CheckBloomFilter 检查文章ID是否可能存在
func CheckBloomFilter(articleID string) (bool, error) {
	filter, err := getBloomFilter()
	if err != nil {
		global.Log.Error("获取布隆过滤器失败", zap.Error(err))
		return false, err
	}

	return filter.Test([]byte(articleID)), nil
}
