package tag_ser

import (
	"context"
	"encoding/json"
	"time"

	"inkwell/global"
	"inkwell/models"
	"inkwell/service/redis_ser"

	"go.uber.org/zap"
)

const (
	popularTagsExpire = 10 * time.Minute
)

// popularTagsKey 热门标签缓存键
func popularTagsKey() string {
	return redis_ser.BuildKey(redis_ser.TagPrefix, "popular")
}

// PopularTags 获取热门标签，优先走缓存
func PopularTags(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	if global.Redis != nil {
		data, err := global.Redis.Get(ctx, popularTagsKey()).Bytes()
		if err == nil && len(data) > 0 {
			var tags []string
			if err := json.Unmarshal(data, &tags); err == nil {
				if len(tags) > limit {
					tags = tags[:limit]
				}
				return tags, nil
			}
		}
	}

	return RefreshPopularTags(ctx, limit)
}

// RefreshPopularTags 重新统计热门标签并写入缓存
func RefreshPopularTags(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	articles, err := models.PublishedArticles()
	if err != nil {
		return nil, err
	}

	// 缓存始终按上限统计，取前缀即可满足更小的limit
	tags := RankTags(TagSetsOf(articles, func(a models.ArticleModel) []string {
		return a.Tags
	}), DefaultLimit)

	if global.Redis != nil {
		data, err := json.Marshal(tags)
		if err == nil {
			if err := global.Redis.Set(ctx, popularTagsKey(), data, popularTagsExpire).Err(); err != nil {
				global.Log.Warn("热门标签缓存写入失败", zap.String("error", err.Error()))
			}
		}
	}

	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags, nil
}
