package corn_ser

import (
	"context"
	"time"

	"inkwell/global"
	"inkwell/models"
	"inkwell/service/redis_ser"
	"inkwell/service/search_ser"
	"inkwell/service/tag_ser"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SyncArticleData 将Redis里积累的浏览数落库并同步到ES
func SyncArticleData() {
	ctx := context.Background()
	searchService := search_ser.NewService()

	iter := global.Redis.Scan(ctx, 0, redis_ser.ArticleStatsPattern(), 0).Iterator()
	for iter.Next(ctx) {
		articleID := redis_ser.ArticleIDFromStatsKey(iter.Val())
		if articleID == "" {
			continue
		}

		stats, err := redis_ser.GetArticleStats(articleID)
		if err != nil {
			global.Log.Error("获取Redis文章统计数据失败",
				zap.String("article_id", articleID),
				zap.String("error", err.Error()),
			)
			continue
		}

		delta, exists := stats[redis_ser.FieldLookCount]
		if !exists || delta <= 0 {
			continue
		}

		// 数据库是增量更新，短暂失败重试几次再放弃
		err = retry.Do(
			func() error {
				return global.DB.WithContext(ctx).
					Model(&models.ArticleModel{}).
					Where("id = ?", articleID).
					UpdateColumn("look_count", gorm.Expr("look_count + ?", delta)).Error
			},
			retry.Attempts(3),
			retry.Delay(time.Second),
			retry.OnRetry(func(n uint, err error) {
				global.Log.Warn("同步浏览数重试",
					zap.String("article_id", articleID),
					zap.Uint("attempt", n+1),
					zap.String("error", err.Error()),
				)
			}),
		)
		if err != nil {
			global.Log.Error("同步浏览数失败",
				zap.String("article_id", articleID),
				zap.String("error", err.Error()),
			)
			continue
		}

		// 落库成功后清掉增量，ES同步失败不回滚，下次全量覆盖即可
		if err := redis_ser.DeleteArticleStats(articleID); err != nil {
			global.Log.Error("清理Redis统计数据失败",
				zap.String("article_id", articleID),
				zap.String("error", err.Error()),
			)
		}

		syncArticleToEs(ctx, searchService, articleID)

		global.Log.Info("同步文章数据成功",
			zap.String("article_id", articleID),
			zap.Int64("look_count_delta", delta),
		)

		// 避免过快请求
		time.Sleep(time.Millisecond * 100)
	}

	if err := iter.Err(); err != nil {
		global.Log.Error("遍历Redis键失败", zap.String("error", err.Error()))
	}
}

// syncArticleToEs 用数据库最新数据覆盖搜索文档
func syncArticleToEs(ctx context.Context, searchService *search_ser.Service, articleID string) {
	if global.Es == nil {
		return
	}

	var article models.ArticleModel
	err := global.DB.WithContext(ctx).Preload("User").Take(&article, "id = ?", articleID).Error
	if err != nil {
		global.Log.Error("读取文章失败",
			zap.String("article_id", articleID),
			zap.String("error", err.Error()),
		)
		return
	}

	if err := searchService.Upsert(ctx, models.EsArticleFromModel(&article)); err != nil {
		global.Log.Error("同步ES搜索文档失败",
			zap.String("article_id", articleID),
			zap.String("error", err.Error()),
		)
	}
}

// RefreshPopularTagsJob 重算热门标签缓存
func RefreshPopularTagsJob() {
	if _, err := tag_ser.RefreshPopularTags(context.Background(), tag_ser.DefaultLimit); err != nil {
		global.Log.Error("刷新热门标签失败", zap.String("error", err.Error()))
	}
}
