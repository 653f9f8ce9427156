package flags

import (
	"inkwell/global"
	"inkwell/models"
	"inkwell/models/ctypes"
	"inkwell/seed"
	"inkwell/service/redis_ser"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

// SeedImport 把内置文章导入数据库，已存在的ID跳过
func SeedImport(c *cli.Context) error {
	now := ctypes.Now()

	imported := 0
	for _, record := range seed.Default().All() {
		article := models.ArticleModel{
			ID:           record.ID,
			Title:        record.Title,
			Abstract:     record.Excerpt,
			Content:      record.Content,
			CoverURL:     record.CoverURL,
			Tags:         record.Tags,
			Status:       ctypes.ArticlePublished,
			Featured:     record.Featured,
			PublishedAt:  &now,
			LikeCount:    record.LikeCount,
			CommentCount: record.CommentCount,
		}

		err := global.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&article).Error
		if err != nil {
			global.Log.Error("导入内置文章失败",
				zap.String("article_id", record.ID),
				zap.String("error", err.Error()),
			)
			return err
		}
		if err := redis_ser.AddToBloomFilter(record.ID); err != nil {
			global.Log.Warn("写入布隆过滤器失败", zap.String("article_id", record.ID))
		}
		imported++
	}

	global.Log.Infof("内置文章导入完成，共%d篇", imported)
	return nil
}
