package flags

import (
	"inkwell/global"
	"inkwell/models"
	"inkwell/service/redis_ser"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func DB(c *cli.Context) (err error) {
	err = global.DB.Set("gorm:table_options", "ENGINE=InnoDB").
		AutoMigrate(&models.UserModel{},
			&models.ArticleModel{},
			&models.CommentModel{},
			&models.ArticleLike{},
			&models.BookmarkModel{},
			&models.CommentLike{},
		)
	if err != nil {
		global.Log.Error("生成数据库表结构失败", zap.String("error", err.Error()))
		return nil
	}
	global.Log.Info("生成数据库表结构成功", zap.String("method", "DB"), zap.String("path", "flags/flags_db.go"))

	// 已有文章回填布隆过滤器，否则浏览计数会被短路
	var ids []string
	if err := global.DB.Model(&models.ArticleModel{}).Pluck("id", &ids).Error; err == nil {
		for _, id := range ids {
			if err := redis_ser.AddToBloomFilter(id); err != nil {
				global.Log.Warn("写入布隆过滤器失败", zap.String("article_id", id))
				break
			}
		}
	}
	return nil
}
