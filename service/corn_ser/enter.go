package corn_ser

import (
	"time"

	"github.com/robfig/cron/v3"
)

// CornInit 注册定时任务
// 每分钟把Redis里的浏览数落库，每天凌晨四点重算热门标签
func CornInit() {
	timezone, _ := time.LoadLocation("Asia/Shanghai")
	Cron := cron.New(cron.WithSeconds(), cron.WithLocation(timezone))
	Cron.AddFunc("0 */1 * * * *", SyncArticleData)
	Cron.AddFunc("0 0 4 * * *", RefreshPopularTagsJob)
	Cron.Start()
}
