package core

import (
	"inkwell/global"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

// InitEs 初始化ES客户端，搜索服务不可用时返回nil，不阻塞启动
func InitEs() *elasticsearch.TypedClient {
	esConfig := global.Config.Es
	cfg := elasticsearch.Config{
		Addresses: []string{esConfig.Dsn()},
	}
	es, err := elasticsearch.NewTypedClient(cfg)
	if err != nil {
		global.Log.Error("ES客户端创建失败",
			zap.String("dsn", esConfig.Dsn()),
			zap.String("error", err.Error()))
		return nil
	}
	global.Log.Info("ES连接成功", zap.String("method", "InitEs"), zap.String("path", "core/es.go"))
	return es
}
