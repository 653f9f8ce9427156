package core

import (
	"log"

	"inkwell/global"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// 配置文件路径
const filePath = "settings.yaml"

// InitConf 初始化配置
func InitConf() {
	viper.SetConfigFile(filePath)
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatalf("viper.ReadInConfig() Failed, err:%v\n", err)
	}
	if err := viper.Unmarshal(&global.Config); err != nil {
		log.Fatalf("viper.Unmarshal() Failed, err:%v\n", err)
	}
	// 监听配置文件变化，热加载
	viper.WatchConfig()
	viper.OnConfigChange(func(in fsnotify.Event) {
		log.Println("Config file changed...")
		if err := viper.Unmarshal(global.Config); err != nil {
			log.Fatalf("viper.Unmarshal() Failed, err:%v\n", err)
		}
	})
}
