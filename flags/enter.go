package flags

import (
	"os"

	"inkwell/global"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func NewFlags() {
	var app = cli.NewApp()
	app.Name = "inkwell"
	app.Usage = "内容发布平台后端"
	app.Commands = []*cli.Command{
		{
			Name:    "database",
			Aliases: []string{"db"},
			Usage:   "建表",
			Action:  DB,
		},
		{
			Name:    "user",
			Aliases: []string{"u"},
			Usage:   "创建用户",
			Action:  User,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "nick_name",
					Aliases: []string{"n"},
					Usage:   "用户昵称",
					Value:   "admin",
				},
				&cli.StringFlag{
					Name:    "account",
					Aliases: []string{"a"},
					Usage:   "登录账号，不填则自动生成",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "用户密码",
					Value:   "inkwell123",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Usage:   "用户角色 (admin/user)",
					Value:   "admin",
				},
			},
		},
		{
			Name:    "elasticsearch",
			Aliases: []string{"es"},
			Usage:   "创建搜索索引",
			Action:  EsIndexCreate,
		},
		{
			Name:    "seed",
			Aliases: []string{"s"},
			Usage:   "把内置文章导入数据库",
			Action:  SeedImport,
		},
	}
	if len(os.Args) > 1 {
		err := app.Run(os.Args)
		if err != nil {
			global.Log.Fatal("初始化命令失败", zap.String("error", err.Error()))
		}
		os.Exit(0)
	}
}
