package flags

import (
	"context"

	"inkwell/global"
	"inkwell/service/search_ser"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func EsIndexCreate(c *cli.Context) (err error) {
	err = search_ser.NewService().IndexCreate(context.Background())
	if err != nil {
		global.Log.Error("索引创建失败", zap.String("error", err.Error()))
		return err
	}
	return nil
}
