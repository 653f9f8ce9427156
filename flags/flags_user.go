package flags

import (
	"strconv"

	"inkwell/global"
	"inkwell/models"
	"inkwell/models/ctypes"
	"inkwell/utils"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func User(c *cli.Context) error {
	nickName := c.String("nick_name")
	account := c.String("account")
	password := c.String("password")
	role := c.String("role")

	userRole := ctypes.RoleUser
	if role == "admin" {
		userRole = ctypes.RoleAdmin
	}

	if account == "" {
		id, err := utils.GenerateID()
		if err != nil {
			global.Log.Error("生成account失败", zap.String("error", err.Error()))
			return err
		}
		account = strconv.FormatInt(id, 10)
	}

	user := &models.UserModel{
		Account:  account,
		Nickname: nickName,
		Password: password,
		Role:     userRole,
	}

	if err := user.Create(); err != nil {
		global.Log.Error("用户创建失败", zap.String("error", err.Error()))
		return err
	}

	global.Log.Infof("用户%s创建成功,account:%s,role:%s", nickName, user.Account, string(userRole))
	return nil
}
