package user

import (
	"inkwell/api/system"
	"inkwell/global"
	"inkwell/models"
	"inkwell/models/ctypes"
	"inkwell/models/res"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type User struct{}

type UserRegisterRequest struct {
	Nickname  string `json:"nickname" validate:"max=50"`
	Account   string `json:"account" validate:"required,min=5,max=50"`
	Password  string `json:"password" validate:"required,min=6,max=50"`
	Email     string `json:"email" validate:"omitempty,email"`
	Captcha   string `json:"captcha"`
	CaptchaId string `json:"captcha_id"`
}

func (u *User) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		global.Log.Error("c.ShouldBindJSON() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err := utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	if global.Config.Captcha.Open {
		if req.Captcha == "" || req.CaptchaId == "" || !system.Store.Verify(req.CaptchaId, req.Captcha, true) {
			res.Error(c, res.CaptchaError, "验证码错误")
			return
		}
	}

	user := models.UserModel{
		Nickname: req.Nickname,
		Account:  req.Account,
		Password: req.Password,
		Email:    req.Email,
		Role:     ctypes.RoleUser,
	}
	if err := user.Create(); err != nil {
		global.Log.Error("user.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.UserAlreadyExists, err.Error())
		return
	}

	global.Log.Info("用户注册成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, nil)
}
