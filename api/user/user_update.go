package user

import (
	"inkwell/global"
	"inkwell/models"
	"inkwell/models/res"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type UserUpdateRequest struct {
	Nickname string `json:"nickname" validate:"max=50"`
	Avatar   string `json:"avatar" validate:"max=256"`
	Bio      string `json:"bio" validate:"max=256"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// UserUpdate 更新个人资料，账号、密码、角色不在此接口范围
func (u *User) UserUpdate(c *gin.Context) {
	_claims, _ := c.Get("claims")
	claims := _claims.(*utils.CustomClaims)

	var req UserUpdateRequest
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

	var user models.UserModel
	if err := user.FindByID(claims.UserID); err != nil {
		res.Error(c, res.UserNotFound, "用户不存在")
		return
	}

	updates := map[string]interface{}{
		"nickname": req.Nickname,
		"avatar":   req.Avatar,
		"bio":      req.Bio,
		"email":    req.Email,
	}
	if err := user.UpdateProfile(updates); err != nil {
		global.Log.Error("user.UpdateProfile() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "更新用户信息失败")
		return
	}

	global.Log.Info("更新用户信息成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, nil)
}
