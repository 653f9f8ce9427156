package user

import (
	"inkwell/global"
	"inkwell/models"
	"inkwell/models/ctypes"
	"inkwell/models/res"
	"inkwell/service/redis_ser"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type UserStateRequest struct {
	ID     uint              `json:"id" validate:"required"`
	Status ctypes.UserStatus `json:"status" validate:"required,oneof=normal disabled"`
}

// UserState 启用或禁用账号，仅管理员
func (u *User) UserState(c *gin.Context) {
	var req UserStateRequest
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
	if err := user.FindByID(req.ID); err != nil {
		res.Error(c, res.UserNotFound, "用户不存在")
		return
	}

	if user.IsAdmin() {
		res.Error(c, res.PermissionDenied, "不能操作管理员账号")
		return
	}

	if err := user.UpdateStatus(req.Status); err != nil {
		global.Log.Error("user.UpdateStatus() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "更新账号状态失败")
		return
	}

	// 禁用立刻生效，refresh token一并作废
	if req.Status == ctypes.UserDisabled {
		if err := redis_ser.DeleteRefreshToken(user.ID); err != nil {
			global.Log.Warn("作废refresh token失败", zap.String("error", err.Error()))
		}
	}

	global.Log.Info("更新账号状态成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, nil)
}
