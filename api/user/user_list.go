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

type UserListRequest struct {
	models.PageInfo
}

// UserList 用户列表，仅管理员
func (u *User) UserList(c *gin.Context) {
	var req UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		global.Log.Error("c.ShouldBindQuery() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err := utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	query := global.DB.Model(&models.UserModel{})
	if req.Key != "" {
		query = query.Where("account LIKE ? OR nickname LIKE ?", "%"+req.Key+"%", "%"+req.Key+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		global.Log.Error("统计用户总数失败", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查询用户失败")
		return
	}

	var users []models.UserModel
	err = query.
		Order("created_at DESC").
		Limit(req.PageSize).
		Offset((req.Page - 1) * req.PageSize).
		Find(&users).Error
	if err != nil {
		global.Log.Error("查询用户列表失败", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "查询用户失败")
		return
	}

	res.SuccessWithPage(c, users, total, req.Page, req.PageSize)
}
