package models

import (
	"errors"
	"fmt"

	"inkwell/global"
	"inkwell/models/ctypes"
	"inkwell/utils"

	"gorm.io/gorm"
)

// AnonymousName 昵称和账号都为空时的兜底展示名
const AnonymousName = "匿名"

// PlaceholderAvatar 默认头像，站点配置缺省时使用
const PlaceholderAvatar = "/uploads/avatar/default.png"

// UserModel 用户模型
type UserModel struct {
	MODEL    `json:","`
	Nickname string            `json:"nickname" gorm:"size:50"`
	Account  string            `json:"account" gorm:"uniqueIndex:idx_account,length:191" validate:"required,min=5,max=191"`
	Password string            `json:"-" validate:"required,min=6"`
	Email    string            `json:"email"`
	Avatar   string            `json:"avatar" gorm:"size:256"`
	Bio      string            `json:"bio" gorm:"size:256"`
	Role     ctypes.UserRole   `json:"role" validate:"required"`
	Status   ctypes.UserStatus `json:"status" gorm:"size:16;default:normal"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// DisplayName 展示名，昵称 -> 账号 -> 匿名
func (u *UserModel) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}
	if u.Account != "" {
		return u.Account
	}
	return AnonymousName
}

// AvatarOrDefault 头像为空时使用占位头像
func (u *UserModel) AvatarOrDefault() string {
	if u.Avatar != "" {
		return u.Avatar
	}
	if global.Config != nil && global.Config.Site.PlaceholderAvatar != "" {
		return global.Config.Site.PlaceholderAvatar
	}
	return PlaceholderAvatar
}

// Create 创建用户
func (u *UserModel) Create() error {
	if err := utils.Validate(u); err != nil {
		return fmt.Errorf("输入验证失败: %w", err)
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := u.checkExist(); err != nil {
			return err
		}

		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("密码处理失败: %w", err)
		}
		u.Password = hashedPassword

		if u.Status == "" {
			u.Status = ctypes.UserNormal
		}

		if err := tx.Create(u).Error; err != nil {
			return fmt.Errorf("创建用户失败: %w", err)
		}

		return nil
	})
}

// checkExist 检查用户是否已存在
func (u *UserModel) checkExist() error {
	var exists bool
	err := global.DB.Model(&UserModel{}).
		Select("1").
		Where("account = ?", u.Account).
		Limit(1).
		Find(&exists).
		Error

	if err != nil {
		return fmt.Errorf("检查用户存在性失败: %w", err)
	}
	if exists {
		return errors.New("账号已存在")
	}
	return nil
}

// FindByAccount 根据账号查找用户
func (u *UserModel) FindByAccount(account string) error {
	return global.DB.Where("account = ?", account).Take(u).Error
}

// FindByID 根据ID查找用户
func (u *UserModel) FindByID(id uint) error {
	return global.DB.Take(u, id).Error
}

// UpdateProfile 更新用户信息
func (u *UserModel) UpdateProfile(updates map[string]interface{}) error {
	// 过滤敏感字段
	sensitiveFields := []string{"password", "account", "role", "status"}
	for _, field := range sensitiveFields {
		delete(updates, field)
	}

	return global.DB.Model(u).Updates(updates).Error
}

// UpdateStatus 更新用户状态（管理员操作）
func (u *UserModel) UpdateStatus(status ctypes.UserStatus) error {
	return global.DB.Model(u).Update("status", status).Error
}

// ValidatePassword 验证密码
func (u *UserModel) ValidatePassword(password string) bool {
	return utils.CheckPassword(u.Password, password)
}

// IsAdmin 检查是否为管理员
func (u *UserModel) IsAdmin() bool {
	return u.Role == ctypes.RoleAdmin
}

// IsDisabled 检查账号是否被禁用
func (u *UserModel) IsDisabled() bool {
	return u.Status == ctypes.UserDisabled
}

// GetTotalUsers 获取用户总数
func GetTotalUsers() (int64, error) {
	var count int64
	err := global.DB.Model(&UserModel{}).Count(&count).Error
	return count, err
}
