package ctypes

// UserRole 用户角色
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// UserStatus 用户状态，disabled的用户无法登录和发布内容
type UserStatus string

const (
	UserNormal   UserStatus = "normal"
	UserDisabled UserStatus = "disabled"
)
