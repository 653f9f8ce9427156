package res

// ResponseCode 响应码类型
type ResponseCode int

const (
	// 客户端错误码 (1000-1999)
	// 通用客户端错误 (1000-1099)
	BadRequest      ResponseCode = 1000 // 错误的请求
	Unauthorized    ResponseCode = 1001 // 未授权
	Forbidden       ResponseCode = 1003 // 禁止访问
	NotFound        ResponseCode = 1004 // 资源未找到
	TooManyRequests ResponseCode = 1007 // 请求过于频繁

	// 参数验证错误 (1100-1199)
	InvalidParameter ResponseCode = 1100 // 无效的参数
	MissingParameter ResponseCode = 1101 // 缺少参数
	InvalidFormat    ResponseCode = 1102 // 格式错误

	// 认证授权错误 (1200-1299)
	TokenExpired     ResponseCode = 1200 // 令牌过期
	TokenInvalid     ResponseCode = 1201 // 令牌无效
	TokenMissing     ResponseCode = 1202 // 缺少令牌
	PermissionDenied ResponseCode = 1204 // 权限不足
	CaptchaError     ResponseCode = 1205 // 验证码错误

	// 服务端错误码 (2000-2999)
	ServerError        ResponseCode = 2000 // 服务器内部错误
	ServiceUnavailable ResponseCode = 2001 // 服务不可用
	DBError            ResponseCode = 2100 // 数据库错误
	CacheError         ResponseCode = 2200 // 缓存错误
	SearchError        ResponseCode = 2300 // 搜索服务错误

	// 业务错误码 (3000-3999)
	// 用户相关错误 (3000-3099)
	UserNotFound      ResponseCode = 3000 // 用户不存在
	UserAlreadyExists ResponseCode = 3001 // 用户已存在
	PasswordError     ResponseCode = 3002 // 密码错误
	AccountDisabled   ResponseCode = 3004 // 账号已禁用

	// 文章相关错误 (3100-3199)
	ArticleNotFound ResponseCode = 3100 // 文章不存在
	ArticleNotOwner ResponseCode = 3101 // 不是文章作者

	// 评论相关错误 (3200-3299)
	CommentNotFound ResponseCode = 3200 // 评论不存在
	CommentNotOwner ResponseCode = 3201 // 不是评论作者
	CommentInvalid  ResponseCode = 3202 // 评论内容不合法

	// 交互相关错误 (3300-3399)
	InteractionBusy ResponseCode = 3300 // 上一次操作还在进行中
)

// CodeMsg 错误码消息映射
var CodeMsg = map[ResponseCode]string{
	BadRequest:      "请求参数错误",
	Unauthorized:    "未授权访问",
	Forbidden:       "禁止访问",
	NotFound:        "资源不存在",
	TooManyRequests: "请求过于频繁",

	InvalidParameter: "无效的参数",
	MissingParameter: "缺少必要参数",
	InvalidFormat:    "数据格式错误",

	TokenExpired:     "令牌已过期",
	TokenInvalid:     "令牌无效",
	TokenMissing:     "缺少令牌",
	PermissionDenied: "权限不足",
	CaptchaError:     "验证码错误",

	ServerError:        "服务器内部错误",
	ServiceUnavailable: "服务不可用",
	DBError:            "数据库操作失败",
	CacheError:         "缓存操作失败",
	SearchError:        "搜索服务不可用",

	UserNotFound:      "用户不存在",
	UserAlreadyExists: "用户已存在",
	PasswordError:     "密码错误",
	AccountDisabled:   "账号已禁用",

	ArticleNotFound: "文章不存在",
	ArticleNotOwner: "没有权限操作此文章",

	CommentNotFound: "评论不存在",
	CommentNotOwner: "没有权限操作此评论",
	CommentInvalid:  "评论内容不合法",

	InteractionBusy: "操作太快了，请稍后再试",
}

// GetMsg 获取错误码对应的消息
func GetMsg(code ResponseCode) string {
	msg, ok := CodeMsg[code]
	if ok {
		return msg
	}
	return "未知错误"
}
