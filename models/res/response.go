package res

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Success bool         `json:"success"` // 请求是否成功
	Code    ResponseCode `json:"code"`    // 业务状态码
	Message string       `json:"message"` // 响应信息
	Data    interface{}  `json:"data"`    // 响应数据
}

// PageData 分页数据结构
type PageData[T any] struct {
	List       T     `json:"list"`        // 数据列表
	Total      int64 `json:"total"`       // 总记录数
	Page       int   `json:"page"`        // 当前页码
	PageSize   int   `json:"page_size"`   // 每页大小
	TotalPages int   `json:"total_pages"` // 总页数
	HasMore    bool  `json:"has_more"`    // 是否有更多数据
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	response(c, http.StatusOK, 0, "success", data)
}

// SuccessWithPage 分页响应
func SuccessWithPage[T any](c *gin.Context, list T, total int64, page, pageSize int) {
	if pageSize <= 0 {
		pageSize = 10
	}
	totalPages := (int(total) + pageSize - 1) / pageSize
	Success(c, PageData[T]{
		List:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	})
}

// Error 业务错误响应，HTTP层仍是200
func Error(c *gin.Context, code ResponseCode, msg string) {
	if msg == "" {
		msg = GetMsg(code)
	}
	response(c, http.StatusOK, code, msg, nil)
}

// HttpError 携带HTTP状态码的错误响应
func HttpError(c *gin.Context, httpStatus int, code ResponseCode, msg string) {
	if msg == "" {
		msg = GetMsg(code)
	}
	response(c, httpStatus, code, msg, nil)
}

func response(c *gin.Context, httpStatus int, code ResponseCode, msg string, data interface{}) {
	c.JSON(httpStatus, Response{
		Success: code == 0,
		Code:    code,
		Message: msg,
		Data:    data,
	})
}
