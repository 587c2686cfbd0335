package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 前端沿用旧版 Express 后端的响应习惯：
// 读取接口直接返回数组/对象，错误返回 {error}，同步接口返回 {success, message}。

// ErrorBody 错误响应体
type ErrorBody struct {
	Error string `json:"error"`
}

// SyncBody 同步接口响应体
type SyncBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// OK 200，payload 原样输出
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500
// 内部管理工具：错误明细直接透出便于运维诊断
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// SyncOK 同步成功
func SyncOK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SyncBody{Success: true, Message: message})
}

// SyncFail 同步失败
func SyncFail(c *gin.Context, httpStatus int, message, detail string) {
	c.JSON(httpStatus, SyncBody{Success: false, Message: message, Error: detail})
}
