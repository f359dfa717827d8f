package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"internship-web/backend/internal/dto"
	"internship-web/backend/internal/service"
	"internship-web/backend/pkg/response"
)

// StudentHandler 学生账号管理 HTTP 处理器（仅 Kaprodi）
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// List 学生列表
// GET /api/students
func (h *StudentHandler) List(c *gin.Context) {
	result, err := h.studentSvc.List(c.Request.Context())
	if err != nil {
		h.handleStudentError(c, err)
		return
	}
	response.OK(c, result)
}

// Create 新建学生账号
// POST /api/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	id, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}
	response.Created(c, "Student created successfully", id)
}

// Update 更新学生信息
// PUT /api/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	if err := h.studentSvc.Update(c.Request.Context(), c.Param("id"), &req); err != nil {
		h.handleStudentError(c, err)
		return
	}
	response.Message(c, "Student updated successfully")
}

// Delete 删除学生账号
// DELETE /api/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.studentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleStudentError(c, err)
		return
	}
	response.Message(c, "Student deleted successfully")
}

func (h *StudentHandler) handleStudentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateUsername):
		response.BadRequest(c, response.CodeDuplicateUsername, "Username already exists")
	default:
		response.InternalError(c)
	}
}
