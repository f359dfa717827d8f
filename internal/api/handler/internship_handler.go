package handler

import (
	"github.com/gin-gonic/gin"

	"internship-web/backend/internal/dto"
	"internship-web/backend/internal/service"
	"internship-web/backend/pkg/response"
)

// InternshipHandler 实习项目 HTTP 处理器
type InternshipHandler struct {
	internshipSvc service.InternshipService
}

// NewInternshipHandler 创建 InternshipHandler
func NewInternshipHandler(internshipSvc service.InternshipService) *InternshipHandler {
	return &InternshipHandler{internshipSvc: internshipSvc}
}

// List 实习项目列表（两种角色均可见全部）
// GET /api/internships
func (h *InternshipHandler) List(c *gin.Context) {
	result, err := h.internshipSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Create 新建实习项目
// POST /api/internships
func (h *InternshipHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	id, err := h.internshipSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, "Internship program created successfully", id)
}

// Update 更新实习项目
// PUT /api/internships/:id
func (h *InternshipHandler) Update(c *gin.Context) {
	var req dto.UpdateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	if err := h.internshipSvc.Update(c.Request.Context(), c.Param("id"), &req); err != nil {
		response.InternalError(c)
		return
	}
	response.Message(c, "Internship program updated successfully")
}

// Delete 删除实习项目
// DELETE /api/internships/:id
func (h *InternshipHandler) Delete(c *gin.Context) {
	if err := h.internshipSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.InternalError(c)
		return
	}
	response.Message(c, "Internship program deleted successfully")
}
