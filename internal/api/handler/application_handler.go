package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"internship-web/backend/internal/dto"
	"internship-web/backend/internal/service"
	"internship-web/backend/pkg/response"
)

// ApplicationHandler 实习申请 HTTP 处理器
type ApplicationHandler struct {
	applicationSvc service.ApplicationService
}

// NewApplicationHandler 创建 ApplicationHandler
func NewApplicationHandler(applicationSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationSvc: applicationSvc}
}

// Create 学生提交申请
// POST /api/applications
func (h *ApplicationHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	id, err := h.applicationSvc.Apply(c.Request.Context(), &req, userID)
	if err != nil {
		handleStatusError(c, err)
		return
	}
	response.Created(c, "Application submitted successfully", id)
}

// List 申请列表（Kaprodi 全部，学生本人）
// GET /api/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	result, err := h.applicationSvc.List(c.Request.Context(), userID, role)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// UpdateStatus 审批申请（表单字段 status，也接受 JSON）
// PUT /api/applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	if err := h.applicationSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		handleStatusError(c, err)
		return
	}
	response.Message(c, "Application status updated successfully")
}

// handleStatusError 申请与报告共用的业务错误映射
func handleStatusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAlreadyApplied):
		response.BadRequest(c, response.CodeAlreadyApplied, "Already applied to this internship")
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, response.CodeInvalidStatus, "Invalid status")
	case errors.Is(err, service.ErrInvalidTransition):
		response.BadRequest(c, response.CodeInvalidTransition, "Status transition not allowed")
	default:
		response.InternalError(c)
	}
}
