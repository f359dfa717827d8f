package handler

import (
	"github.com/gin-gonic/gin"

	"internship-web/backend/internal/dto"
	"internship-web/backend/internal/service"
	"internship-web/backend/pkg/response"
)

// ReportHandler 实习报告 HTTP 处理器
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler 创建 ReportHandler
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Create 学生提交报告
// POST /api/reports
func (h *ReportHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	id, err := h.reportSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, "Report submitted successfully", id)
}

// List 报告列表
// GET /api/reports
func (h *ReportHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	result, err := h.reportSvc.List(c.Request.Context(), userID, role)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// UpdateStatus 审阅报告
// PUT /api/reports/:id/status
func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateReportStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	if err := h.reportSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		handleStatusError(c, err)
		return
	}
	response.Message(c, "Report status updated successfully")
}
