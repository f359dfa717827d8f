package handler

import (
	"github.com/gin-gonic/gin"

	"internship-web/backend/internal/dto"
	"internship-web/backend/internal/service"
	"internship-web/backend/pkg/response"
)

// EvaluationHandler 实习评价 HTTP 处理器
type EvaluationHandler struct {
	evaluationSvc service.EvaluationService
}

// NewEvaluationHandler 创建 EvaluationHandler
func NewEvaluationHandler(evaluationSvc service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationSvc: evaluationSvc}
}

// Create Kaprodi 填写评价
// POST /api/evaluations
func (h *EvaluationHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	id, err := h.evaluationSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, "Evaluation created successfully", id)
}

// List 评价列表
// GET /api/evaluations
func (h *EvaluationHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	result, err := h.evaluationSvc.List(c.Request.Context(), userID, role)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
