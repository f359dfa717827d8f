package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"internship-web/backend/pkg/response"
)

// HealthHandler 健康检查
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler 创建 HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// Health 存活探针，不检查下游依赖
// GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	response.OK(c, gin.H{
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
	})
}
