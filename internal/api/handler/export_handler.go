package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"internship-web/backend/internal/service"
	"internship-web/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportApplications 导出全部申请
// GET /api/export/applications
func (h *ExportHandler) ExportApplications(c *gin.Context) {
	h.send(c, h.exportSvc.ExportApplications)
}

// ExportEvaluations 导出全部评价
// GET /api/export/evaluations
func (h *ExportHandler) ExportEvaluations(c *gin.Context) {
	h.send(c, h.exportSvc.ExportEvaluations)
}

func (h *ExportHandler) send(c *gin.Context, export func(ctx context.Context) (*bytes.Buffer, string, error)) {
	buf, filename, err := export(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
