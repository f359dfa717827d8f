package dto

// ── 实习报告 DTO ──

// CreateReportRequest 学生提交报告
type CreateReportRequest struct {
	InternshipID string  `json:"internship_id" binding:"required"`
	Title        string  `json:"title"         binding:"required,max=200"`
	Content      string  `json:"content"`
	FilePath     *string `json:"file_path"     binding:"omitempty,max=500"`
}

// UpdateReportStatusRequest 审阅报告（表单字段 status，也接受 JSON）
type UpdateReportStatusRequest struct {
	Status string `form:"status" json:"status" binding:"required,report_status"`
}

// ReportResponse 报告响应
type ReportResponse struct {
	ID              string  `json:"id"`
	StudentID       string  `json:"student_id"`
	InternshipID    string  `json:"internship_id"`
	Title           string  `json:"title"`
	Content         string  `json:"content"`
	FilePath        *string `json:"file_path"`
	SubmittedAt     string  `json:"submitted_at"`
	Status          string  `json:"status"`
	StudentName     *string `json:"student_name,omitempty"`
	InternshipTitle string  `json:"internship_title"`
}
