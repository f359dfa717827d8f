package dto

// ── 实习申请 DTO ──

// CreateApplicationRequest 学生提交申请
type CreateApplicationRequest struct {
	InternshipID string `json:"internship_id" binding:"required"`
}

// UpdateApplicationStatusRequest 审批申请（表单字段 status，也接受 JSON）
type UpdateApplicationStatusRequest struct {
	Status string `form:"status" json:"status" binding:"required,application_status"`
}

// ApplicationResponse 申请响应
// StudentName 仅在 Kaprodi 视角下返回；Kaprodi 视角下该字段始终存在
type ApplicationResponse struct {
	ID              string   `json:"id"`
	StudentID       string   `json:"student_id"`
	InternshipID    string   `json:"internship_id"`
	Status          string   `json:"status"`
	AppliedAt       string   `json:"applied_at"`
	Documents       []string `json:"documents"`
	StudentName     *string  `json:"student_name,omitempty"`
	InternshipTitle string   `json:"internship_title"`
}
