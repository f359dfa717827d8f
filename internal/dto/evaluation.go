package dto

// ── 实习评价 DTO ──

// CreateEvaluationRequest Kaprodi 填写评价
type CreateEvaluationRequest struct {
	StudentID    string `json:"student_id"    binding:"required"`
	InternshipID string `json:"internship_id" binding:"required"`
	Grade        string `json:"grade"         binding:"required,max=20"`
	Feedback     string `json:"feedback"`
}

// EvaluationResponse 评价响应
type EvaluationResponse struct {
	ID              string `json:"id"`
	StudentID       string `json:"student_id"`
	InternshipID    string `json:"internship_id"`
	Grade           string `json:"grade"`
	Feedback        string `json:"feedback"`
	EvaluatedBy     string `json:"evaluated_by"`
	EvaluatedAt     string `json:"evaluated_at"`
	StudentName     *string `json:"student_name,omitempty"`
	InternshipTitle string `json:"internship_title"`
}
