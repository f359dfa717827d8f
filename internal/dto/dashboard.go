package dto

// ── 仪表盘 DTO ──

// KaprodiStatsResponse Kaprodi 视角的全局统计
type KaprodiStatsResponse struct {
	TotalStudents       int64 `json:"total_students"`
	TotalInternships    int64 `json:"total_internships"`
	TotalReports        int64 `json:"total_reports"`
	PendingApplications int64 `json:"pending_applications"`
}

// StudentStatsResponse 学生本人的统计
type StudentStatsResponse struct {
	Applications int64 `json:"applications"`
	Reports      int64 `json:"reports"`
	Evaluations  int64 `json:"evaluations"`
}
