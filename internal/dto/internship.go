package dto

// ── 实习项目 DTO ──

// CreateInternshipRequest 新建实习项目
// created_by 由服务端按当前用户写入，请求体中的值会被忽略
type CreateInternshipRequest struct {
	Title        string `json:"title"         binding:"required,max=200"`
	CompanyName  string `json:"company_name"  binding:"required,max=200"`
	Description  string `json:"description"`
	Duration     string `json:"duration"      binding:"max=100"`
	Requirements string `json:"requirements"`
	MaxStudents  int    `json:"max_students"  binding:"min=0"`
	Status       string `json:"status"        binding:"max=50"`
}

// UpdateInternshipRequest 更新实习项目，仅覆盖请求中出现的字段
type UpdateInternshipRequest struct {
	Title        *string `json:"title"         binding:"omitempty,max=200"`
	CompanyName  *string `json:"company_name"  binding:"omitempty,max=200"`
	Description  *string `json:"description"`
	Duration     *string `json:"duration"      binding:"omitempty,max=100"`
	Requirements *string `json:"requirements"`
	MaxStudents  *int    `json:"max_students"  binding:"omitempty,min=0"`
	Status       *string `json:"status"        binding:"omitempty,max=50"`
}

// InternshipResponse 实习项目响应
type InternshipResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	CompanyName  string `json:"company_name"`
	Description  string `json:"description"`
	Duration     string `json:"duration"`
	Requirements string `json:"requirements"`
	MaxStudents  int    `json:"max_students"`
	Status       string `json:"status"`
	CreatedBy    string `json:"created_by"`
	CreatedAt    string `json:"created_at"`
}
