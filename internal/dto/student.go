package dto

// ── 学生管理 DTO ──

// CreateStudentRequest 新建学生账号（角色固定为 student）
type CreateStudentRequest struct {
	Username  string  `json:"username"   binding:"required,max=100"`
	Password  string  `json:"password"   binding:"required"`
	Email     string  `json:"email"      binding:"required,max=255"`
	FullName  string  `json:"full_name"  binding:"required,max=200"`
	StudentID *string `json:"student_id" binding:"omitempty,max=50"`
}

// UpdateStudentRequest 更新学生信息，仅覆盖请求中出现的字段
type UpdateStudentRequest struct {
	Username  *string `json:"username"   binding:"omitempty,min=1,max=100"`
	Password  *string `json:"password"   binding:"omitempty,min=1"`
	Email     *string `json:"email"      binding:"omitempty,max=255"`
	FullName  *string `json:"full_name"  binding:"omitempty,min=1,max=200"`
	StudentID *string `json:"student_id" binding:"omitempty,max=50"`
}

// StudentResponse 学生信息响应
type StudentResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FullName  string  `json:"full_name"`
	StudentID *string `json:"student_id"`
	CreatedAt string  `json:"created_at"`
}
