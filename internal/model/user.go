package model

import "time"

// 系统固定的两种角色
const (
	RoleStudent = "student"
	RoleKaprodi = "kaprodi"
)

// User 用户 对应 users
// Password 仅保存摘要；StudentID 只对学生角色有值
type User struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"            bson:"id"         json:"id"`
	Username  string    `gorm:"type:varchar(100);not null;uniqueIndex" bson:"username"   json:"username"`
	Email     string    `gorm:"type:varchar(255);not null"             bson:"email"      json:"email"`
	Password  string    `gorm:"type:varchar(255);not null"             bson:"password"   json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;index"        bson:"role"       json:"role"`
	FullName  string    `gorm:"type:varchar(200);not null"             bson:"full_name"  json:"full_name"`
	StudentID *string   `gorm:"type:varchar(50)"                       bson:"student_id" json:"student_id"`
	CreatedAt time.Time `gorm:"not null"                               bson:"created_at" json:"created_at"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// ValidRole 校验角色是否属于固定角色集合
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleKaprodi
}
