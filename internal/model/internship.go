package model

import "time"

// InternshipStatusActive 实习项目默认状态（自由文本，无状态机）
const InternshipStatusActive = "active"

// InternshipProgram 实习项目 对应 internships
// MaxStudents 仅作展示，不做名额校验
type InternshipProgram struct {
	ID           string    `gorm:"type:varchar(36);primaryKey"        bson:"id"           json:"id"`
	Title        string    `gorm:"type:varchar(200);not null"         bson:"title"        json:"title"`
	CompanyName  string    `gorm:"type:varchar(200);not null"         bson:"company_name" json:"company_name"`
	Description  string    `gorm:"type:text"                          bson:"description"  json:"description"`
	Duration     string    `gorm:"type:varchar(100)"                  bson:"duration"     json:"duration"`
	Requirements string    `gorm:"type:text"                          bson:"requirements" json:"requirements"`
	MaxStudents  int       `gorm:"not null;default:0"                 bson:"max_students" json:"max_students"`
	Status       string    `gorm:"type:varchar(50);not null"          bson:"status"       json:"status"`
	CreatedBy    string    `gorm:"type:varchar(36);not null"          bson:"created_by"   json:"created_by"`
	CreatedAt    time.Time `gorm:"not null"                           bson:"created_at"   json:"created_at"`
}

// TableName 指定表名
func (InternshipProgram) TableName() string { return "internships" }
