package model

import "time"

// Report 实习报告 对应 reports
// FilePath 预留字段，当前没有上传流程写入
type Report struct {
	ID           string       `gorm:"type:varchar(36);primaryKey"      bson:"id"            json:"id"`
	StudentID    string       `gorm:"type:varchar(36);not null;index"  bson:"student_id"    json:"student_id"`
	InternshipID string       `gorm:"type:varchar(36);not null"        bson:"internship_id" json:"internship_id"`
	Title        string       `gorm:"type:varchar(200);not null"       bson:"title"         json:"title"`
	Content      string       `gorm:"type:text"                        bson:"content"       json:"content"`
	FilePath     *string      `gorm:"type:varchar(500)"                bson:"file_path"     json:"file_path"`
	SubmittedAt  time.Time    `gorm:"not null"                         bson:"submitted_at"  json:"submitted_at"`
	Status       ReportStatus `gorm:"type:varchar(30);not null"        bson:"status"        json:"status"`
}

// TableName 指定表名
func (Report) TableName() string { return "reports" }
