package model

import "time"

// Evaluation 实习评价 对应 evaluations，由 Kaprodi 填写
type Evaluation struct {
	ID           string    `gorm:"type:varchar(36);primaryKey"     bson:"id"            json:"id"`
	StudentID    string    `gorm:"type:varchar(36);not null;index" bson:"student_id"    json:"student_id"`
	InternshipID string    `gorm:"type:varchar(36);not null"       bson:"internship_id" json:"internship_id"`
	Grade        string    `gorm:"type:varchar(20);not null"       bson:"grade"         json:"grade"`
	Feedback     string    `gorm:"type:text"                       bson:"feedback"      json:"feedback"`
	EvaluatedBy  string    `gorm:"type:varchar(36);not null"       bson:"evaluated_by"  json:"evaluated_by"`
	EvaluatedAt  time.Time `gorm:"not null"                        bson:"evaluated_at"  json:"evaluated_at"`
}

// TableName 指定表名
func (Evaluation) TableName() string { return "evaluations" }
