package model

import "time"

// Application 实习申请 对应 applications
// (student_id, internship_id) 唯一
type Application struct {
	ID           string            `gorm:"type:varchar(36);primaryKey"                                  bson:"id"            json:"id"`
	StudentID    string            `gorm:"type:varchar(36);not null;uniqueIndex:uk_applications_pair"  bson:"student_id"    json:"student_id"`
	InternshipID string            `gorm:"type:varchar(36);not null;uniqueIndex:uk_applications_pair"  bson:"internship_id" json:"internship_id"`
	Status       ApplicationStatus `gorm:"type:varchar(20);not null;index"                              bson:"status"        json:"status"`
	AppliedAt    time.Time         `gorm:"not null"                                                     bson:"applied_at"    json:"applied_at"`
	Documents    StringArray       `gorm:"type:text[];not null"                                         bson:"documents"     json:"documents"`
}

// TableName 指定表名
func (Application) TableName() string { return "applications" }
