package repository

import (
	"context"

	"gorm.io/gorm"

	"internship-web/backend/internal/model"
)

// ApplicationRepository 实习申请数据访问接口
type ApplicationRepository interface {
	// Create 写入申请；同一 (student_id, internship_id) 已存在时返回 ErrDuplicate
	Create(ctx context.Context, app *model.Application) error
	GetByID(ctx context.Context, id string) (*model.Application, error)
	FindByPair(ctx context.Context, studentID, internshipID string) (*model.Application, error)
	List(ctx context.Context, filter RecordFilter) ([]model.Application, error)
	UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) error
	Count(ctx context.Context, filter RecordFilter) (int64, error)
}

type applicationRepo struct {
	db *gorm.DB
}

// NewApplicationRepo 创建 ApplicationRepository 实例
func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *model.Application) error {
	return translateGormError(r.db.WithContext(ctx).Create(app).Error)
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&app).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &app, nil
}

func (r *applicationRepo) FindByPair(ctx context.Context, studentID, internshipID string) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND internship_id = ?", studentID, internshipID).
		First(&app).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &app, nil
}

func (r *applicationRepo) List(ctx context.Context, filter RecordFilter) ([]model.Application, error) {
	apps := make([]model.Application, 0)
	err := applyRecordFilter(r.db.WithContext(ctx), filter).Find(&apps).Error
	return apps, translateGormError(err)
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) error {
	return translateGormError(r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("id = ?", id).
		Update("status", status).Error)
}

func (r *applicationRepo) Count(ctx context.Context, filter RecordFilter) (int64, error) {
	var total int64
	err := applyRecordFilter(r.db.WithContext(ctx).Model(&model.Application{}), filter).Count(&total).Error
	return total, translateGormError(err)
}
