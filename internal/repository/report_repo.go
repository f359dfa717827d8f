package repository

import (
	"context"

	"gorm.io/gorm"

	"internship-web/backend/internal/model"
)

// ReportRepository 实习报告数据访问接口
type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	GetByID(ctx context.Context, id string) (*model.Report, error)
	List(ctx context.Context, filter RecordFilter) ([]model.Report, error)
	UpdateStatus(ctx context.Context, id string, status model.ReportStatus) error
	Count(ctx context.Context, filter RecordFilter) (int64, error)
}

type reportRepo struct {
	db *gorm.DB
}

// NewReportRepo 创建 ReportRepository 实例
func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) Create(ctx context.Context, report *model.Report) error {
	return translateGormError(r.db.WithContext(ctx).Create(report).Error)
}

func (r *reportRepo) GetByID(ctx context.Context, id string) (*model.Report, error) {
	var report model.Report
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&report).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &report, nil
}

func (r *reportRepo) List(ctx context.Context, filter RecordFilter) ([]model.Report, error) {
	reports := make([]model.Report, 0)
	err := applyRecordFilter(r.db.WithContext(ctx), filter).Find(&reports).Error
	return reports, translateGormError(err)
}

func (r *reportRepo) UpdateStatus(ctx context.Context, id string, status model.ReportStatus) error {
	return translateGormError(r.db.WithContext(ctx).
		Model(&model.Report{}).
		Where("id = ?", id).
		Update("status", status).Error)
}

func (r *reportRepo) Count(ctx context.Context, filter RecordFilter) (int64, error) {
	var total int64
	err := applyRecordFilter(r.db.WithContext(ctx).Model(&model.Report{}), filter).Count(&total).Error
	return total, translateGormError(err)
}
