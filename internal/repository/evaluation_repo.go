package repository

import (
	"context"

	"gorm.io/gorm"

	"internship-web/backend/internal/model"
)

// EvaluationRepository 实习评价数据访问接口
type EvaluationRepository interface {
	Create(ctx context.Context, eval *model.Evaluation) error
	List(ctx context.Context, filter RecordFilter) ([]model.Evaluation, error)
	Count(ctx context.Context, filter RecordFilter) (int64, error)
}

type evaluationRepo struct {
	db *gorm.DB
}

// NewEvaluationRepo 创建 EvaluationRepository 实例
func NewEvaluationRepo(db *gorm.DB) EvaluationRepository {
	return &evaluationRepo{db: db}
}

func (r *evaluationRepo) Create(ctx context.Context, eval *model.Evaluation) error {
	return translateGormError(r.db.WithContext(ctx).Create(eval).Error)
}

func (r *evaluationRepo) List(ctx context.Context, filter RecordFilter) ([]model.Evaluation, error) {
	evals := make([]model.Evaluation, 0)
	err := applyRecordFilter(r.db.WithContext(ctx), filter).Find(&evals).Error
	return evals, translateGormError(err)
}

func (r *evaluationRepo) Count(ctx context.Context, filter RecordFilter) (int64, error) {
	var total int64
	err := applyRecordFilter(r.db.WithContext(ctx).Model(&model.Evaluation{}), filter).Count(&total).Error
	return total, translateGormError(err)
}
