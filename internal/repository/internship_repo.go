package repository

import (
	"context"

	"gorm.io/gorm"

	"internship-web/backend/internal/model"
)

// InternshipRepository 实习项目数据访问接口
type InternshipRepository interface {
	Create(ctx context.Context, program *model.InternshipProgram) error
	GetByID(ctx context.Context, id string) (*model.InternshipProgram, error)
	List(ctx context.Context) ([]model.InternshipProgram, error)
	Update(ctx context.Context, id string, fields Fields) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type internshipRepo struct {
	db *gorm.DB
}

// NewInternshipRepo 创建 InternshipRepository 实例
func NewInternshipRepo(db *gorm.DB) InternshipRepository {
	return &internshipRepo{db: db}
}

func (r *internshipRepo) Create(ctx context.Context, program *model.InternshipProgram) error {
	return translateGormError(r.db.WithContext(ctx).Create(program).Error)
}

func (r *internshipRepo) GetByID(ctx context.Context, id string) (*model.InternshipProgram, error) {
	var program model.InternshipProgram
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&program).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &program, nil
}

func (r *internshipRepo) List(ctx context.Context) ([]model.InternshipProgram, error) {
	programs := make([]model.InternshipProgram, 0)
	err := r.db.WithContext(ctx).Find(&programs).Error
	return programs, translateGormError(err)
}

func (r *internshipRepo) Update(ctx context.Context, id string, fields Fields) error {
	if len(fields) == 0 {
		return nil
	}
	return translateGormError(r.db.WithContext(ctx).
		Model(&model.InternshipProgram{}).
		Where("id = ?", id).
		Updates(map[string]interface{}(fields)).Error)
}

func (r *internshipRepo) Delete(ctx context.Context, id string) error {
	return translateGormError(r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.InternshipProgram{}).Error)
}

func (r *internshipRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.InternshipProgram{}).Count(&total).Error
	return total, translateGormError(err)
}
