package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"internship-web/backend/internal/dto"
	"internship-web/backend/internal/model"
	"internship-web/backend/internal/repository"
	pkgerrors "internship-web/backend/pkg/errors"
	"internship-web/backend/pkg/password"
)

// timeLayout 对外输出的时间格式（UTC）
const timeLayout = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// StudentService 学生账号管理（仅 Kaprodi）
//
// 所有写操作只匹配 role=student 的用户；id 不存在时静默成功
type StudentService interface {
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Create(ctx context.Context, req *dto.CreateStudentRequest) (string, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) error
	Delete(ctx context.Context, id string) error
}

type studentService struct {
	repo   *repository.Repository
	names  *nameResolver
	logger *zap.Logger
	now    func() time.Time
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, names *nameResolver, logger *zap.Logger) StudentService {
	return &studentService{
		repo:   repo,
		names:  names,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ────────────────────── List ──────────────────────

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	users, err := s.repo.User.ListByRole(ctx, model.RoleStudent)
	if err != nil {
		s.logger.Error("查询学生列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StudentResponse, 0, len(users))
	for i := range users {
		u := &users[i]
		result = append(result, dto.StudentResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			FullName:  u.FullName,
			StudentID: u.StudentID,
			CreatedAt: formatTime(u.CreatedAt),
		})
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (string, error) {
	return createUser(ctx, s.repo, s.logger, newUserInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		Role:      model.RoleStudent,
		FullName:  req.FullName,
		StudentID: req.StudentID,
	}, s.now())
}

// ────────────────────── Update ──────────────────────

func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) error {
	fields := repository.Fields{}

	if req.Username != nil {
		// 改名不能与其他用户冲突
		other, err := s.repo.User.GetByUsername(ctx, *req.Username)
		switch {
		case err == nil && other.ID != id:
			return ErrDuplicateUsername
		case err != nil && !errors.Is(err, pkgerrors.ErrNotFound):
			s.logger.Error("查询用户失败", zap.Error(err))
			return err
		}
		fields["username"] = *req.Username
	}
	if req.Password != nil {
		digest, err := password.Hash(*req.Password)
		if err != nil {
			s.logger.Error("生成密码摘要失败", zap.Error(err))
			return err
		}
		fields["password"] = digest
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.StudentID != nil {
		fields["student_id"] = *req.StudentID
	}

	if err := s.repo.User.Update(ctx, id, model.RoleStudent, fields); err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicate) {
			return ErrDuplicateUsername
		}
		s.logger.Error("更新学生失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if req.FullName != nil {
		s.names.invalidate(ctx, nameKindStudent, id)
	}
	return nil
}

// ────────────────────── Delete ──────────────────────

// Delete 不级联删除申请、报告与评价，读取时这些记录的学生名回退为 "Unknown"
func (s *studentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.User.Delete(ctx, id, model.RoleStudent); err != nil {
		s.logger.Error("删除学生失败", zap.String("id", id), zap.Error(err))
		return err
	}
	s.names.invalidate(ctx, nameKindStudent, id)
	return nil
}
