package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"internship-web/backend/internal/dto"
	"internship-web/backend/internal/model"
	"internship-web/backend/internal/repository"
	pkgerrors "internship-web/backend/pkg/errors"
)

// ── 申请/报告状态相关业务错误 ──

var (
	ErrAlreadyApplied    = errors.New("已申请过该实习")
	ErrInvalidStatus     = errors.New("未知的状态值")
	ErrInvalidTransition = errors.New("不允许的状态变更")
)

// ApplicationService 实习申请业务接口
type ApplicationService interface {
	// Apply 学生提交申请，同一学生对同一实习只能申请一次
	Apply(ctx context.Context, req *dto.CreateApplicationRequest, studentID string) (string, error)
	// List Kaprodi 查看全部（附学生姓名），学生只看本人
	List(ctx context.Context, userID, role string) ([]dto.ApplicationResponse, error)
	// UpdateStatus 按状态机审批；id 不存在时静默成功
	UpdateStatus(ctx context.Context, id string, status string) error
}

type applicationService struct {
	repo   *repository.Repository
	names  *nameResolver
	logger *zap.Logger
	now    func() time.Time
}

// NewApplicationService 创建 ApplicationService 实例
func NewApplicationService(repo *repository.Repository, names *nameResolver, logger *zap.Logger) ApplicationService {
	return &applicationService{
		repo:   repo,
		names:  names,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ────────────────────── Apply ──────────────────────

func (s *applicationService) Apply(ctx context.Context, req *dto.CreateApplicationRequest, studentID string) (string, error) {
	// 1. 先查重；并发情况下由存储层唯一索引兜底
	if _, err := s.repo.Application.FindByPair(ctx, studentID, req.InternshipID); err == nil {
		return "", ErrAlreadyApplied
	} else if !errors.Is(err, pkgerrors.ErrNotFound) {
		s.logger.Error("查询申请失败", zap.Error(err))
		return "", err
	}

	// 2. 写入
	app := &model.Application{
		ID:           uuid.NewString(),
		StudentID:    studentID,
		InternshipID: req.InternshipID,
		Status:       model.ApplicationPending,
		AppliedAt:    s.now(),
		Documents:    model.StringArray{},
	}
	if err := s.repo.Application.Create(ctx, app); err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicate) {
			return "", ErrAlreadyApplied
		}
		s.logger.Error("创建申请失败", zap.Error(err))
		return "", err
	}
	return app.ID, nil
}

// ────────────────────── List ──────────────────────

func (s *applicationService) List(ctx context.Context, userID, role string) ([]dto.ApplicationResponse, error) {
	isKaprodi := role == model.RoleKaprodi
	filter := repository.RecordFilter{}
	if !isKaprodi {
		filter.StudentID = userID
	}

	apps, err := s.repo.Application.List(ctx, filter)
	if err != nil {
		s.logger.Error("查询申请列表失败", zap.Error(err))
		return nil, err
	}

	names := s.names.lookup()
	result := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		a := &apps[i]
		title, err := names.InternshipTitle(ctx, a.InternshipID)
		if err != nil {
			s.logger.Error("关联实习标题失败", zap.Error(err))
			return nil, err
		}

		docs := []string(a.Documents)
		if docs == nil {
			docs = []string{}
		}
		item := dto.ApplicationResponse{
			ID:              a.ID,
			StudentID:       a.StudentID,
			InternshipID:    a.InternshipID,
			Status:          string(a.Status),
			AppliedAt:       formatTime(a.AppliedAt),
			Documents:       docs,
			InternshipTitle: displayName(title),
		}
		if isKaprodi {
			student, err := names.StudentName(ctx, a.StudentID)
			if err != nil {
				s.logger.Error("关联学生姓名失败", zap.Error(err))
				return nil, err
			}
			item.StudentName = displayNameField(student)
		}
		result = append(result, item)
	}
	return result, nil
}

// ────────────────────── UpdateStatus ──────────────────────

func (s *applicationService) UpdateStatus(ctx context.Context, id string, status string) error {
	next := model.ApplicationStatus(status)
	if !next.Valid() {
		return ErrInvalidStatus
	}

	app, err := s.repo.Application.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil
		}
		s.logger.Error("查询申请失败", zap.Error(err))
		return err
	}
	if !app.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	if app.Status == next {
		return nil
	}

	if err := s.repo.Application.UpdateStatus(ctx, id, next); err != nil {
		s.logger.Error("更新申请状态失败", zap.String("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("申请状态已更新",
		zap.String("id", id),
		zap.String("from", string(app.Status)),
		zap.String("to", status),
	)
	return nil
}
