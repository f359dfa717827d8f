package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"internship-web/backend/internal/dto"
	"internship-web/backend/internal/model"
	"internship-web/backend/internal/repository"
)

// EvaluationService 实习评价业务接口
type EvaluationService interface {
	// Create evaluated_by 固定为调用者
	Create(ctx context.Context, req *dto.CreateEvaluationRequest, callerID string) (string, error)
	List(ctx context.Context, userID, role string) ([]dto.EvaluationResponse, error)
}

type evaluationService struct {
	repo   *repository.Repository
	names  *nameResolver
	logger *zap.Logger
	now    func() time.Time
}

// NewEvaluationService 创建 EvaluationService 实例
func NewEvaluationService(repo *repository.Repository, names *nameResolver, logger *zap.Logger) EvaluationService {
	return &evaluationService{
		repo:   repo,
		names:  names,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *evaluationService) Create(ctx context.Context, req *dto.CreateEvaluationRequest, callerID string) (string, error) {
	eval := &model.Evaluation{
		ID:           uuid.NewString(),
		StudentID:    req.StudentID,
		InternshipID: req.InternshipID,
		Grade:        req.Grade,
		Feedback:     req.Feedback,
		EvaluatedBy:  callerID,
		EvaluatedAt:  s.now(),
	}
	if err := s.repo.Evaluation.Create(ctx, eval); err != nil {
		s.logger.Error("创建评价失败", zap.Error(err))
		return "", err
	}
	return eval.ID, nil
}

func (s *evaluationService) List(ctx context.Context, userID, role string) ([]dto.EvaluationResponse, error) {
	isKaprodi := role == model.RoleKaprodi
	filter := repository.RecordFilter{}
	if !isKaprodi {
		filter.StudentID = userID
	}

	evals, err := s.repo.Evaluation.List(ctx, filter)
	if err != nil {
		s.logger.Error("查询评价列表失败", zap.Error(err))
		return nil, err
	}

	names := s.names.lookup()
	result := make([]dto.EvaluationResponse, 0, len(evals))
	for i := range evals {
		e := &evals[i]
		title, err := names.InternshipTitle(ctx, e.InternshipID)
		if err != nil {
			s.logger.Error("关联实习标题失败", zap.Error(err))
			return nil, err
		}
		item := dto.EvaluationResponse{
			ID:              e.ID,
			StudentID:       e.StudentID,
			InternshipID:    e.InternshipID,
			Grade:           e.Grade,
			Feedback:        e.Feedback,
			EvaluatedBy:     e.EvaluatedBy,
			EvaluatedAt:     formatTime(e.EvaluatedAt),
			InternshipTitle: displayName(title),
		}
		if isKaprodi {
			student, err := names.StudentName(ctx, e.StudentID)
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
