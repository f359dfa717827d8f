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

// ReportService 实习报告业务接口
type ReportService interface {
	// Create student_id 固定为调用者
	Create(ctx context.Context, req *dto.CreateReportRequest, studentID string) (string, error)
	List(ctx context.Context, userID, role string) ([]dto.ReportResponse, error)
	// UpdateStatus Kaprodi 审阅报告；id 不存在时静默成功
	UpdateStatus(ctx context.Context, id string, status string) error
}

type reportService struct {
	repo   *repository.Repository
	names  *nameResolver
	logger *zap.Logger
	now    func() time.Time
}

// NewReportService 创建 ReportService 实例
func NewReportService(repo *repository.Repository, names *nameResolver, logger *zap.Logger) ReportService {
	return &reportService{
		repo:   repo,
		names:  names,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *reportService) Create(ctx context.Context, req *dto.CreateReportRequest, studentID string) (string, error) {
	report := &model.Report{
		ID:           uuid.NewString(),
		StudentID:    studentID,
		InternshipID: req.InternshipID,
		Title:        req.Title,
		Content:      req.Content,
		FilePath:     req.FilePath,
		SubmittedAt:  s.now(),
		Status:       model.ReportSubmitted,
	}
	if err := s.repo.Report.Create(ctx, report); err != nil {
		s.logger.Error("提交报告失败", zap.Error(err))
		return "", err
	}
	return report.ID, nil
}

func (s *reportService) List(ctx context.Context, userID, role string) ([]dto.ReportResponse, error) {
	isKaprodi := role == model.RoleKaprodi
	filter := repository.RecordFilter{}
	if !isKaprodi {
		filter.StudentID = userID
	}

	reports, err := s.repo.Report.List(ctx, filter)
	if err != nil {
		s.logger.Error("查询报告列表失败", zap.Error(err))
		return nil, err
	}

	names := s.names.lookup()
	result := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		r := &reports[i]
		title, err := names.InternshipTitle(ctx, r.InternshipID)
		if err != nil {
			s.logger.Error("关联实习标题失败", zap.Error(err))
			return nil, err
		}
		item := dto.ReportResponse{
			ID:              r.ID,
			StudentID:       r.StudentID,
			InternshipID:    r.InternshipID,
			Title:           r.Title,
			Content:         r.Content,
			FilePath:        r.FilePath,
			SubmittedAt:     formatTime(r.SubmittedAt),
			Status:          string(r.Status),
			InternshipTitle: displayName(title),
		}
		if isKaprodi {
			student, err := names.StudentName(ctx, r.StudentID)
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

func (s *reportService) UpdateStatus(ctx context.Context, id string, status string) error {
	next := model.ReportStatus(status)
	if !next.Valid() {
		return ErrInvalidStatus
	}

	report, err := s.repo.Report.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil
		}
		s.logger.Error("查询报告失败", zap.Error(err))
		return err
	}
	if !report.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	if report.Status == next {
		return nil
	}

	if err := s.repo.Report.UpdateStatus(ctx, id, next); err != nil {
		s.logger.Error("更新报告状态失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
