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

// InternshipService 实习项目业务接口
type InternshipService interface {
	List(ctx context.Context) ([]dto.InternshipResponse, error)
	// Create created_by 固定为调用者
	Create(ctx context.Context, req *dto.CreateInternshipRequest, callerID string) (string, error)
	Update(ctx context.Context, id string, req *dto.UpdateInternshipRequest) error
	Delete(ctx context.Context, id string) error
}

type internshipService struct {
	repo   *repository.Repository
	names  *nameResolver
	logger *zap.Logger
	now    func() time.Time
}

// NewInternshipService 创建 InternshipService 实例
func NewInternshipService(repo *repository.Repository, names *nameResolver, logger *zap.Logger) InternshipService {
	return &internshipService{
		repo:   repo,
		names:  names,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *internshipService) List(ctx context.Context) ([]dto.InternshipResponse, error) {
	programs, err := s.repo.Internship.List(ctx)
	if err != nil {
		s.logger.Error("查询实习列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.InternshipResponse, 0, len(programs))
	for i := range programs {
		result = append(result, toInternshipResponse(&programs[i]))
	}
	return result, nil
}

func (s *internshipService) Create(ctx context.Context, req *dto.CreateInternshipRequest, callerID string) (string, error) {
	status := req.Status
	if status == "" {
		status = model.InternshipStatusActive
	}

	program := &model.InternshipProgram{
		ID:           uuid.NewString(),
		Title:        req.Title,
		CompanyName:  req.CompanyName,
		Description:  req.Description,
		Duration:     req.Duration,
		Requirements: req.Requirements,
		MaxStudents:  req.MaxStudents,
		Status:       status,
		CreatedBy:    callerID,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Internship.Create(ctx, program); err != nil {
		s.logger.Error("创建实习项目失败", zap.Error(err))
		return "", err
	}

	s.logger.Info("实习项目已创建", zap.String("id", program.ID), zap.String("created_by", callerID))
	return program.ID, nil
}

func (s *internshipService) Update(ctx context.Context, id string, req *dto.UpdateInternshipRequest) error {
	fields := repository.Fields{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.CompanyName != nil {
		fields["company_name"] = *req.CompanyName
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.Requirements != nil {
		fields["requirements"] = *req.Requirements
	}
	if req.MaxStudents != nil {
		fields["max_students"] = *req.MaxStudents
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if err := s.repo.Internship.Update(ctx, id, fields); err != nil {
		s.logger.Error("更新实习项目失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if req.Title != nil {
		s.names.invalidate(ctx, nameKindInternship, id)
	}
	return nil
}

func (s *internshipService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Internship.Delete(ctx, id); err != nil {
		s.logger.Error("删除实习项目失败", zap.String("id", id), zap.Error(err))
		return err
	}
	s.names.invalidate(ctx, nameKindInternship, id)
	return nil
}

func toInternshipResponse(p *model.InternshipProgram) dto.InternshipResponse {
	return dto.InternshipResponse{
		ID:           p.ID,
		Title:        p.Title,
		CompanyName:  p.CompanyName,
		Description:  p.Description,
		Duration:     p.Duration,
		Requirements: p.Requirements,
		MaxStudents:  p.MaxStudents,
		Status:       p.Status,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    formatTime(p.CreatedAt),
	}
}
