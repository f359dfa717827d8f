package service

import (
	"context"

	"go.uber.org/zap"

	"internship-web/backend/internal/dto"
	"internship-web/backend/internal/model"
	"internship-web/backend/internal/repository"
)

// DashboardService 仪表盘统计接口
type DashboardService interface {
	// Stats Kaprodi 返回全局统计，学生返回本人统计
	Stats(ctx context.Context, userID, role string) (interface{}, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

func (s *dashboardService) Stats(ctx context.Context, userID, role string) (interface{}, error) {
	if role == model.RoleKaprodi {
		return s.kaprodiStats(ctx)
	}
	return s.studentStats(ctx, userID)
}

func (s *dashboardService) kaprodiStats(ctx context.Context) (*dto.KaprodiStatsResponse, error) {
	var (
		resp dto.KaprodiStatsResponse
		err  error
	)
	if resp.TotalStudents, err = s.repo.User.Count(ctx, model.RoleStudent); err != nil {
		s.logger.Error("统计学生数失败", zap.Error(err))
		return nil, err
	}
	if resp.TotalInternships, err = s.repo.Internship.Count(ctx); err != nil {
		s.logger.Error("统计实习数失败", zap.Error(err))
		return nil, err
	}
	if resp.TotalReports, err = s.repo.Report.Count(ctx, repository.RecordFilter{}); err != nil {
		s.logger.Error("统计报告数失败", zap.Error(err))
		return nil, err
	}
	pending := repository.RecordFilter{Status: string(model.ApplicationPending)}
	if resp.PendingApplications, err = s.repo.Application.Count(ctx, pending); err != nil {
		s.logger.Error("统计待审批申请失败", zap.Error(err))
		return nil, err
	}
	return &resp, nil
}

func (s *dashboardService) studentStats(ctx context.Context, userID string) (*dto.StudentStatsResponse, error) {
	var (
		resp dto.StudentStatsResponse
		err  error
	)
	own := repository.RecordFilter{StudentID: userID}
	if resp.Applications, err = s.repo.Application.Count(ctx, own); err != nil {
		s.logger.Error("统计申请数失败", zap.Error(err))
		return nil, err
	}
	if resp.Reports, err = s.repo.Report.Count(ctx, own); err != nil {
		s.logger.Error("统计报告数失败", zap.Error(err))
		return nil, err
	}
	if resp.Evaluations, err = s.repo.Evaluation.Count(ctx, own); err != nil {
		s.logger.Error("统计评价数失败", zap.Error(err))
		return nil, err
	}
	return &resp, nil
}
