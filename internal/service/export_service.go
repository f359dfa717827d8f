package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"internship-web/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成 Excel 文件失败")

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出全部记录（Kaprodi 视角），每类记录一个 Sheet
//   - 关联名称与列表接口一致，无法解析时写 "Unknown"
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	ExportApplications(ctx context.Context) (*bytes.Buffer, string, error)
	ExportEvaluations(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	names  *nameResolver
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, names *nameResolver, logger *zap.Logger) ExportService {
	return &exportService{
		repo:   repo,
		names:  names,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ═══════════════════════════════════════════════════════════
// ExportApplications 导出申请列表
// ═══════════════════════════════════════════════════════════
//
// 列：ID | Student | Internship | Status | Applied At

func (s *exportService) ExportApplications(ctx context.Context) (*bytes.Buffer, string, error) {
	apps, err := s.repo.Application.List(ctx, repository.RecordFilter{})
	if err != nil {
		s.logger.Error("查询申请列表失败", zap.Error(err))
		return nil, "", err
	}

	names := s.names.lookup()
	rows := make([][]interface{}, 0, len(apps))
	for i := range apps {
		a := &apps[i]
		student, err := names.StudentName(ctx, a.StudentID)
		if err != nil {
			return nil, "", err
		}
		title, err := names.InternshipTitle(ctx, a.InternshipID)
		if err != nil {
			return nil, "", err
		}
		rows = append(rows, []interface{}{
			a.ID, displayName(student), displayName(title), string(a.Status), formatTime(a.AppliedAt),
		})
	}

	header := []string{"ID", "Student", "Internship", "Status", "Applied At"}
	buf, err := s.writeSheet("Applications", header, []float64{38, 28, 36, 14, 22}, rows)
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("applications_%s.xlsx", s.now().Format("20060102")), nil
}

// ═══════════════════════════════════════════════════════════
// ExportEvaluations 导出评价列表
// ═══════════════════════════════════════════════════════════
//
// 列：ID | Student | Internship | Grade | Feedback | Evaluated At

func (s *exportService) ExportEvaluations(ctx context.Context) (*bytes.Buffer, string, error) {
	evals, err := s.repo.Evaluation.List(ctx, repository.RecordFilter{})
	if err != nil {
		s.logger.Error("查询评价列表失败", zap.Error(err))
		return nil, "", err
	}

	names := s.names.lookup()
	rows := make([][]interface{}, 0, len(evals))
	for i := range evals {
		e := &evals[i]
		student, err := names.StudentName(ctx, e.StudentID)
		if err != nil {
			return nil, "", err
		}
		title, err := names.InternshipTitle(ctx, e.InternshipID)
		if err != nil {
			return nil, "", err
		}
		rows = append(rows, []interface{}{
			e.ID, displayName(student), displayName(title), e.Grade, e.Feedback, formatTime(e.EvaluatedAt),
		})
	}

	header := []string{"ID", "Student", "Internship", "Grade", "Feedback", "Evaluated At"}
	buf, err := s.writeSheet("Evaluations", header, []float64{38, 28, 36, 10, 48, 22}, rows)
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("evaluations_%s.xlsx", s.now().Format("20060102")), nil
}

// writeSheet 生成单 Sheet 的工作簿：第 1 行表头，其后每行一条记录
func (s *exportService) writeSheet(sheet string, header []string, widths []float64, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		s.logger.Error("创建 Sheet 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		s.logger.Error("写入表头失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			s.logger.Error("写入数据行失败", zap.Error(err))
			return nil, ErrExportGenerateFail
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	return buf, nil
}
