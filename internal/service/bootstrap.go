package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"internship-web/backend/internal/model"
	"internship-web/backend/internal/repository"
	"internship-web/backend/pkg/password"
)

// 演示账号（首次启动时写入）
const (
	SeedKaprodiUsername = "kaprodi"
	SeedKaprodiPassword = "kaprodi123"
	SeedStudentUsername = "student1"
	SeedStudentPassword = "student123"
)

// SeedDemoData 用户表为空时写入演示账号与两个实习项目
//
// 只检查用户表：若上次写入在中途失败，用户表已非空，实习项目不会被补写
// 返回值 seeded 表示本次是否执行了写入
func SeedDemoData(ctx context.Context, repo *repository.Repository, logger *zap.Logger) (seeded bool, err error) {
	n, err := repo.User.Count(ctx, "")
	if err != nil {
		return false, fmt.Errorf("统计用户失败: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	now := time.Now().UTC()

	// ── 用户 ──
	kaprodiDigest, err := password.Hash(SeedKaprodiPassword)
	if err != nil {
		return false, err
	}
	kaprodi := &model.User{
		ID:        uuid.NewString(),
		Username:  SeedKaprodiUsername,
		Email:     "kaprodi@telkomuniversity.ac.id",
		Password:  kaprodiDigest,
		Role:      model.RoleKaprodi,
		FullName:  "Dr. Kaprodi Sistem Informasi",
		CreatedAt: now,
	}
	if err := repo.User.Create(ctx, kaprodi); err != nil {
		return false, fmt.Errorf("写入演示 Kaprodi 失败: %w", err)
	}

	studentDigest, err := password.Hash(SeedStudentPassword)
	if err != nil {
		return false, err
	}
	nim := "1301194001"
	student := &model.User{
		ID:        uuid.NewString(),
		Username:  SeedStudentUsername,
		Email:     "student1@student.telkomuniversity.ac.id",
		Password:  studentDigest,
		Role:      model.RoleStudent,
		FullName:  "Ahmad Mahasiswa",
		StudentID: &nim,
		CreatedAt: now,
	}
	if err := repo.User.Create(ctx, student); err != nil {
		return false, fmt.Errorf("写入演示学生失败: %w", err)
	}

	// ── 实习项目 ──
	programs := []*model.InternshipProgram{
		{
			Title:        "Software Development Internship",
			CompanyName:  "PT. Telkom Indonesia",
			Description:  "Develop and maintain software applications",
			Duration:     "6 months",
			Requirements: "Programming skills in Python/Java",
			MaxStudents:  5,
		},
		{
			Title:        "Data Analyst Internship",
			CompanyName:  "PT. Gojek",
			Description:  "Analyze data and create insights",
			Duration:     "4 months",
			Requirements: "SQL, Python, Data visualization skills",
			MaxStudents:  3,
		},
	}
	for _, p := range programs {
		p.ID = uuid.NewString()
		p.Status = model.InternshipStatusActive
		p.CreatedBy = kaprodi.ID
		p.CreatedAt = now
		if err := repo.Internship.Create(ctx, p); err != nil {
			return false, fmt.Errorf("写入演示实习项目失败: %w", err)
		}
	}

	logger.Info("已写入演示数据",
		zap.String("kaprodi", SeedKaprodiUsername),
		zap.String("student", SeedStudentUsername),
		zap.Int("internships", len(programs)),
	)
	return true, nil
}
