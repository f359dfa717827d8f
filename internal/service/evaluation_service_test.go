package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"internship-web/backend/internal/dto"
	"internship-web/backend/internal/model"
)

func TestEvaluationService_CreateAndList(t *testing.T) {
	r := newTestRepos()
	student, kaprodi, program := r.seedRef()
	svc := NewEvaluationService(r.repo, r.names(nil), zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateEvaluationRequest{
		StudentID: student.ID, InternshipID: program.ID, Grade: "A", Feedback: "great",
	}, kaprodi.ID); err != nil {
		t.Fatalf("创建评价失败: %v", err)
	}
	_, _ = svc.Create(ctx, &dto.CreateEvaluationRequest{StudentID: "s-x", InternshipID: "gone", Grade: "B"}, kaprodi.ID)

	if got := r.evals.evals[0].EvaluatedBy; got != kaprodi.ID {
		t.Errorf("evaluated_by 应为调用者，实际 %s", got)
	}

	all, err := svc.List(ctx, kaprodi.ID, model.RoleKaprodi)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("kaprodi 应看到 2 条，实际 %d", len(all))
	}
	if nameOf(all[1].StudentName) != UnknownName || all[1].InternshipTitle != UnknownName {
		t.Errorf("失效引用应为 Unknown: %+v", all[1])
	}

	own, _ := svc.List(ctx, student.ID, model.RoleStudent)
	if len(own) != 1 || own[0].Grade != "A" || own[0].StudentName != nil {
		t.Errorf("学生列表不符: %+v", own)
	}
}
