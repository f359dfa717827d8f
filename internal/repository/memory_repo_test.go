package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-web/backend/internal/model"
	pkgerrors "internship-web/backend/pkg/errors"
)

func strPtr(s string) *string { return &s }

func TestMemoryUserRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	u := &model.User{
		ID: "u1", Username: "alice", Email: "a@x", Password: "digest",
		Role: model.RoleStudent, FullName: "Alice", StudentID: strPtr("1301"),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.User.Create(ctx, u))

	got, err := repo.User.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	// 返回副本，修改不影响存储
	got.FullName = "mutated"
	again, err := repo.User.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.FullName)

	require.NoError(t, repo.User.Update(ctx, "u1", model.RoleStudent, Fields{"full_name": "Alice B"}))
	again, err = repo.User.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice B", again.FullName)
	assert.Equal(t, "a@x", again.Email, "未出现的字段应保持不变")
	require.NotNil(t, again.StudentID)
	assert.Equal(t, "1301", *again.StudentID)

	n, err := repo.User.Count(ctx, model.RoleStudent)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, repo.User.Delete(ctx, "u1", model.RoleStudent))
	_, err = repo.User.GetByID(ctx, "u1")
	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
}

func TestMemoryUserRepo_RoleScopedWrites(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.User.Create(ctx, &model.User{ID: "k1", Username: "boss", Role: model.RoleKaprodi, FullName: "Boss"}))

	// 只匹配 student 的写操作不应触及 kaprodi
	require.NoError(t, repo.User.Update(ctx, "k1", model.RoleStudent, Fields{"full_name": "hacked"}))
	require.NoError(t, repo.User.Delete(ctx, "k1", model.RoleStudent))

	got, err := repo.User.GetByID(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "Boss", got.FullName)
}

func TestMemoryUserRepo_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.User.Create(ctx, &model.User{ID: "u1", Username: "same"}))

	err := repo.User.Create(ctx, &model.User{ID: "u2", Username: "same"})
	assert.ErrorIs(t, err, pkgerrors.ErrDuplicate)

	// 改名撞上已有用户名同样被拒绝
	require.NoError(t, repo.User.Create(ctx, &model.User{ID: "u3", Username: "other"}))
	err = repo.User.Update(ctx, "u3", "", Fields{"username": "same"})
	assert.ErrorIs(t, err, pkgerrors.ErrDuplicate)
}

func TestMemoryRepo_ZeroMatchWritesSucceed(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	assert.NoError(t, repo.User.Update(ctx, "missing", "", Fields{"email": "x"}))
	assert.NoError(t, repo.User.Delete(ctx, "missing", ""))
	assert.NoError(t, repo.Internship.Update(ctx, "missing", Fields{"title": "x"}))
	assert.NoError(t, repo.Internship.Delete(ctx, "missing"))
	assert.NoError(t, repo.Application.UpdateStatus(ctx, "missing", model.ApplicationApproved))
	assert.NoError(t, repo.Report.UpdateStatus(ctx, "missing", model.ReportReviewed))
}

func TestMemoryApplicationRepo_PairUniqueAndFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	mk := func(id, student, internship string) *model.Application {
		return &model.Application{
			ID: id, StudentID: student, InternshipID: internship,
			Status: model.ApplicationPending, AppliedAt: time.Now().UTC(),
			Documents: model.StringArray{},
		}
	}
	require.NoError(t, repo.Application.Create(ctx, mk("a1", "s1", "i1")))
	require.NoError(t, repo.Application.Create(ctx, mk("a2", "s1", "i2")))
	require.NoError(t, repo.Application.Create(ctx, mk("a3", "s2", "i1")))

	err := repo.Application.Create(ctx, mk("a4", "s1", "i1"))
	assert.ErrorIs(t, err, pkgerrors.ErrDuplicate)

	found, err := repo.Application.FindByPair(ctx, "s2", "i1")
	require.NoError(t, err)
	assert.Equal(t, "a3", found.ID)

	own, err := repo.Application.List(ctx, RecordFilter{StudentID: "s1"})
	require.NoError(t, err)
	assert.Len(t, own, 2)

	require.NoError(t, repo.Application.UpdateStatus(ctx, "a1", model.ApplicationApproved))
	pending, err := repo.Application.Count(ctx, RecordFilter{Status: string(model.ApplicationPending)})
	require.NoError(t, err)
	assert.EqualValues(t, 2, pending)

	all, err := repo.Application.List(ctx, RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, []string{"a1", "a2", "a3"}, []string{all[0].ID, all[1].ID, all[2].ID}, "应保持插入顺序")
}

func TestMemoryReportAndEvaluationRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Report.Create(ctx, &model.Report{ID: "r1", StudentID: "s1", InternshipID: "i1", Title: "W1", Status: model.ReportSubmitted}))
	require.NoError(t, repo.Report.UpdateStatus(ctx, "r1", model.ReportReviewed))
	r, err := repo.Report.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, model.ReportReviewed, r.Status)
	assert.Nil(t, r.FilePath)

	require.NoError(t, repo.Evaluation.Create(ctx, &model.Evaluation{ID: "e1", StudentID: "s1", InternshipID: "i1", Grade: "A"}))
	require.NoError(t, repo.Evaluation.Create(ctx, &model.Evaluation{ID: "e2", StudentID: "s2", InternshipID: "i1", Grade: "B"}))

	n, err := repo.Evaluation.Count(ctx, RecordFilter{StudentID: "s2"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	list, err := repo.Evaluation.List(ctx, RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
