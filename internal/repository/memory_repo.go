package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"internship-web/backend/internal/model"
	pkgerrors "internship-web/backend/pkg/errors"
)

// NewMemoryRepository 创建进程内存储（本地演示与测试用，重启即丢失）
// 唯一约束与 Mongo 后端一致，在集合锁内检查
func NewMemoryRepository() *Repository {
	return &Repository{
		User: &memUserRepo{c: newMemCollection(
			func(u *model.User) string { return u.ID },
			func(a, b *model.User) bool { return a.Username == b.Username },
		)},
		Internship: &memInternshipRepo{c: newMemCollection(
			func(p *model.InternshipProgram) string { return p.ID }, nil,
		)},
		Application: &memApplicationRepo{c: newMemCollection(
			func(a *model.Application) string { return a.ID },
			func(a, b *model.Application) bool {
				return a.StudentID == b.StudentID && a.InternshipID == b.InternshipID
			},
		)},
		Report: &memReportRepo{c: newMemCollection(
			func(r *model.Report) string { return r.ID }, nil,
		)},
		Evaluation: &memEvaluationRepo{c: newMemCollection(
			func(e *model.Evaluation) string { return e.ID }, nil,
		)},
	}
}

// ── 通用集合操作 ──

// memCollection 按插入顺序保存文档副本
type memCollection[T any] struct {
	mu       sync.RWMutex
	docs     []T
	id       func(*T) string
	conflict func(a, b *T) bool // 可为 nil
}

func newMemCollection[T any](id func(*T) string, conflict func(a, b *T) bool) *memCollection[T] {
	return &memCollection[T]{id: id, conflict: conflict}
}

func (c *memCollection[T]) insert(doc *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.docs {
		existing := &c.docs[i]
		if c.id(existing) == c.id(doc) {
			return pkgerrors.ErrDuplicate
		}
		if c.conflict != nil && c.conflict(existing, doc) {
			return pkgerrors.ErrDuplicate
		}
	}
	c.docs = append(c.docs, *doc)
	return nil
}

func (c *memCollection[T]) findOne(match func(*T) bool) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.docs {
		if match(&c.docs[i]) {
			doc := c.docs[i]
			return &doc, nil
		}
	}
	return nil, pkgerrors.ErrNotFound
}

func (c *memCollection[T]) findMany(match func(*T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for i := range c.docs {
		if match(&c.docs[i]) {
			out = append(out, c.docs[i])
		}
	}
	return out
}

// updateOne 覆盖第一个匹配文档的指定字段；无匹配时不报错
func (c *memCollection[T]) updateOne(match func(*T) bool, fields Fields) error {
	if len(fields) == 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.docs {
		if !match(&c.docs[i]) {
			continue
		}
		patched := c.docs[i]
		if err := patchDocument(&patched, fields); err != nil {
			return err
		}
		for j := range c.docs {
			if j == i || c.conflict == nil {
				continue
			}
			if c.conflict(&c.docs[j], &patched) {
				return pkgerrors.ErrDuplicate
			}
		}
		c.docs[i] = patched
		return nil
	}
	return nil
}

// deleteOne 删除第一个匹配文档；无匹配时不报错
func (c *memCollection[T]) deleteOne(match func(*T) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.docs {
		if match(&c.docs[i]) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return
		}
	}
}

func (c *memCollection[T]) count(match func(*T) bool) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var n int64
	for i := range c.docs {
		if match(&c.docs[i]) {
			n++
		}
	}
	return n
}

// patchDocument 通过 bson 往返把 fields 合并进文档，字段名语义与 Mongo 后端的 $set 一致
func patchDocument[T any](doc *T, fields Fields) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return err
	}
	for k, v := range fields {
		m[k] = v
	}
	raw, err = bson.Marshal(m)
	if err != nil {
		return err
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return err
	}
	*doc = out
	return nil
}

func all[T any](*T) bool { return true }

// ── Users ──

type memUserRepo struct {
	c *memCollection[model.User]
}

func (r *memUserRepo) Create(_ context.Context, user *model.User) error {
	return r.c.insert(user)
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	return r.c.findOne(func(u *model.User) bool { return u.ID == id })
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	return r.c.findOne(func(u *model.User) bool { return u.Username == username })
}

func (r *memUserRepo) ListByRole(_ context.Context, role string) ([]model.User, error) {
	return r.c.findMany(func(u *model.User) bool { return u.Role == role }), nil
}

func (r *memUserRepo) Update(_ context.Context, id, role string, fields Fields) error {
	return r.c.updateOne(memUserMatch(id, role), fields)
}

func (r *memUserRepo) Delete(_ context.Context, id, role string) error {
	r.c.deleteOne(memUserMatch(id, role))
	return nil
}

func (r *memUserRepo) Count(_ context.Context, role string) (int64, error) {
	return r.c.count(func(u *model.User) bool { return role == "" || u.Role == role }), nil
}

func memUserMatch(id, role string) func(*model.User) bool {
	return func(u *model.User) bool {
		return u.ID == id && (role == "" || u.Role == role)
	}
}

// ── Internships ──

type memInternshipRepo struct {
	c *memCollection[model.InternshipProgram]
}

func (r *memInternshipRepo) Create(_ context.Context, program *model.InternshipProgram) error {
	return r.c.insert(program)
}

func (r *memInternshipRepo) GetByID(_ context.Context, id string) (*model.InternshipProgram, error) {
	return r.c.findOne(func(p *model.InternshipProgram) bool { return p.ID == id })
}

func (r *memInternshipRepo) List(_ context.Context) ([]model.InternshipProgram, error) {
	return r.c.findMany(all[model.InternshipProgram]), nil
}

func (r *memInternshipRepo) Update(_ context.Context, id string, fields Fields) error {
	return r.c.updateOne(func(p *model.InternshipProgram) bool { return p.ID == id }, fields)
}

func (r *memInternshipRepo) Delete(_ context.Context, id string) error {
	r.c.deleteOne(func(p *model.InternshipProgram) bool { return p.ID == id })
	return nil
}

func (r *memInternshipRepo) Count(_ context.Context) (int64, error) {
	return r.c.count(all[model.InternshipProgram]), nil
}

// ── Applications ──

type memApplicationRepo struct {
	c *memCollection[model.Application]
}

func (r *memApplicationRepo) Create(_ context.Context, app *model.Application) error {
	return r.c.insert(app)
}

func (r *memApplicationRepo) GetByID(_ context.Context, id string) (*model.Application, error) {
	return r.c.findOne(func(a *model.Application) bool { return a.ID == id })
}

func (r *memApplicationRepo) FindByPair(_ context.Context, studentID, internshipID string) (*model.Application, error) {
	return r.c.findOne(func(a *model.Application) bool {
		return a.StudentID == studentID && a.InternshipID == internshipID
	})
}

func (r *memApplicationRepo) List(_ context.Context, filter RecordFilter) ([]model.Application, error) {
	return r.c.findMany(func(a *model.Application) bool {
		return matchRecord(filter, a.StudentID, string(a.Status))
	}), nil
}

func (r *memApplicationRepo) UpdateStatus(_ context.Context, id string, status model.ApplicationStatus) error {
	return r.c.updateOne(func(a *model.Application) bool { return a.ID == id }, Fields{"status": string(status)})
}

func (r *memApplicationRepo) Count(_ context.Context, filter RecordFilter) (int64, error) {
	return r.c.count(func(a *model.Application) bool {
		return matchRecord(filter, a.StudentID, string(a.Status))
	}), nil
}

// ── Reports ──

type memReportRepo struct {
	c *memCollection[model.Report]
}

func (r *memReportRepo) Create(_ context.Context, report *model.Report) error {
	return r.c.insert(report)
}

func (r *memReportRepo) GetByID(_ context.Context, id string) (*model.Report, error) {
	return r.c.findOne(func(rp *model.Report) bool { return rp.ID == id })
}

func (r *memReportRepo) List(_ context.Context, filter RecordFilter) ([]model.Report, error) {
	return r.c.findMany(func(rp *model.Report) bool {
		return matchRecord(filter, rp.StudentID, string(rp.Status))
	}), nil
}

func (r *memReportRepo) UpdateStatus(_ context.Context, id string, status model.ReportStatus) error {
	return r.c.updateOne(func(rp *model.Report) bool { return rp.ID == id }, Fields{"status": string(status)})
}

func (r *memReportRepo) Count(_ context.Context, filter RecordFilter) (int64, error) {
	return r.c.count(func(rp *model.Report) bool {
		return matchRecord(filter, rp.StudentID, string(rp.Status))
	}), nil
}

// ── Evaluations ──

type memEvaluationRepo struct {
	c *memCollection[model.Evaluation]
}

func (r *memEvaluationRepo) Create(_ context.Context, eval *model.Evaluation) error {
	return r.c.insert(eval)
}

func (r *memEvaluationRepo) List(_ context.Context, filter RecordFilter) ([]model.Evaluation, error) {
	return r.c.findMany(func(e *model.Evaluation) bool {
		return matchRecord(RecordFilter{StudentID: filter.StudentID}, e.StudentID, "")
	}), nil
}

func (r *memEvaluationRepo) Count(_ context.Context, filter RecordFilter) (int64, error) {
	return r.c.count(func(e *model.Evaluation) bool {
		return matchRecord(RecordFilter{StudentID: filter.StudentID}, e.StudentID, "")
	}), nil
}

func matchRecord(f RecordFilter, studentID, status string) bool {
	if f.StudentID != "" && f.StudentID != studentID {
		return false
	}
	if f.Status != "" && f.Status != status {
		return false
	}
	return true
}
