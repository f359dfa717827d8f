package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"internship-web/backend/internal/model"
	"internship-web/backend/internal/repository"
	pkgerrors "internship-web/backend/pkg/errors"
)

var errStoreDown = errors.New("store unavailable")

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: id
	order []string
	err   error // 非 nil 时所有读操作返回该错误
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return pkgerrors.ErrDuplicate
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	m.order = append(m.order, user.ID)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, pkgerrors.ErrNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, pkgerrors.ErrNotFound
}

func (m *mockUserRepo) ListByRole(_ context.Context, role string) ([]model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]model.User, 0)
	for _, id := range m.order {
		if u, ok := m.users[id]; ok && u.Role == role {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, id, role string, fields repository.Fields) error {
	u, ok := m.users[id]
	if !ok || (role != "" && u.Role != role) {
		return nil
	}
	for k, v := range fields {
		s := v.(string)
		switch k {
		case "username":
			u.Username = s
		case "email":
			u.Email = s
		case "password":
			u.Password = s
		case "full_name":
			u.FullName = s
		case "student_id":
			u.StudentID = &s
		}
	}
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id, role string) error {
	if u, ok := m.users[id]; ok && (role == "" || u.Role == role) {
		delete(m.users, id)
	}
	return nil
}

func (m *mockUserRepo) Count(_ context.Context, role string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, u := range m.users {
		if role == "" || u.Role == role {
			n++
		}
	}
	return n, nil
}

// ── Mock InternshipRepository ──

type mockInternshipRepo struct {
	programs map[string]*model.InternshipProgram
	order    []string
	gets     int // GetByID 调用次数
}

func newMockInternshipRepo() *mockInternshipRepo {
	return &mockInternshipRepo{programs: make(map[string]*model.InternshipProgram)}
}

func (m *mockInternshipRepo) Create(_ context.Context, p *model.InternshipProgram) error {
	cp := *p
	m.programs[p.ID] = &cp
	m.order = append(m.order, p.ID)
	return nil
}

func (m *mockInternshipRepo) GetByID(_ context.Context, id string) (*model.InternshipProgram, error) {
	m.gets++
	if p, ok := m.programs[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, pkgerrors.ErrNotFound
}

func (m *mockInternshipRepo) List(_ context.Context) ([]model.InternshipProgram, error) {
	result := make([]model.InternshipProgram, 0)
	for _, id := range m.order {
		if p, ok := m.programs[id]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockInternshipRepo) Update(_ context.Context, id string, fields repository.Fields) error {
	p, ok := m.programs[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "title":
			p.Title = v.(string)
		case "company_name":
			p.CompanyName = v.(string)
		case "description":
			p.Description = v.(string)
		case "duration":
			p.Duration = v.(string)
		case "requirements":
			p.Requirements = v.(string)
		case "max_students":
			p.MaxStudents = v.(int)
		case "status":
			p.Status = v.(string)
		}
	}
	return nil
}

func (m *mockInternshipRepo) Delete(_ context.Context, id string) error {
	delete(m.programs, id)
	return nil
}

func (m *mockInternshipRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.programs)), nil
}

// ── Mock ApplicationRepository ──

type mockApplicationRepo struct {
	apps  map[string]*model.Application
	order []string
	// skipPairCheck 模拟并发下查重通过但唯一索引拦截
	skipPairCheck bool
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{apps: make(map[string]*model.Application)}
}

func (m *mockApplicationRepo) Create(_ context.Context, a *model.Application) error {
	for _, existing := range m.apps {
		if existing.StudentID == a.StudentID && existing.InternshipID == a.InternshipID {
			return pkgerrors.ErrDuplicate
		}
	}
	cp := *a
	m.apps[a.ID] = &cp
	m.order = append(m.order, a.ID)
	return nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id string) (*model.Application, error) {
	if a, ok := m.apps[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, pkgerrors.ErrNotFound
}

func (m *mockApplicationRepo) FindByPair(_ context.Context, studentID, internshipID string) (*model.Application, error) {
	if m.skipPairCheck {
		return nil, pkgerrors.ErrNotFound
	}
	for _, a := range m.apps {
		if a.StudentID == studentID && a.InternshipID == internshipID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, pkgerrors.ErrNotFound
}

func (m *mockApplicationRepo) List(_ context.Context, f repository.RecordFilter) ([]model.Application, error) {
	result := make([]model.Application, 0)
	for _, id := range m.order {
		a := m.apps[id]
		if matchFilter(f, a.StudentID, string(a.Status)) {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockApplicationRepo) UpdateStatus(_ context.Context, id string, status model.ApplicationStatus) error {
	if a, ok := m.apps[id]; ok {
		a.Status = status
	}
	return nil
}

func (m *mockApplicationRepo) Count(ctx context.Context, f repository.RecordFilter) (int64, error) {
	list, _ := m.List(ctx, f)
	return int64(len(list)), nil
}

// ── Mock ReportRepository ──

type mockReportRepo struct {
	reports map[string]*model.Report
	order   []string
}

func newMockReportRepo() *mockReportRepo {
	return &mockReportRepo{reports: make(map[string]*model.Report)}
}

func (m *mockReportRepo) Create(_ context.Context, r *model.Report) error {
	cp := *r
	m.reports[r.ID] = &cp
	m.order = append(m.order, r.ID)
	return nil
}

func (m *mockReportRepo) GetByID(_ context.Context, id string) (*model.Report, error) {
	if r, ok := m.reports[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, pkgerrors.ErrNotFound
}

func (m *mockReportRepo) List(_ context.Context, f repository.RecordFilter) ([]model.Report, error) {
	result := make([]model.Report, 0)
	for _, id := range m.order {
		r := m.reports[id]
		if matchFilter(f, r.StudentID, string(r.Status)) {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockReportRepo) UpdateStatus(_ context.Context, id string, status model.ReportStatus) error {
	if r, ok := m.reports[id]; ok {
		r.Status = status
	}
	return nil
}

func (m *mockReportRepo) Count(ctx context.Context, f repository.RecordFilter) (int64, error) {
	list, _ := m.List(ctx, f)
	return int64(len(list)), nil
}

// ── Mock EvaluationRepository ──

type mockEvaluationRepo struct {
	evals []model.Evaluation
}

func (m *mockEvaluationRepo) Create(_ context.Context, e *model.Evaluation) error {
	m.evals = append(m.evals, *e)
	return nil
}

func (m *mockEvaluationRepo) List(_ context.Context, f repository.RecordFilter) ([]model.Evaluation, error) {
	result := make([]model.Evaluation, 0)
	for _, e := range m.evals {
		if matchFilter(repository.RecordFilter{StudentID: f.StudentID}, e.StudentID, "") {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockEvaluationRepo) Count(ctx context.Context, f repository.RecordFilter) (int64, error) {
	list, _ := m.List(ctx, f)
	return int64(len(list)), nil
}

func matchFilter(f repository.RecordFilter, studentID, status string) bool {
	if f.StudentID != "" && f.StudentID != studentID {
		return false
	}
	if f.Status != "" && f.Status != status {
		return false
	}
	return true
}

// ── Mock NameCache ──

type mockNameCache struct {
	mu      sync.Mutex
	entries map[string]string
	deletes []string
}

func newMockNameCache() *mockNameCache {
	return &mockNameCache{entries: make(map[string]string)}
}

func (c *mockNameCache) GetName(_ context.Context, kind, id string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[kind+":"+id]
	return v, ok, nil
}

func (c *mockNameCache) SetName(_ context.Context, kind, id, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[kind+":"+id] = name
	return nil
}

func (c *mockNameCache) DeleteName(_ context.Context, kind, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, kind+":"+id)
	c.deletes = append(c.deletes, kind+":"+id)
	return nil
}

// ── 测试夹具 ──

type testRepos struct {
	users       *mockUserRepo
	internships *mockInternshipRepo
	apps        *mockApplicationRepo
	reports     *mockReportRepo
	evals       *mockEvaluationRepo
	repo        *repository.Repository
}

func newTestRepos() *testRepos {
	r := &testRepos{
		users:       newMockUserRepo(),
		internships: newMockInternshipRepo(),
		apps:        newMockApplicationRepo(),
		reports:     newMockReportRepo(),
		evals:       &mockEvaluationRepo{},
	}
	r.repo = &repository.Repository{
		User:        r.users,
		Internship:  r.internships,
		Application: r.apps,
		Report:      r.reports,
		Evaluation:  r.evals,
	}
	return r
}

func (r *testRepos) names(cache NameCache) *nameResolver {
	return newNameResolver(r.repo, cache, zap.NewNop())
}

// seedRef 写入一名学生、一名 kaprodi 和一个实习项目
func (r *testRepos) seedRef() (student, kaprodi *model.User, program *model.InternshipProgram) {
	student = &model.User{ID: "stu-1", Username: "student1", Role: model.RoleStudent, FullName: "Ahmad"}
	kaprodi = &model.User{ID: "kap-1", Username: "kaprodi", Role: model.RoleKaprodi, FullName: "Dr. K"}
	program = &model.InternshipProgram{ID: "int-1", Title: "SWE Intern", CompanyName: "PT. X", CreatedBy: kaprodi.ID}
	_ = r.users.Create(context.Background(), student)
	_ = r.users.Create(context.Background(), kaprodi)
	_ = r.internships.Create(context.Background(), program)
	return student, kaprodi, program
}

// nameOf 便于比较可选的名称字段，nil 返回 "<nil>"
func nameOf(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}
