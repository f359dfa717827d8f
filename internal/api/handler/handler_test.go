package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"internship-web/backend/internal/dto"
	"internship-web/backend/internal/model"
	"internship-web/backend/internal/service"
	"internship-web/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult    *dto.LoginResponse
	loginErr       error
	registerID     string
	registerErr    error
	registerGot    *dto.RegisterRequest
	meResult       *dto.UserResponse
	meErr          error
	meGotUserID    string
	authenticateFn func(token string) (*model.User, error)
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Register(_ context.Context, req *dto.RegisterRequest) (string, error) {
	m.registerGot = req
	return m.registerID, m.registerErr
}
func (m *mockAuthService) Me(_ context.Context, userID string) (*dto.UserResponse, error) {
	m.meGotUserID = userID
	return m.meResult, m.meErr
}
func (m *mockAuthService) Authenticate(_ context.Context, token string) (*model.User, error) {
	return m.authenticateFn(token)
}

// ── Mock StudentService ──

type mockStudentService struct {
	listResult []dto.StudentResponse
	listErr    error
	createID   string
	createErr  error
	updateErr  error
	updateGot  *dto.UpdateStudentRequest
	deleteErr  error
	deletedID  string
}

func (m *mockStudentService) List(_ context.Context) ([]dto.StudentResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockStudentService) Create(_ context.Context, _ *dto.CreateStudentRequest) (string, error) {
	return m.createID, m.createErr
}
func (m *mockStudentService) Update(_ context.Context, _ string, req *dto.UpdateStudentRequest) error {
	m.updateGot = req
	return m.updateErr
}
func (m *mockStudentService) Delete(_ context.Context, id string) error {
	m.deletedID = id
	return m.deleteErr
}

// ── Mock InternshipService ──

type mockInternshipService struct {
	listResult []dto.InternshipResponse
	createID   string
	createErr  error
	callerID   string
}

func (m *mockInternshipService) List(_ context.Context) ([]dto.InternshipResponse, error) {
	return m.listResult, nil
}
func (m *mockInternshipService) Create(_ context.Context, _ *dto.CreateInternshipRequest, callerID string) (string, error) {
	m.callerID = callerID
	return m.createID, m.createErr
}
func (m *mockInternshipService) Update(_ context.Context, _ string, _ *dto.UpdateInternshipRequest) error {
	return nil
}
func (m *mockInternshipService) Delete(_ context.Context, _ string) error { return nil }

// ── Mock ApplicationService ──

type mockApplicationService struct {
	applyID     string
	applyErr    error
	listResult  []dto.ApplicationResponse
	listGotRole string
	updateErr   error
	updateGotID string
	updateGot   string
}

func (m *mockApplicationService) Apply(_ context.Context, _ *dto.CreateApplicationRequest, _ string) (string, error) {
	return m.applyID, m.applyErr
}
func (m *mockApplicationService) List(_ context.Context, _, role string) ([]dto.ApplicationResponse, error) {
	m.listGotRole = role
	return m.listResult, nil
}
func (m *mockApplicationService) UpdateStatus(_ context.Context, id string, status string) error {
	m.updateGotID = id
	m.updateGot = status
	return m.updateErr
}

// ── Mock ReportService ──

type mockReportService struct {
	createID   string
	studentID  string
	updateErr  error
	updateGot  string
	listResult []dto.ReportResponse
}

func (m *mockReportService) Create(_ context.Context, _ *dto.CreateReportRequest, studentID string) (string, error) {
	m.studentID = studentID
	return m.createID, nil
}
func (m *mockReportService) List(_ context.Context, _, _ string) ([]dto.ReportResponse, error) {
	return m.listResult, nil
}
func (m *mockReportService) UpdateStatus(_ context.Context, _ string, status string) error {
	m.updateGot = status
	return m.updateErr
}

// ── Mock EvaluationService ──

type mockEvaluationService struct {
	createID string
	callerID string
	listErr  error
}

func (m *mockEvaluationService) Create(_ context.Context, _ *dto.CreateEvaluationRequest, callerID string) (string, error) {
	m.callerID = callerID
	return m.createID, nil
}
func (m *mockEvaluationService) List(_ context.Context, _, _ string) ([]dto.EvaluationResponse, error) {
	return nil, m.listErr
}

// ── Mock DashboardService ──

type mockDashboardService struct {
	result interface{}
	err    error
}

func (m *mockDashboardService) Stats(_ context.Context, _, _ string) (interface{}, error) {
	return m.result, m.err
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportApplications(_ context.Context) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportEvaluations(_ context.Context) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func withAuth(role string, next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "test-user-id")
		c.Set("role", role)
		next(c)
	}
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func serve(method, path, route string, h gin.HandlerFunc, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	r := gin.New()
	r.Handle(method, route, h)
	r.ServeHTTP(w, req)
	return w
}

func parseError(w *httptest.ResponseRecorder) response.ErrorResponse {
	var resp response.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func parseMessage(w *httptest.ResponseRecorder) response.MessageResponse {
	var resp response.MessageResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// HealthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler()
	w := serve("GET", "/api/health", "/api/health", h.Health, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "healthy" {
		t.Errorf("expected status healthy, got %q", body["status"])
	}
	if body["timestamp"] == "" {
		t.Error("expected timestamp")
	}
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.LoginResponse{
			Token: "test-token",
			User:  dto.UserResponse{ID: "u1", Username: "kaprodi", Role: model.RoleKaprodi},
		},
	}
	h := NewAuthHandler(mock)

	w := serve("POST", "/api/login", "/api/login", h.Login, jsonBody(dto.LoginRequest{
		Username: "kaprodi",
		Password: "kaprodi123",
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp dto.LoginResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Token != "test-token" || resp.User.Role != model.RoleKaprodi {
		t.Errorf("unexpected login response: %+v", resp)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Error("login response must not contain password")
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := serve("POST", "/api/login", "/api/login", h.Login, bytes.NewReader([]byte("invalid json")))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseError(w); resp.Code != response.CodeBadParams {
		t.Errorf("expected code %d, got %d", response.CodeBadParams, resp.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := serve("POST", "/api/login", "/api/login", h.Login, jsonBody(dto.LoginRequest{
		Username: "kaprodi",
		Password: "wrong",
	}))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseError(w)
	if resp.Code != response.CodeInvalidCredentials {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
	if resp.Detail != "Invalid credentials" {
		t.Errorf("unexpected detail %q", resp.Detail)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	mock := &mockAuthService{registerID: "new-id"}
	h := NewAuthHandler(mock)

	w := serve("POST", "/api/register", "/api/register", h.Register, jsonBody(map[string]string{
		"username":  "s2",
		"password":  "pw1",
		"email":     "s2@x.com",
		"full_name": "Siti",
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseMessage(w)
	if resp.ID != "new-id" || resp.Message != "User created successfully" {
		t.Errorf("unexpected response %+v", resp)
	}
	if mock.registerGot == nil || mock.registerGot.Username != "s2" {
		t.Errorf("request not passed through: %+v", mock.registerGot)
	}
}

func TestAuthHandler_Register_UnknownRole(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := serve("POST", "/api/register", "/api/register", h.Register, jsonBody(map[string]string{
		"username":  "s2",
		"password":  "pw1",
		"email":     "s2@x.com",
		"full_name": "Siti",
		"role":      "admin",
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{registerErr: service.ErrDuplicateUsername})

	w := serve("POST", "/api/register", "/api/register", h.Register, jsonBody(map[string]string{
		"username":  "kaprodi",
		"password":  "x",
		"email":     "k@x.com",
		"full_name": "K",
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseError(w)
	if resp.Code != response.CodeDuplicateUsername || resp.Detail != "Username already exists" {
		t.Errorf("unexpected error %+v", resp)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	mock := &mockAuthService{meResult: &dto.UserResponse{ID: "test-user-id", Role: model.RoleStudent}}
	h := NewAuthHandler(mock)

	w := serve("GET", "/api/me", "/api/me", withAuth(model.RoleStudent, h.Me), nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.meGotUserID != "test-user-id" {
		t.Errorf("expected user id from context, got %q", mock.meGotUserID)
	}
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := serve("GET", "/api/me", "/api/me", h.Me, nil)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// DashboardHandler Tests
// ═══════════════════════════════════════════════════════════

func TestDashboardHandler_Stats(t *testing.T) {
	mock := &mockDashboardService{result: &dto.StudentStatsResponse{Applications: 2, Reports: 1}}
	h := NewDashboardHandler(mock)

	w := serve("GET", "/api/dashboard/stats", "/api/dashboard/stats", withAuth(model.RoleStudent, h.Stats), nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp dto.StudentStatsResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Applications != 2 || resp.Reports != 1 {
		t.Errorf("unexpected stats %+v", resp)
	}
}

func TestDashboardHandler_Stats_StoreError(t *testing.T) {
	h := NewDashboardHandler(&mockDashboardService{err: errors.New("store down")})

	w := serve("GET", "/api/dashboard/stats", "/api/dashboard/stats", withAuth(model.RoleKaprodi, h.Stats), nil)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// StudentHandler Tests
// ═══════════════════════════════════════════════════════════

func TestStudentHandler_List(t *testing.T) {
	mock := &mockStudentService{listResult: []dto.StudentResponse{{ID: "s1", Username: "student1"}}}
	h := NewStudentHandler(mock)

	w := serve("GET", "/api/students", "/api/students", h.List, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []dto.StudentResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp) != 1 || resp[0].ID != "s1" {
		t.Errorf("unexpected list %+v", resp)
	}
}

func TestStudentHandler_Create_MissingField(t *testing.T) {
	h := NewStudentHandler(&mockStudentService{})

	w := serve("POST", "/api/students", "/api/students", h.Create, jsonBody(map[string]string{
		"username": "s3",
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestStudentHandler_Create_Duplicate(t *testing.T) {
	h := NewStudentHandler(&mockStudentService{createErr: service.ErrDuplicateUsername})

	w := serve("POST", "/api/students", "/api/students", h.Create, jsonBody(dto.CreateStudentRequest{
		Username: "student1",
		Password: "x",
		Email:    "s@x.com",
		FullName: "S",
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseError(w); resp.Code != response.CodeDuplicateUsername {
		t.Errorf("expected code 11002, got %d", resp.Code)
	}
}

func TestStudentHandler_Update_PartialBody(t *testing.T) {
	mock := &mockStudentService{}
	h := NewStudentHandler(mock)

	w := serve("PUT", "/api/students/s1", "/api/students/:id", h.Update, jsonBody(map[string]string{
		"full_name": "Ahmad Baru",
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.updateGot == nil || mock.updateGot.FullName == nil || *mock.updateGot.FullName != "Ahmad Baru" {
		t.Fatalf("full_name not bound: %+v", mock.updateGot)
	}
	if mock.updateGot.Username != nil || mock.updateGot.Password != nil {
		t.Error("absent fields must stay nil")
	}
	if resp := parseMessage(w); resp.Message != "Student updated successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestStudentHandler_Delete(t *testing.T) {
	mock := &mockStudentService{}
	h := NewStudentHandler(mock)

	w := serve("DELETE", "/api/students/s9", "/api/students/:id", h.Delete, nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.deletedID != "s9" {
		t.Errorf("expected id s9, got %q", mock.deletedID)
	}
}

// ═══════════════════════════════════════════════════════════
// InternshipHandler Tests
// ═══════════════════════════════════════════════════════════

func TestInternshipHandler_Create_UsesCaller(t *testing.T) {
	mock := &mockInternshipService{createID: "int-9"}
	h := NewInternshipHandler(mock)

	w := serve("POST", "/api/internships", "/api/internships", withAuth(model.RoleKaprodi, h.Create), jsonBody(map[string]interface{}{
		"title":        "Backend Intern",
		"company_name": "Acme",
		"created_by":   "someone-else",
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if mock.callerID != "test-user-id" {
		t.Errorf("expected caller id test-user-id, got %q", mock.callerID)
	}
	if resp := parseMessage(w); resp.ID != "int-9" {
		t.Errorf("expected id int-9, got %q", resp.ID)
	}
}

// ═══════════════════════════════════════════════════════════
// ApplicationHandler Tests
// ═══════════════════════════════════════════════════════════

func TestApplicationHandler_Create_AlreadyApplied(t *testing.T) {
	h := NewApplicationHandler(&mockApplicationService{applyErr: service.ErrAlreadyApplied})

	w := serve("POST", "/api/applications", "/api/applications", withAuth(model.RoleStudent, h.Create), jsonBody(dto.CreateApplicationRequest{
		InternshipID: "int-1",
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseError(w)
	if resp.Code != response.CodeAlreadyApplied || resp.Detail != "Already applied to this internship" {
		t.Errorf("unexpected error %+v", resp)
	}
}

func TestApplicationHandler_List_PassesRole(t *testing.T) {
	mock := &mockApplicationService{listResult: []dto.ApplicationResponse{}}
	h := NewApplicationHandler(mock)

	w := serve("GET", "/api/applications", "/api/applications", withAuth(model.RoleStudent, h.List), nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.listGotRole != model.RoleStudent {
		t.Errorf("expected role student, got %q", mock.listGotRole)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("expected empty array, got %s", w.Body.String())
	}
}

func TestApplicationHandler_UpdateStatus_Form(t *testing.T) {
	mock := &mockApplicationService{}
	h := NewApplicationHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/applications/app-1/status", strings.NewReader("status=approved"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	r := gin.New()
	r.PUT("/api/applications/:id/status", h.UpdateStatus)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if mock.updateGotID != "app-1" || mock.updateGot != "approved" {
		t.Errorf("unexpected call id=%q status=%q", mock.updateGotID, mock.updateGot)
	}
}

func TestApplicationHandler_UpdateStatus_UnknownStatus(t *testing.T) {
	mock := &mockApplicationService{}
	h := NewApplicationHandler(mock)

	w := serve("PUT", "/api/applications/app-1/status", "/api/applications/:id/status", h.UpdateStatus, jsonBody(map[string]string{
		"status": "banana",
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseError(w); resp.Code != response.CodeInvalidStatus {
		t.Errorf("expected code 13002, got %d", resp.Code)
	}
	if mock.updateGot != "" {
		t.Error("service must not be called for an unknown status")
	}
}

func TestApplicationHandler_UpdateStatus_Transition(t *testing.T) {
	h := NewApplicationHandler(&mockApplicationService{updateErr: service.ErrInvalidTransition})

	w := serve("PUT", "/api/applications/app-1/status", "/api/applications/:id/status", h.UpdateStatus, jsonBody(map[string]string{
		"status": "pending",
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseError(w); resp.Code != response.CodeInvalidTransition {
		t.Errorf("expected code 13003, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ReportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestReportHandler_Create(t *testing.T) {
	mock := &mockReportService{createID: "rep-1"}
	h := NewReportHandler(mock)

	w := serve("POST", "/api/reports", "/api/reports", withAuth(model.RoleStudent, h.Create), jsonBody(dto.CreateReportRequest{
		InternshipID: "int-1",
		Title:        "Week 1",
		Content:      "setup",
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if mock.studentID != "test-user-id" {
		t.Errorf("expected student id from context, got %q", mock.studentID)
	}
	resp := parseMessage(w)
	if resp.ID != "rep-1" || resp.Message != "Report submitted successfully" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestReportHandler_UpdateStatus(t *testing.T) {
	mock := &mockReportService{}
	h := NewReportHandler(mock)

	w := serve("PUT", "/api/reports/rep-1/status", "/api/reports/:id/status", h.UpdateStatus, jsonBody(map[string]string{
		"status": string(model.ReportReviewed),
	}))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.updateGot != string(model.ReportReviewed) {
		t.Errorf("unexpected status %q", mock.updateGot)
	}
}

// ═══════════════════════════════════════════════════════════
// EvaluationHandler Tests
// ═══════════════════════════════════════════════════════════

func TestEvaluationHandler_Create(t *testing.T) {
	mock := &mockEvaluationService{createID: "ev-1"}
	h := NewEvaluationHandler(mock)

	w := serve("POST", "/api/evaluations", "/api/evaluations", withAuth(model.RoleKaprodi, h.Create), jsonBody(dto.CreateEvaluationRequest{
		StudentID:    "stu-1",
		InternshipID: "int-1",
		Grade:        "A",
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.callerID != "test-user-id" {
		t.Errorf("expected evaluated_by from context, got %q", mock.callerID)
	}
}

func TestEvaluationHandler_List_Error(t *testing.T) {
	h := NewEvaluationHandler(&mockEvaluationService{listErr: errors.New("store down")})

	w := serve("GET", "/api/evaluations", "/api/evaluations", withAuth(model.RoleKaprodi, h.List), nil)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	resp := parseError(w)
	if resp.Code != response.CodeInternal {
		t.Errorf("expected code 50000, got %d", resp.Code)
	}
	if resp.Detail != "Internal server error" {
		t.Errorf("unexpected detail %q", resp.Detail)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Applications(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("xlsx-bytes"),
		filename: "applications_20240101.xlsx",
	}
	h := NewExportHandler(mock)

	w := serve("GET", "/api/export/applications", "/api/export/applications", h.ExportApplications, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("unexpected content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "applications_20240101.xlsx") {
		t.Errorf("unexpected disposition %q", cd)
	}
	if w.Body.String() != "xlsx-bytes" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestExportHandler_Error(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportGenerateFail})

	w := serve("GET", "/api/export/evaluations", "/api/export/evaluations", h.ExportEvaluations, nil)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// bindFailed
// ═══════════════════════════════════════════════════════════

func TestBindFailed_BodyTooLarge(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"username":"`+strings.Repeat("a", 64)+`"}`))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/api/login", func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 16)
		h.Login(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
	if resp := parseError(w); resp.Code != response.CodeBodyTooLarge {
		t.Errorf("expected code 10005, got %d", resp.Code)
	}
}

// [自证通过] internal/api/handler/handler_test.go
