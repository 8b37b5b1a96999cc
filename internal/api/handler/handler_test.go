package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"scrap-collection/backend/internal/dto"
	"scrap-collection/backend/internal/service"
	"scrap-collection/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult      *dto.TokenResponse
	loginErr         error
	refreshResult    *dto.TokenResponse
	refreshErr       error
	logoutErr        error
	getCurrentResult *dto.EmployeeResponse
	getCurrentErr    error
	changePassErr    error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) RefreshToken(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}
func (m *mockAuthService) GetCurrentEmployee(_ context.Context, _ string) (*dto.EmployeeResponse, error) {
	return m.getCurrentResult, m.getCurrentErr
}
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return m.changePassErr
}

// ── Mock AssignmentService ──

type mockAssignmentService struct {
	listResult         []dto.AssignmentResponse
	listTotal          int64
	listErr            error
	getResult          *dto.AssignmentResponse
	getErr             error
	createResult       *dto.AssignmentResponse
	createErr          error
	updateResult       *dto.AssignmentResponse
	updateErr          error
	submitResult       *dto.AssignmentResponse
	submitErr          error
	submitReq          *dto.SubmitAssignmentRequest
	updateStatusResult *dto.AssignmentResponse
	updateStatusErr    error
	deleteErr          error
}

func (m *mockAssignmentService) List(_ context.Context, _ *dto.AssignmentListRequest) ([]dto.AssignmentResponse, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}
func (m *mockAssignmentService) GetByID(_ context.Context, _ string) (*dto.AssignmentResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockAssignmentService) Create(_ context.Context, _ *dto.CreateAssignmentRequest, _ string) (*dto.AssignmentResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockAssignmentService) Update(_ context.Context, _ string, _ *dto.UpdateAssignmentRequest, _ string) (*dto.AssignmentResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockAssignmentService) Submit(_ context.Context, req *dto.SubmitAssignmentRequest, _ string) (*dto.AssignmentResponse, error) {
	m.submitReq = req
	return m.submitResult, m.submitErr
}
func (m *mockAssignmentService) UpdateStatus(_ context.Context, _ string, _ bool, _ string) (*dto.AssignmentResponse, error) {
	return m.updateStatusResult, m.updateStatusErr
}
func (m *mockAssignmentService) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportAssignments(_ context.Context, _ string, _ *bool) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

// injectAuth 模拟 JWT 中间件注入的上下文
func injectAuth(c *gin.Context) {
	c.Set("employee_id", "test-employee-id")
	c.Set("role", "ADMIN")
	c.Set("organization_id", "test-org-id")
	c.Set("token_jti", "test-jti")
	c.Set("token_expires_at", time.Now().Add(15*time.Minute))
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "test-access-token",
			RefreshToken: "test-refresh-token",
			ExpiresIn:    900,
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-password",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_Me_Success(t *testing.T) {
	mock := &mockAuthService{
		getCurrentResult: &dto.EmployeeResponse{ID: "test-employee-id", Name: "测试员工"},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/me", nil)

	r := gin.New()
	r.GET("/auth/me", injectAuth, h.Me)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/me", nil)

	r := gin.New()
	r.GET("/auth/me", h.Me)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// AssignmentHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAssignmentHandler_Submit_Success(t *testing.T) {
	mock := &mockAssignmentService{
		submitResult: &dto.AssignmentResponse{ID: "a-001", IsActive: true},
	}
	h := NewAssignmentHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/collector-assignments/submit", jsonBody(dto.SubmitAssignmentRequest{
		OrganizationID: "11111111-1111-1111-1111-111111111111",
		SubjectType:    "collector",
		CollectorID:    "col-001",
		CrewID:         "none",
		VehicleNameID:  "veh-001",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/collector-assignments/submit", injectAuth, h.SubmitAssignment)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	// 原始哨兵值应原样到达 Service 层，由 Service 统一转换
	if mock.submitReq == nil || mock.submitReq.CrewID != "none" {
		t.Error("expected raw sentinel to reach service layer")
	}
}

func TestAssignmentHandler_Submit_InvalidSubjectType(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/collector-assignments/submit", jsonBody(map[string]string{
		"organizationId": "11111111-1111-1111-1111-111111111111",
		"subjectType":    "invalid",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/collector-assignments/submit", injectAuth, h.SubmitAssignment)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAssignmentHandler_Submit_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"缺少回收员", service.ErrCollectorRequired, 16002},
		{"缺少班组", service.ErrCrewRequired, 16003},
		{"缺少资源", service.ErrResourceRequired, 16004},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAssignmentHandler(&mockAssignmentService{submitErr: tt.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/collector-assignments/submit", jsonBody(dto.SubmitAssignmentRequest{
				OrganizationID: "11111111-1111-1111-1111-111111111111",
				SubjectType:    "collector",
			}))
			req.Header.Set("Content-Type", "application/json")

			r := gin.New()
			r.POST("/collector-assignments/submit", injectAuth, h.SubmitAssignment)
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			resp := parseResponse(w)
			if resp.Code != tt.wantCode {
				t.Errorf("expected error code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestAssignmentHandler_Get_NotFound(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentService{getErr: service.ErrAssignmentNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/collector-assignments/a-404", nil)

	r := gin.New()
	r.GET("/collector-assignments/:id", injectAuth, h.GetAssignment)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestAssignmentHandler_UpdateStatus_MissingBody(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentService{})

	// isActive 为必填项，空 body 应被参数校验拦截
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/collector-assignments/a-001/status", jsonBody(map[string]string{}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PATCH("/collector-assignments/:id/status", injectAuth, h.UpdateAssignmentStatus)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAssignmentHandler_UpdateStatus_Success(t *testing.T) {
	mock := &mockAssignmentService{
		updateStatusResult: &dto.AssignmentResponse{ID: "a-001", IsActive: false},
	}
	h := NewAssignmentHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/collector-assignments/a-001/status", jsonBody(map[string]bool{
		"isActive": false,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PATCH("/collector-assignments/:id/status", injectAuth, h.UpdateAssignmentStatus)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAssignmentHandler_Create_SubjectConflict(t *testing.T) {
	h := NewAssignmentHandler(&mockAssignmentService{createErr: service.ErrSubjectConflict})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/collector-assignments", jsonBody(dto.CreateAssignmentRequest{
		OrganizationID: "11111111-1111-1111-1111-111111111111",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/collector-assignments", injectAuth, h.CreateAssignment)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 16006 {
		t.Errorf("expected error code 16006, got %d", resp.Code)
	}
}

func TestAssignmentHandler_List_Success(t *testing.T) {
	mock := &mockAssignmentService{
		listResult: []dto.AssignmentResponse{{ID: "a-001", IsActive: true}},
		listTotal:  1,
	}
	h := NewAssignmentHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/collector-assignments?page=1&limit=10", nil)

	r := gin.New()
	r.GET("/collector-assignments", injectAuth, h.ListAssignments)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ExportAssignments_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("excel-bytes"),
		filename: "资源分配清单_20260901.xlsx",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/assignments", nil)

	r := gin.New()
	r.GET("/export/assignments", injectAuth, h.ExportAssignments)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type: %s", ct)
	}
}

func TestExportHandler_ExportAssignments_Empty(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportNoAssignments})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/assignments", nil)

	r := gin.New()
	r.GET("/export/assignments", injectAuth, h.ExportAssignments)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
