package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"scrap-collection/backend/config"
	"scrap-collection/backend/internal/dto"
	"scrap-collection/backend/internal/model"
	"scrap-collection/backend/pkg/jwt"
)

// ── 测试辅助 ──

func setupTestAuthService() (AuthService, *mockEmployeeRepo) {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-key-for-unit-tests",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	repo := newTestRepository()
	empRepo := repo.Employee.(*mockEmployeeRepo)
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
	return svc, empRepo
}

func seedAuthEmployee(empRepo *mockEmployeeRepo, email, password string, isActive bool) *model.Employee {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	emp := &model.Employee{
		EmployeeID:     "emp-auth-1",
		OrganizationID: testOrgID,
		Name:           "测试管理员",
		Email:          email,
		Role:           model.RoleAdmin,
		PasswordHash:   string(hash),
		IsActive:       isActive,
	}
	empRepo.employees[emp.EmployeeID] = emp
	return emp
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, empRepo := setupTestAuthService()
	seedAuthEmployee(empRepo, "admin@example.com", "password123", true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("登录应返回 Token 对")
	}
	if resp.Employee.Email != "admin@example.com" {
		t.Errorf("期望返回当前员工信息，实际 Email=%s", resp.Employee.Email)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, empRepo := setupTestAuthService()
	seedAuthEmployee(empRepo, "admin@example.com", "password123", true)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	svc, empRepo := setupTestAuthService()
	seedAuthEmployee(empRepo, "admin@example.com", "password123", false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})
	if !errors.Is(err, ErrEmployeeDisabled) {
		t.Errorf("期望 ErrEmployeeDisabled，实际: %v", err)
	}
}

// ── RefreshToken 测试 ──

func TestAuthService_RefreshToken_Success(t *testing.T) {
	svc, empRepo := setupTestAuthService()
	seedAuthEmployee(empRepo, "admin@example.com", "password123", true)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	resp, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken 应成功: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("刷新应返回新的 Access Token")
	}
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc, empRepo := setupTestAuthService()
	seedAuthEmployee(empRepo, "admin@example.com", "password123", true)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	// Access Token 不能用于刷新
	if _, err := svc.RefreshToken(context.Background(), login.AccessToken); !errors.Is(err, ErrRefreshInvalid) {
		t.Errorf("期望 ErrRefreshInvalid，实际: %v", err)
	}
}

// ── ChangePassword 测试 ──

func TestAuthService_ChangePassword_Success(t *testing.T) {
	svc, empRepo := setupTestAuthService()
	emp := seedAuthEmployee(empRepo, "admin@example.com", "password123", true)

	err := svc.ChangePassword(context.Background(), emp.EmployeeID, &dto.ChangePasswordRequest{
		OldPassword: "password123",
		NewPassword: "new-password-456",
	})
	if err != nil {
		t.Fatalf("ChangePassword 应成功: %v", err)
	}

	stored := empRepo.employees[emp.EmployeeID]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password-456")); err != nil {
		t.Errorf("新密码应通过 bcrypt 校验: %v", err)
	}
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	svc, empRepo := setupTestAuthService()
	emp := seedAuthEmployee(empRepo, "admin@example.com", "password123", true)

	err := svc.ChangePassword(context.Background(), emp.EmployeeID, &dto.ChangePasswordRequest{
		OldPassword: "wrong-password",
		NewPassword: "new-password-456",
	})
	if !errors.Is(err, ErrOldPasswordWrong) {
		t.Errorf("期望 ErrOldPasswordWrong，实际: %v", err)
	}
}
