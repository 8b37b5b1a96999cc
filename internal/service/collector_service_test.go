package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"scrap-collection/backend/internal/dto"
	"scrap-collection/backend/internal/model"
)

// ── 测试辅助 ──

func setupTestCollectorService() (CollectorService, *mockEmployeeRepo) {
	repo := newTestRepository()
	empRepo := repo.Employee.(*mockEmployeeRepo)
	svc := NewCollectorService(repo, zap.NewNop())
	return svc, empRepo
}

// ── Create 测试 ──

func TestCollectorService_Create_Success(t *testing.T) {
	svc, empRepo := setupTestCollectorService()

	req := &dto.CreateEmployeeRequest{
		OrganizationID: testOrgID,
		Name:           "张回收",
		Email:          "zhang@example.com",
		Password:       "password123",
	}

	result, err := svc.Create(context.Background(), req, "admin-001")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Role != model.RoleCollector {
		t.Errorf("未指定角色时应默认 COLLECTOR，实际=%s", result.Role)
	}
	if !result.IsActive {
		t.Error("新建员工应默认启用")
	}

	// 密码必须以 bcrypt 哈希落库，且可被原文验证
	stored := empRepo.employees[result.ID]
	if stored.PasswordHash == "password123" {
		t.Error("密码不应明文存储")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")); err != nil {
		t.Errorf("bcrypt 校验失败: %v", err)
	}
}

func TestCollectorService_Create_DuplicateEmail(t *testing.T) {
	svc, empRepo := setupTestCollectorService()
	empRepo.employees["emp-1"] = &model.Employee{
		EmployeeID: "emp-1",
		Email:      "taken@example.com",
		IsActive:   true,
	}

	req := &dto.CreateEmployeeRequest{
		OrganizationID: testOrgID,
		Name:           "李回收",
		Email:          "taken@example.com",
		Password:       "password123",
	}

	_, err := svc.Create(context.Background(), req, "admin-001")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("期望 ErrEmailTaken，实际: %v", err)
	}
}

// ── GetByID 测试 ──

func TestCollectorService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestCollectorService()

	_, err := svc.GetByID(context.Background(), "nonexistent")
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("期望 ErrEmployeeNotFound，实际: %v", err)
	}
}

// ── Update 测试 ──

func TestCollectorService_Update_PartialFields(t *testing.T) {
	svc, empRepo := setupTestCollectorService()
	empRepo.employees["emp-1"] = &model.Employee{
		EmployeeID: "emp-1",
		Name:       "张回收",
		Email:      "zhang@example.com",
		Phone:      "+8613800000000",
		Role:       model.RoleCollector,
		IsActive:   true,
	}

	newName := "张师傅"
	result, err := svc.Update(context.Background(), "emp-1", &dto.UpdateEmployeeRequest{Name: &newName}, "admin-001")
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.Name != "张师傅" {
		t.Errorf("期望 Name=张师傅，实际=%s", result.Name)
	}
	if result.Email != "zhang@example.com" {
		t.Errorf("未提供的字段应保持原值，实际 Email=%s", result.Email)
	}
}

// ── UpdateStatus 测试 ──

func TestCollectorService_UpdateStatus_NoopWhenUnchanged(t *testing.T) {
	svc, empRepo := setupTestCollectorService()
	empRepo.employees["emp-1"] = &model.Employee{
		EmployeeID: "emp-1",
		Name:       "张回收",
		Role:       model.RoleCollector,
		IsActive:   true,
	}

	before := empRepo.employees["emp-1"].UpdatedAt

	result, err := svc.UpdateStatus(context.Background(), "emp-1", true, "admin-001")
	if err != nil {
		t.Fatalf("UpdateStatus 应成功: %v", err)
	}
	if !result.IsActive {
		t.Error("期望 IsActive 保持 true")
	}
	if !empRepo.employees["emp-1"].UpdatedAt.Equal(before) {
		t.Error("同状态切换应为空操作，不应产生写入")
	}
}

func TestCollectorService_UpdateStatus_Deactivate(t *testing.T) {
	svc, empRepo := setupTestCollectorService()
	empRepo.employees["emp-1"] = &model.Employee{
		EmployeeID: "emp-1",
		Name:       "张回收",
		Role:       model.RoleCollector,
		IsActive:   true,
	}

	result, err := svc.UpdateStatus(context.Background(), "emp-1", false, "admin-001")
	if err != nil {
		t.Fatalf("UpdateStatus 应成功: %v", err)
	}
	if result.IsActive {
		t.Error("期望停用后 IsActive=false")
	}
}

// ── Delete 测试 ──

func TestCollectorService_Delete_Success(t *testing.T) {
	svc, empRepo := setupTestCollectorService()
	empRepo.employees["emp-1"] = &model.Employee{EmployeeID: "emp-1", Name: "张回收"}

	if err := svc.Delete(context.Background(), "emp-1"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, ok := empRepo.employees["emp-1"]; ok {
		t.Error("员工应已被删除")
	}
}
