package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"scrap-collection/backend/internal/dto"
	"scrap-collection/backend/internal/model"
	"scrap-collection/backend/internal/repository"
)

// ── 员工模块业务错误 ──

var (
	ErrEmployeeNotFound = errors.New("员工不存在")
	ErrEmailTaken       = errors.New("邮箱已被使用")
)

// CollectorService 员工（回收员）业务接口
type CollectorService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error)
	List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error)
	UpdateStatus(ctx context.Context, id string, isActive bool, callerID string) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type collectorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCollectorService 创建 CollectorService 实例
func NewCollectorService(repo *repository.Repository, logger *zap.Logger) CollectorService {
	return &collectorService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *collectorService) Create(ctx context.Context, req *dto.CreateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error) {
	// 邮箱唯一性预检（数据库唯一索引兜底）
	if _, err := s.repo.Employee.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询员工失败", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleCollector
	}

	emp := &model.Employee{
		OrganizationID: req.OrganizationID,
		CityID:         req.CityID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Role:           role,
		PasswordHash:   string(hash),
		IsActive:       true,
	}
	emp.CreatedBy = &callerID
	emp.UpdatedBy = &callerID

	if err := s.repo.Employee.Create(ctx, emp); err != nil {
		s.logger.Error("创建员工失败", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, emp.EmployeeID)
}

// ────────────────────── GetByID ──────────────────────

func (s *collectorService) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	emp, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toEmployeeResponse(emp), nil
}

// ────────────────────── List ──────────────────────

func (s *collectorService) List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, error) {
	filter := &repository.EmployeeListFilter{
		Search:         req.Search,
		Role:           req.Role,
		IsActive:       req.IsActive,
		OrganizationID: req.OrganizationID,
		CityID:         req.CityID,
		SortBy:         req.SortBy,
		SortOrder:      req.SortOrder,
		Offset:         req.GetOffset(),
		Limit:          req.GetLimit(),
	}

	employees, total, err := s.repo.Employee.List(ctx, filter)
	if err != nil {
		s.logger.Error("列出员工失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		result = append(result, *toEmployeeResponse(&employees[i]))
	}

	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *collectorService) Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest, callerID string) (*dto.EmployeeResponse, error) {
	emp, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.CityID != nil {
		emp.CityID = req.CityID
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}

	emp.UpdatedBy = &callerID

	if err := s.repo.Employee.Update(ctx, emp); err != nil {
		s.logger.Error("更新员工失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── UpdateStatus ──────────────────────
//
// 状态切换契约：目标状态与当前一致时为空操作，不产生任何写入

func (s *collectorService) UpdateStatus(ctx context.Context, id string, isActive bool, callerID string) (*dto.EmployeeResponse, error) {
	emp, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if emp.IsActive == isActive {
		return toEmployeeResponse(emp), nil
	}

	if err := s.repo.Employee.UpdateStatus(ctx, id, isActive, callerID); err != nil {
		s.logger.Error("切换员工状态失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *collectorService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Employee.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Employee.Delete(ctx, id); err != nil {
		s.logger.Error("删除员工失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func toEmployeeResponse(emp *model.Employee) *dto.EmployeeResponse {
	resp := &dto.EmployeeResponse{
		ID:        emp.EmployeeID,
		Name:      emp.Name,
		Email:     emp.Email,
		Phone:     emp.Phone,
		Role:      emp.Role,
		IsActive:  emp.IsActive,
		CreatedAt: emp.CreatedAt.Format(timeLayout),
		UpdatedAt: emp.UpdatedAt.Format(timeLayout),
	}
	if emp.Organization != nil {
		resp.Organization = &dto.OrganizationResponse{
			ID:   emp.Organization.OrganizationID,
			Name: emp.Organization.Name,
		}
	}
	if emp.City != nil {
		resp.City = &dto.CityResponse{
			ID:   emp.City.CityID,
			Name: emp.City.Name,
		}
	}
	return resp
}
