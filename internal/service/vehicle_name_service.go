package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"scrap-collection/backend/internal/dto"
	"scrap-collection/backend/internal/model"
	"scrap-collection/backend/internal/repository"
	"scrap-collection/backend/pkg/redis"
)

// ── 车辆模块业务错误 ──

var (
	ErrVehicleNameNotFound = errors.New("车辆不存在")
)

// 下拉选项列表缓存 TTL
const referenceCacheTTL = 5 * time.Minute

// VehicleNameService 车辆业务接口
type VehicleNameService interface {
	Create(ctx context.Context, req *dto.CreateVehicleNameRequest, callerID string) (*dto.VehicleNameResponse, error)
	GetByID(ctx context.Context, id string) (*dto.VehicleNameResponse, error)
	List(ctx context.Context, req *dto.VehicleNameListRequest) ([]dto.VehicleNameResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateVehicleNameRequest, callerID string) (*dto.VehicleNameResponse, error)
	Delete(ctx context.Context, id string) error
}

type vehicleNameService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewVehicleNameService 创建 VehicleNameService 实例
// rdb 为 nil 时跳过缓存直接落库
func NewVehicleNameService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) VehicleNameService {
	return &vehicleNameService{repo: repo, rdb: rdb, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *vehicleNameService) Create(ctx context.Context, req *dto.CreateVehicleNameRequest, callerID string) (*dto.VehicleNameResponse, error) {
	v := &model.VehicleName{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		PlateNumber:    req.PlateNumber,
		IsActive:       true,
	}
	v.CreatedBy = &callerID
	v.UpdatedBy = &callerID

	if err := s.repo.VehicleName.Create(ctx, v); err != nil {
		s.logger.Error("创建车辆失败", zap.Error(err))
		return nil, err
	}

	s.invalidateCache(ctx, req.OrganizationID)

	return toVehicleNameResponse(v), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *vehicleNameService) GetByID(ctx context.Context, id string) (*dto.VehicleNameResponse, error) {
	v, err := s.repo.VehicleName.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNameNotFound
		}
		s.logger.Error("查询车辆失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toVehicleNameResponse(v), nil
}

// ────────────────────── List ──────────────────────
//
// 管理端表单下拉的活跃车辆列表命中率高，按组织维度走 Redis 缓存；
// 带搜索词或其他过滤组合时绕过缓存直接落库

func (s *vehicleNameService) List(ctx context.Context, req *dto.VehicleNameListRequest) ([]dto.VehicleNameResponse, int64, error) {
	cacheable := s.rdb != nil && req.Search == "" && req.OrganizationID != "" &&
		req.IsActive != nil && *req.IsActive && req.GetPage() == 1

	cacheKey := "vehicle-names:" + req.OrganizationID
	if cacheable {
		var cached []dto.VehicleNameResponse
		hit, err := s.rdb.GetReferenceList(ctx, cacheKey, &cached)
		if err != nil {
			s.logger.Warn("读取车辆列表缓存失败", zap.Error(err))
		} else if hit {
			return cached, int64(len(cached)), nil
		}
	}

	filter := &repository.VehicleNameListFilter{
		Search:         req.Search,
		IsActive:       req.IsActive,
		OrganizationID: req.OrganizationID,
		Offset:         req.GetOffset(),
		Limit:          req.GetLimit(),
	}

	vehicles, total, err := s.repo.VehicleName.List(ctx, filter)
	if err != nil {
		s.logger.Error("列出车辆失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.VehicleNameResponse, 0, len(vehicles))
	for i := range vehicles {
		result = append(result, *toVehicleNameResponse(&vehicles[i]))
	}

	if cacheable {
		if err := s.rdb.SetReferenceList(ctx, cacheKey, result, referenceCacheTTL); err != nil {
			s.logger.Warn("写入车辆列表缓存失败", zap.Error(err))
		}
	}

	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *vehicleNameService) Update(ctx context.Context, id string, req *dto.UpdateVehicleNameRequest, callerID string) (*dto.VehicleNameResponse, error) {
	v, err := s.repo.VehicleName.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNameNotFound
		}
		s.logger.Error("查询车辆失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.PlateNumber != nil {
		v.PlateNumber = *req.PlateNumber
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}

	v.UpdatedBy = &callerID

	if err := s.repo.VehicleName.Update(ctx, v); err != nil {
		s.logger.Error("更新车辆失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.invalidateCache(ctx, v.OrganizationID)

	return toVehicleNameResponse(v), nil
}

// ────────────────────── Delete ──────────────────────

func (s *vehicleNameService) Delete(ctx context.Context, id string) error {
	v, err := s.repo.VehicleName.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVehicleNameNotFound
		}
		s.logger.Error("查询车辆失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.VehicleName.Delete(ctx, id); err != nil {
		s.logger.Error("删除车辆失败", zap.String("id", id), zap.Error(err))
		return err
	}

	s.invalidateCache(ctx, v.OrganizationID)

	return nil
}

// ── 内部辅助方法 ──

func (s *vehicleNameService) invalidateCache(ctx context.Context, organizationID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.InvalidateReferenceList(ctx, "vehicle-names:"+organizationID); err != nil {
		s.logger.Warn("清除车辆列表缓存失败", zap.Error(err))
	}
}

func toVehicleNameResponse(v *model.VehicleName) *dto.VehicleNameResponse {
	return &dto.VehicleNameResponse{
		ID:          v.VehicleNameID,
		Name:        v.Name,
		PlateNumber: v.PlateNumber,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt.Format(timeLayout),
		UpdatedAt:   v.UpdatedAt.Format(timeLayout),
	}
}
