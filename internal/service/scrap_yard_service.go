package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"scrap-collection/backend/internal/dto"
	"scrap-collection/backend/internal/model"
	"scrap-collection/backend/internal/repository"
)

// ── 废品站模块业务错误 ──

var (
	ErrScrapYardNotFound = errors.New("废品站不存在")
)

// ScrapYardService 废品站业务接口
type ScrapYardService interface {
	Create(ctx context.Context, req *dto.CreateScrapYardRequest, callerID string) (*dto.ScrapYardResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ScrapYardResponse, error)
	List(ctx context.Context, req *dto.ScrapYardListRequest) ([]dto.ScrapYardResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateScrapYardRequest, callerID string) (*dto.ScrapYardResponse, error)
	Delete(ctx context.Context, id string) error
}

type scrapYardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScrapYardService 创建 ScrapYardService 实例
func NewScrapYardService(repo *repository.Repository, logger *zap.Logger) ScrapYardService {
	return &scrapYardService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *scrapYardService) Create(ctx context.Context, req *dto.CreateScrapYardRequest, callerID string) (*dto.ScrapYardResponse, error) {
	yard := &model.ScrapYard{
		OrganizationID: req.OrganizationID,
		CityID:         req.CityID,
		Name:           req.Name,
		Address:        req.Address,
		IsActive:       true,
	}
	yard.CreatedBy = &callerID
	yard.UpdatedBy = &callerID

	if err := s.repo.ScrapYard.Create(ctx, yard); err != nil {
		s.logger.Error("创建废品站失败", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, yard.ScrapYardID)
}

// ────────────────────── GetByID ──────────────────────

func (s *scrapYardService) GetByID(ctx context.Context, id string) (*dto.ScrapYardResponse, error) {
	yard, err := s.repo.ScrapYard.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScrapYardNotFound
		}
		s.logger.Error("查询废品站失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toScrapYardResponse(yard), nil
}

// ────────────────────── List ──────────────────────

func (s *scrapYardService) List(ctx context.Context, req *dto.ScrapYardListRequest) ([]dto.ScrapYardResponse, int64, error) {
	// status 查询参数翻译为布尔过滤：active / inactive / all
	var isActive *bool
	switch req.Status {
	case "active":
		t := true
		isActive = &t
	case "inactive":
		f := false
		isActive = &f
	}

	filter := &repository.ScrapYardListFilter{
		Search:         req.Search,
		IsActive:       isActive,
		OrganizationID: req.OrganizationID,
		CityID:         req.CityID,
		Offset:         req.GetOffset(),
		Limit:          req.GetLimit(),
	}

	yards, total, err := s.repo.ScrapYard.List(ctx, filter)
	if err != nil {
		s.logger.Error("列出废品站失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ScrapYardResponse, 0, len(yards))
	for i := range yards {
		result = append(result, *toScrapYardResponse(&yards[i]))
	}

	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *scrapYardService) Update(ctx context.Context, id string, req *dto.UpdateScrapYardRequest, callerID string) (*dto.ScrapYardResponse, error) {
	yard, err := s.repo.ScrapYard.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScrapYardNotFound
		}
		s.logger.Error("查询废品站失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.CityID != nil {
		yard.CityID = req.CityID
	}
	if req.Name != nil {
		yard.Name = *req.Name
	}
	if req.Address != nil {
		yard.Address = *req.Address
	}
	if req.IsActive != nil {
		yard.IsActive = *req.IsActive
	}

	yard.UpdatedBy = &callerID

	if err := s.repo.ScrapYard.Update(ctx, yard); err != nil {
		s.logger.Error("更新废品站失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *scrapYardService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.ScrapYard.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScrapYardNotFound
		}
		s.logger.Error("查询废品站失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.ScrapYard.Delete(ctx, id); err != nil {
		s.logger.Error("删除废品站失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func toScrapYardResponse(yard *model.ScrapYard) *dto.ScrapYardResponse {
	resp := &dto.ScrapYardResponse{
		ID:        yard.ScrapYardID,
		Name:      yard.Name,
		Address:   yard.Address,
		IsActive:  yard.IsActive,
		CreatedAt: yard.CreatedAt.Format(timeLayout),
		UpdatedAt: yard.UpdatedAt.Format(timeLayout),
	}
	if yard.City != nil {
		resp.City = &dto.CityResponse{
			ID:   yard.City.CityID,
			Name: yard.City.Name,
		}
	}
	return resp
}
