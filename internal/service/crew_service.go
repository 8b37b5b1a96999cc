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

// ── 班组模块业务错误 ──

var (
	ErrCrewNotFound = errors.New("班组不存在")
)

// CrewService 班组业务接口
type CrewService interface {
	Create(ctx context.Context, req *dto.CreateCrewRequest, callerID string) (*dto.CrewResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CrewResponse, error)
	List(ctx context.Context, req *dto.CrewListRequest) ([]dto.CrewResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateCrewRequest, callerID string) (*dto.CrewResponse, error)
	UpdateStatus(ctx context.Context, id string, isActive bool, callerID string) (*dto.CrewResponse, error)
	Delete(ctx context.Context, id string) error
}

type crewService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCrewService 创建 CrewService 实例
func NewCrewService(repo *repository.Repository, logger *zap.Logger) CrewService {
	return &crewService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *crewService) Create(ctx context.Context, req *dto.CreateCrewRequest, callerID string) (*dto.CrewResponse, error) {
	crew := &model.Crew{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
		IsActive:       true,
	}
	crew.CreatedBy = &callerID
	crew.UpdatedBy = &callerID

	if err := s.repo.Crew.Create(ctx, crew); err != nil {
		s.logger.Error("创建班组失败", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, crew.CrewID)
}

// ────────────────────── GetByID ──────────────────────

func (s *crewService) GetByID(ctx context.Context, id string) (*dto.CrewResponse, error) {
	crew, err := s.repo.Crew.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCrewNotFound
		}
		s.logger.Error("查询班组失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toCrewResponse(crew), nil
}

// ────────────────────── List ──────────────────────

func (s *crewService) List(ctx context.Context, req *dto.CrewListRequest) ([]dto.CrewResponse, int64, error) {
	filter := &repository.CrewListFilter{
		Search:         req.Search,
		IsActive:       req.IsActive,
		OrganizationID: req.OrganizationID,
		SortBy:         req.SortBy,
		SortOrder:      req.SortOrder,
		Offset:         req.GetOffset(),
		Limit:          req.GetLimit(),
	}

	crews, total, err := s.repo.Crew.List(ctx, filter)
	if err != nil {
		s.logger.Error("列出班组失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.CrewResponse, 0, len(crews))
	for i := range crews {
		result = append(result, *toCrewResponse(&crews[i]))
	}

	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *crewService) Update(ctx context.Context, id string, req *dto.UpdateCrewRequest, callerID string) (*dto.CrewResponse, error) {
	crew, err := s.repo.Crew.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCrewNotFound
		}
		s.logger.Error("查询班组失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		crew.Name = *req.Name
	}
	if req.Description != nil {
		crew.Description = *req.Description
	}

	crew.UpdatedBy = &callerID

	if err := s.repo.Crew.Update(ctx, crew); err != nil {
		s.logger.Error("更新班组失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── UpdateStatus ──────────────────────
//
// 状态切换契约：目标状态与当前一致时为空操作，不产生任何写入

func (s *crewService) UpdateStatus(ctx context.Context, id string, isActive bool, callerID string) (*dto.CrewResponse, error) {
	crew, err := s.repo.Crew.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCrewNotFound
		}
		s.logger.Error("查询班组失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if crew.IsActive == isActive {
		return toCrewResponse(crew), nil
	}

	if err := s.repo.Crew.UpdateStatus(ctx, id, isActive, callerID); err != nil {
		s.logger.Error("切换班组状态失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *crewService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Crew.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCrewNotFound
		}
		s.logger.Error("查询班组失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Crew.Delete(ctx, id); err != nil {
		s.logger.Error("删除班组失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func toCrewResponse(crew *model.Crew) *dto.CrewResponse {
	resp := &dto.CrewResponse{
		ID:          crew.CrewID,
		Name:        crew.Name,
		Description: crew.Description,
		IsActive:    crew.IsActive,
		CreatedAt:   crew.CreatedAt.Format(timeLayout),
		UpdatedAt:   crew.UpdatedAt.Format(timeLayout),
	}
	if crew.Organization != nil {
		resp.Organization = &dto.OrganizationResponse{
			ID:   crew.Organization.OrganizationID,
			Name: crew.Organization.Name,
		}
	}
	return resp
}
