package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"scrap-collection/backend/internal/dto"
	"scrap-collection/backend/internal/model"
	"scrap-collection/backend/internal/repository"
	pkgerrors "scrap-collection/backend/pkg/errors"
)

// ── 分配模块业务错误 ──

var (
	ErrAssignmentNotFound = errors.New("分配记录不存在")
	ErrSubjectMissing     = errors.New("缺少回收员或班组信息")
	ErrSubjectConflict    = errors.New("回收员与班组只能二选一")
)

// AssignmentService 资源分配业务接口
type AssignmentService interface {
	List(ctx context.Context, req *dto.AssignmentListRequest) ([]dto.AssignmentResponse, int64, error)
	GetByID(ctx context.Context, id string) (*dto.AssignmentResponse, error)
	Create(ctx context.Context, req *dto.CreateAssignmentRequest, callerID string) (*dto.AssignmentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateAssignmentRequest, callerID string) (*dto.AssignmentResponse, error)
	// Submit 分配表单提交：由协调逻辑决定创建或更新
	Submit(ctx context.Context, req *dto.SubmitAssignmentRequest, callerID string) (*dto.AssignmentResponse, error)
	UpdateStatus(ctx context.Context, id string, isActive bool, callerID string) (*dto.AssignmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type assignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *assignmentService) List(ctx context.Context, req *dto.AssignmentListRequest) ([]dto.AssignmentResponse, int64, error) {
	filter := &repository.AssignmentListFilter{
		Search:         req.Search,
		IsActive:       req.IsActive,
		OrganizationID: req.OrganizationID,
		CollectorID:    req.CollectorID,
		VehicleNameID:  req.VehicleNameID,
		CityID:         req.CityID,
		OrderClause:    req.OrderClause(),
		Offset:         req.GetOffset(),
		Limit:          req.GetLimit(),
	}

	assignments, total, err := s.repo.Assignment.List(ctx, filter)
	if err != nil {
		s.logger.Error("列出分配失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		result = append(result, *toAssignmentResponse(&assignments[i]))
	}

	return result, total, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *assignmentService) GetByID(ctx context.Context, id string) (*dto.AssignmentResponse, error) {
	a, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("查询分配失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toAssignmentResponse(a), nil
}

// ────────────────────── Create ──────────────────────

func (s *assignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest, callerID string) (*dto.AssignmentResponse, error) {
	// 主体不变量：创建请求必须且只能携带一个主体
	hasCollector := req.CollectorID != nil && *req.CollectorID != ""
	hasCrew := req.CrewID != nil && *req.CrewID != ""
	switch {
	case !hasCollector && !hasCrew:
		return nil, ErrSubjectMissing
	case hasCollector && hasCrew:
		return nil, ErrSubjectConflict
	}

	// 创建要求至少绑定一项资源
	if req.VehicleNameID == nil && req.ScrapYardID == nil {
		return nil, ErrResourceRequired
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	a := &model.CollectorAssignment{
		OrganizationID: req.OrganizationID,
		CollectorID:    req.CollectorID,
		CrewID:         req.CrewID,
		VehicleNameID:  req.VehicleNameID,
		ScrapYardID:    req.ScrapYardID,
		IsActive:       isActive,
	}
	a.CreatedBy = &callerID
	a.UpdatedBy = &callerID

	if err := s.repo.Assignment.Create(ctx, a); err != nil {
		s.logger.Error("创建分配失败", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, a.AssignmentID)
}

// ────────────────────── Update ──────────────────────
//
// 主体创建后不可变：更新只触及 vehicleNameId / scrapYardId / isActive。
// 三态字段语义：缺席=保持当前值，显式 null=清除绑定，值=改绑。

func (s *assignmentService) Update(ctx context.Context, id string, req *dto.UpdateAssignmentRequest, callerID string) (*dto.AssignmentResponse, error) {
	existing, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("查询分配失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	vehicleID := existing.VehicleNameID
	if req.VehicleNameID.Present {
		vehicleID = req.VehicleNameID.Ptr()
	}
	yardID := existing.ScrapYardID
	if req.ScrapYardID.Present {
		yardID = req.ScrapYardID.Ptr()
	}

	if err := s.repo.Assignment.UpdateResources(ctx, id, vehicleID, yardID, req.IsActive, callerID); err != nil {
		if errors.Is(err, pkgerrors.ErrStaleRecord) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("更新分配失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Submit ──────────────────────
//
// 分配表单提交入口：先将哨兵值转换为可选值，再交由纯协调逻辑
// 决定创建或更新。所有校验在任何持久层调用之前完成。

func (s *assignmentService) Submit(ctx context.Context, req *dto.SubmitAssignmentRequest, callerID string) (*dto.AssignmentResponse, error) {
	var existing *model.CollectorAssignment
	if req.AssignmentID != nil && *req.AssignmentID != "" {
		a, err := s.repo.Assignment.GetByID(ctx, *req.AssignmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAssignmentNotFound
			}
			s.logger.Error("查询分配失败", zap.String("id", *req.AssignmentID), zap.Error(err))
			return nil, err
		}
		existing = a
	}

	decision, err := Reconcile(ReconcileInput{
		SubjectType:        req.SubjectType,
		FormCollectorID:    dto.NormalizeFormValue(req.CollectorID),
		FormCrewID:         dto.NormalizeFormValue(req.CrewID),
		FormVehicleNameID:  dto.NormalizeFormValue(req.VehicleNameID),
		FormScrapYardID:    dto.NormalizeFormValue(req.ScrapYardID),
		ContextCollectorID: dto.NormalizeFormValue(req.ContextCollectorID),
		ContextCrewID:      dto.NormalizeFormValue(req.ContextCrewID),
		Existing:           existing,
	})
	if err != nil {
		return nil, err
	}

	switch decision.Action {
	case ActionUpdate:
		if err := s.repo.Assignment.UpdateResources(ctx, decision.AssignmentID,
			decision.Update.VehicleNameID, decision.Update.ScrapYardID, nil, callerID); err != nil {
			if errors.Is(err, pkgerrors.ErrStaleRecord) {
				return nil, ErrAssignmentNotFound
			}
			s.logger.Error("更新分配失败", zap.String("id", decision.AssignmentID), zap.Error(err))
			return nil, err
		}
		return s.GetByID(ctx, decision.AssignmentID)

	default:
		a := &model.CollectorAssignment{
			OrganizationID: req.OrganizationID,
			CollectorID:    decision.Create.CollectorID,
			CrewID:         decision.Create.CrewID,
			VehicleNameID:  decision.Create.VehicleNameID,
			ScrapYardID:    decision.Create.ScrapYardID,
			IsActive:       true,
		}
		a.CreatedBy = &callerID
		a.UpdatedBy = &callerID

		if err := s.repo.Assignment.Create(ctx, a); err != nil {
			s.logger.Error("创建分配失败", zap.Error(err))
			return nil, err
		}
		return s.GetByID(ctx, a.AssignmentID)
	}
}

// ────────────────────── UpdateStatus ──────────────────────
//
// 状态切换契约：目标状态与当前一致时为空操作，不产生任何写入

func (s *assignmentService) UpdateStatus(ctx context.Context, id string, isActive bool, callerID string) (*dto.AssignmentResponse, error) {
	a, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("查询分配失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if a.IsActive == isActive {
		return toAssignmentResponse(a), nil
	}

	if err := s.repo.Assignment.UpdateStatus(ctx, id, isActive, callerID); err != nil {
		if errors.Is(err, pkgerrors.ErrStaleRecord) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("切换分配状态失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *assignmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Assignment.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		s.logger.Error("查询分配失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Assignment.Delete(ctx, id); err != nil {
		s.logger.Error("删除分配失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

const timeLayout = "2006-01-02T15:04:05Z"

func toAssignmentResponse(a *model.CollectorAssignment) *dto.AssignmentResponse {
	resp := &dto.AssignmentResponse{
		ID:        a.AssignmentID,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt.Format(timeLayout),
		UpdatedAt: a.UpdatedAt.Format(timeLayout),
	}
	if a.Collector != nil {
		resp.Collector = toEmployeeResponse(a.Collector)
	}
	if a.Crew != nil {
		resp.Crew = toCrewResponse(a.Crew)
	}
	if a.VehicleName != nil {
		resp.VehicleName = toVehicleNameResponse(a.VehicleName)
	}
	if a.ScrapYard != nil {
		resp.ScrapYard = toScrapYardResponse(a.ScrapYard)
	}
	return resp
}
