package repository

import (
	"context"

	"gorm.io/gorm"

	"scrap-collection/backend/internal/model"
	pkgerrors "scrap-collection/backend/pkg/errors"
)

// AssignmentListFilter 分配列表过滤条件
type AssignmentListFilter struct {
	Search         string
	IsActive       *bool
	OrganizationID string
	CollectorID    string
	VehicleNameID  string
	CityID         string
	OrderClause    string
	Offset         int
	Limit          int
}

// AssignmentRepository 资源分配数据访问接口
type AssignmentRepository interface {
	Create(ctx context.Context, a *model.CollectorAssignment) error
	GetByID(ctx context.Context, id string) (*model.CollectorAssignment, error)
	List(ctx context.Context, filter *AssignmentListFilter) ([]model.CollectorAssignment, int64, error)
	// UpdateResources 更新资源绑定：vehicle/yard 两列总是写入（nil 即置空），
	// isActive 仅在非 nil 时写入；主体列不触及
	UpdateResources(ctx context.Context, id string, vehicleNameID, scrapYardID *string, isActive *bool, updatedBy string) error
	UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error
	Delete(ctx context.Context, id string) error
	// DeactivateStale 停用主体（回收员或班组）已被停用的活跃分配，返回受影响行数
	DeactivateStale(ctx context.Context) (int64, error)
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, a *model.CollectorAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, id string) (*model.CollectorAssignment, error) {
	var a model.CollectorAssignment
	err := r.db.WithContext(ctx).
		Preload("Collector").Preload("Crew").
		Preload("VehicleName").Preload("ScrapYard").Preload("ScrapYard.City").
		Where("assignment_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepo) List(ctx context.Context, filter *AssignmentListFilter) ([]model.CollectorAssignment, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.CollectorAssignment{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.
			Joins("LEFT JOIN employees ON employees.employee_id = collector_assignments.collector_id").
			Joins("LEFT JOIN crews ON crews.crew_id = collector_assignments.crew_id").
			Where("employees.name ILIKE ? OR crews.name ILIKE ?", like, like)
	}
	if filter.IsActive != nil {
		db = db.Where("collector_assignments.is_active = ?", *filter.IsActive)
	}
	if filter.OrganizationID != "" {
		db = db.Where("collector_assignments.organization_id = ?", filter.OrganizationID)
	}
	if filter.CollectorID != "" {
		db = db.Where("collector_assignments.collector_id = ?", filter.CollectorID)
	}
	if filter.VehicleNameID != "" {
		db = db.Where("collector_assignments.vehicle_name_id = ?", filter.VehicleNameID)
	}
	if filter.CityID != "" {
		db = db.
			Joins("LEFT JOIN scrap_yards ON scrap_yards.scrap_yard_id = collector_assignments.scrap_yard_id").
			Where("scrap_yards.city_id = ?", filter.CityID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := filter.OrderClause
	if order == "" {
		order = "collector_assignments.created_at DESC"
	}

	var assignments []model.CollectorAssignment
	err := db.
		Preload("Collector").Preload("Crew").
		Preload("VehicleName").Preload("ScrapYard").Preload("ScrapYard.City").
		Order(order).
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&assignments).Error
	return assignments, total, err
}

func (r *assignmentRepo) UpdateResources(ctx context.Context, id string, vehicleNameID, scrapYardID *string, isActive *bool, updatedBy string) error {
	updates := map[string]interface{}{
		"vehicle_name_id": vehicleNameID,
		"scrap_yard_id":   scrapYardID,
		"updated_by":      updatedBy,
	}
	if isActive != nil {
		updates["is_active"] = *isActive
	}
	result := r.db.WithContext(ctx).
		Model(&model.CollectorAssignment{}).
		Where("assignment_id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrStaleRecord
	}
	return nil
}

func (r *assignmentRepo) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	result := r.db.WithContext(ctx).
		Model(&model.CollectorAssignment{}).
		Where("assignment_id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  isActive,
			"updated_by": updatedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrStaleRecord
	}
	return nil
}

func (r *assignmentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("assignment_id = ?", id).
		Delete(&model.CollectorAssignment{}).Error
}

func (r *assignmentRepo) DeactivateStale(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.CollectorAssignment{}).
		Where("is_active = ?", true).
		Where(`(collector_id IS NOT NULL AND collector_id IN (SELECT employee_id FROM employees WHERE is_active = FALSE))
			OR (crew_id IS NOT NULL AND crew_id IN (SELECT crew_id FROM crews WHERE is_active = FALSE))`).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
