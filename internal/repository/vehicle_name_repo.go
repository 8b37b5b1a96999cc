package repository

import (
	"context"

	"gorm.io/gorm"

	"scrap-collection/backend/internal/model"
)

// VehicleNameListFilter 车辆列表过滤条件
type VehicleNameListFilter struct {
	Search         string
	IsActive       *bool
	OrganizationID string
	Offset         int
	Limit          int
}

// VehicleNameRepository 车辆数据访问接口
type VehicleNameRepository interface {
	Create(ctx context.Context, v *model.VehicleName) error
	GetByID(ctx context.Context, id string) (*model.VehicleName, error)
	List(ctx context.Context, filter *VehicleNameListFilter) ([]model.VehicleName, int64, error)
	Update(ctx context.Context, v *model.VehicleName) error
	Delete(ctx context.Context, id string) error
}

type vehicleNameRepo struct {
	db *gorm.DB
}

// NewVehicleNameRepo 创建 VehicleNameRepository 实例
func NewVehicleNameRepo(db *gorm.DB) VehicleNameRepository {
	return &vehicleNameRepo{db: db}
}

func (r *vehicleNameRepo) Create(ctx context.Context, v *model.VehicleName) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehicleNameRepo) GetByID(ctx context.Context, id string) (*model.VehicleName, error) {
	var v model.VehicleName
	err := r.db.WithContext(ctx).
		Where("vehicle_name_id = ?", id).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vehicleNameRepo) List(ctx context.Context, filter *VehicleNameListFilter) ([]model.VehicleName, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.VehicleName{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where("name ILIKE ? OR plate_number ILIKE ?", like, like)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}
	if filter.OrganizationID != "" {
		db = db.Where("organization_id = ?", filter.OrganizationID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vehicles []model.VehicleName
	err := db.
		Order("name ASC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&vehicles).Error
	return vehicles, total, err
}

func (r *vehicleNameRepo) Update(ctx context.Context, v *model.VehicleName) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vehicleNameRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("vehicle_name_id = ?", id).
		Delete(&model.VehicleName{}).Error
}
