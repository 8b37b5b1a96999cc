package repository

import (
	"context"

	"gorm.io/gorm"

	"scrap-collection/backend/internal/model"
)

// CrewListFilter 班组列表过滤条件
type CrewListFilter struct {
	Search         string
	IsActive       *bool
	OrganizationID string
	SortBy         string
	SortOrder      string
	Offset         int
	Limit          int
}

// CrewRepository 班组数据访问接口
type CrewRepository interface {
	Create(ctx context.Context, crew *model.Crew) error
	GetByID(ctx context.Context, id string) (*model.Crew, error)
	List(ctx context.Context, filter *CrewListFilter) ([]model.Crew, int64, error)
	Update(ctx context.Context, crew *model.Crew) error
	UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error
	Delete(ctx context.Context, id string) error
}

type crewRepo struct {
	db *gorm.DB
}

// NewCrewRepo 创建 CrewRepository 实例
func NewCrewRepo(db *gorm.DB) CrewRepository {
	return &crewRepo{db: db}
}

func (r *crewRepo) Create(ctx context.Context, crew *model.Crew) error {
	return r.db.WithContext(ctx).Create(crew).Error
}

func (r *crewRepo) GetByID(ctx context.Context, id string) (*model.Crew, error) {
	var crew model.Crew
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Where("crew_id = ?", id).
		First(&crew).Error
	if err != nil {
		return nil, err
	}
	return &crew, nil
}

// 班组可排序列白名单
var crewSortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func (r *crewRepo) List(ctx context.Context, filter *CrewListFilter) ([]model.Crew, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Crew{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where("name ILIKE ? OR description ILIKE ?", like, like)
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

	order := "created_at DESC"
	if col, ok := crewSortColumns[filter.SortBy]; ok {
		if filter.SortOrder == "asc" {
			order = col + " ASC"
		} else {
			order = col + " DESC"
		}
	}

	var crews []model.Crew
	err := db.
		Preload("Organization").
		Order(order).
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&crews).Error
	return crews, total, err
}

func (r *crewRepo) Update(ctx context.Context, crew *model.Crew) error {
	return r.db.WithContext(ctx).Save(crew).Error
}

func (r *crewRepo) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Crew{}).
		Where("crew_id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  isActive,
			"updated_by": updatedBy,
		}).Error
}

func (r *crewRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("crew_id = ?", id).
		Delete(&model.Crew{}).Error
}
