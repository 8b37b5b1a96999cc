package repository

import (
	"context"

	"gorm.io/gorm"

	"scrap-collection/backend/internal/model"
)

// ScrapYardListFilter 废品站列表过滤条件
type ScrapYardListFilter struct {
	Search         string
	IsActive       *bool
	OrganizationID string
	CityID         string
	Offset         int
	Limit          int
}

// ScrapYardRepository 废品站数据访问接口
type ScrapYardRepository interface {
	Create(ctx context.Context, yard *model.ScrapYard) error
	GetByID(ctx context.Context, id string) (*model.ScrapYard, error)
	List(ctx context.Context, filter *ScrapYardListFilter) ([]model.ScrapYard, int64, error)
	Update(ctx context.Context, yard *model.ScrapYard) error
	Delete(ctx context.Context, id string) error
}

type scrapYardRepo struct {
	db *gorm.DB
}

// NewScrapYardRepo 创建 ScrapYardRepository 实例
func NewScrapYardRepo(db *gorm.DB) ScrapYardRepository {
	return &scrapYardRepo{db: db}
}

func (r *scrapYardRepo) Create(ctx context.Context, yard *model.ScrapYard) error {
	return r.db.WithContext(ctx).Create(yard).Error
}

func (r *scrapYardRepo) GetByID(ctx context.Context, id string) (*model.ScrapYard, error) {
	var yard model.ScrapYard
	err := r.db.WithContext(ctx).
		Preload("City").
		Where("scrap_yard_id = ?", id).
		First(&yard).Error
	if err != nil {
		return nil, err
	}
	return &yard, nil
}

func (r *scrapYardRepo) List(ctx context.Context, filter *ScrapYardListFilter) ([]model.ScrapYard, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.ScrapYard{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where("name ILIKE ? OR address ILIKE ?", like, like)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}
	if filter.OrganizationID != "" {
		db = db.Where("organization_id = ?", filter.OrganizationID)
	}
	if filter.CityID != "" {
		db = db.Where("city_id = ?", filter.CityID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var yards []model.ScrapYard
	err := db.
		Preload("City").
		Order("name ASC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&yards).Error
	return yards, total, err
}

func (r *scrapYardRepo) Update(ctx context.Context, yard *model.ScrapYard) error {
	return r.db.WithContext(ctx).Save(yard).Error
}

func (r *scrapYardRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("scrap_yard_id = ?", id).
		Delete(&model.ScrapYard{}).Error
}
