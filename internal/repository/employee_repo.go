package repository

import (
	"context"

	"gorm.io/gorm"

	"scrap-collection/backend/internal/model"
)

// EmployeeListFilter 员工列表过滤条件
type EmployeeListFilter struct {
	Search         string
	Role           string
	IsActive       *bool
	OrganizationID string
	CityID         string
	SortBy         string
	SortOrder      string
	Offset         int
	Limit          int
}

// EmployeeRepository 员工数据访问接口
type EmployeeRepository interface {
	Create(ctx context.Context, emp *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
	List(ctx context.Context, filter *EmployeeListFilter) ([]model.Employee, int64, error)
	Update(ctx context.Context, emp *model.Employee) error
	UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, emp *model.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Preload("Organization").Preload("City").
		Where("employee_id = ?", id).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepo) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Where("email = ?", email).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// 员工可排序列白名单
var employeeSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func (r *employeeRepo) List(ctx context.Context, filter *EmployeeListFilter) ([]model.Employee, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Employee{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
	}
	if filter.Role != "" {
		db = db.Where("role = ?", filter.Role)
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

	order := "created_at DESC"
	if col, ok := employeeSortColumns[filter.SortBy]; ok {
		if filter.SortOrder == "asc" {
			order = col + " ASC"
		} else {
			order = col + " DESC"
		}
	}

	var employees []model.Employee
	err := db.
		Preload("Organization").Preload("City").
		Order(order).
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&employees).Error
	return employees, total, err
}

func (r *employeeRepo) Update(ctx context.Context, emp *model.Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *employeeRepo) UpdateStatus(ctx context.Context, id string, isActive bool, updatedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("employee_id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  isActive,
			"updated_by": updatedBy,
		}).Error
}

func (r *employeeRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("employee_id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (r *employeeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ?", id).
		Delete(&model.Employee{}).Error
}
