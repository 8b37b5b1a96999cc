package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Employee    EmployeeRepository
	Crew        CrewRepository
	VehicleName VehicleNameRepository
	ScrapYard   ScrapYardRepository
	Assignment  AssignmentRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Employee:    NewEmployeeRepo(db),
		Crew:        NewCrewRepo(db),
		VehicleName: NewVehicleNameRepo(db),
		ScrapYard:   NewScrapYardRepo(db),
		Assignment:  NewAssignmentRepo(db),
	}
}
