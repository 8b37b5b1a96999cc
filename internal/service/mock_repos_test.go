package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"scrap-collection/backend/internal/model"
	"scrap-collection/backend/internal/repository"
	pkgerrors "scrap-collection/backend/pkg/errors"
)

// newTestRepository 组装全 Mock 的 Repository 聚合
func newTestRepository() *repository.Repository {
	return &repository.Repository{
		Employee:    newMockEmployeeRepo(),
		Crew:        newMockCrewRepo(),
		VehicleName: newMockVehicleNameRepo(),
		ScrapYard:   newMockScrapYardRepo(),
		Assignment:  newMockAssignmentRepo(),
	}
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[string]*model.Employee
	idCounter int
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (m *mockEmployeeRepo) Create(_ context.Context, emp *model.Employee) error {
	if emp.EmployeeID == "" {
		m.idCounter++
		emp.EmployeeID = fmt.Sprintf("emp-%d", m.idCounter)
	}
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = time.Now()
	m.employees[emp.EmployeeID] = emp
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context, filter *repository.EmployeeListFilter) ([]model.Employee, int64, error) {
	var result []model.Employee
	for _, e := range m.employees {
		if filter.Search != "" && !strings.Contains(e.Name, filter.Search) {
			continue
		}
		if filter.Role != "" && e.Role != filter.Role {
			continue
		}
		if filter.IsActive != nil && e.IsActive != *filter.IsActive {
			continue
		}
		if filter.OrganizationID != "" && e.OrganizationID != filter.OrganizationID {
			continue
		}
		result = append(result, *e)
	}
	return result, int64(len(result)), nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, emp *model.Employee) error {
	if _, ok := m.employees[emp.EmployeeID]; !ok {
		return gorm.ErrRecordNotFound
	}
	emp.UpdatedAt = time.Now()
	m.employees[emp.EmployeeID] = emp
	return nil
}

func (m *mockEmployeeRepo) UpdateStatus(_ context.Context, id string, isActive bool, _ string) error {
	e, ok := m.employees[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.IsActive = isActive
	e.UpdatedAt = time.Now()
	return nil
}

func (m *mockEmployeeRepo) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	e, ok := m.employees[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.PasswordHash = passwordHash
	return nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.employees[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.employees, id)
	return nil
}

// ── Mock CrewRepository ──

type mockCrewRepo struct {
	crews     map[string]*model.Crew
	idCounter int
}

func newMockCrewRepo() *mockCrewRepo {
	return &mockCrewRepo{crews: make(map[string]*model.Crew)}
}

func (m *mockCrewRepo) Create(_ context.Context, crew *model.Crew) error {
	if crew.CrewID == "" {
		m.idCounter++
		crew.CrewID = fmt.Sprintf("crew-%d", m.idCounter)
	}
	crew.CreatedAt = time.Now()
	crew.UpdatedAt = time.Now()
	m.crews[crew.CrewID] = crew
	return nil
}

func (m *mockCrewRepo) GetByID(_ context.Context, id string) (*model.Crew, error) {
	if c, ok := m.crews[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCrewRepo) List(_ context.Context, filter *repository.CrewListFilter) ([]model.Crew, int64, error) {
	var result []model.Crew
	for _, c := range m.crews {
		if filter.Search != "" && !strings.Contains(c.Name, filter.Search) {
			continue
		}
		if filter.IsActive != nil && c.IsActive != *filter.IsActive {
			continue
		}
		if filter.OrganizationID != "" && c.OrganizationID != filter.OrganizationID {
			continue
		}
		result = append(result, *c)
	}
	return result, int64(len(result)), nil
}

func (m *mockCrewRepo) Update(_ context.Context, crew *model.Crew) error {
	if _, ok := m.crews[crew.CrewID]; !ok {
		return gorm.ErrRecordNotFound
	}
	crew.UpdatedAt = time.Now()
	m.crews[crew.CrewID] = crew
	return nil
}

func (m *mockCrewRepo) UpdateStatus(_ context.Context, id string, isActive bool, _ string) error {
	c, ok := m.crews[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.IsActive = isActive
	c.UpdatedAt = time.Now()
	return nil
}

func (m *mockCrewRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.crews[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.crews, id)
	return nil
}

// ── Mock VehicleNameRepository ──

type mockVehicleNameRepo struct {
	vehicles  map[string]*model.VehicleName
	idCounter int
}

func newMockVehicleNameRepo() *mockVehicleNameRepo {
	return &mockVehicleNameRepo{vehicles: make(map[string]*model.VehicleName)}
}

func (m *mockVehicleNameRepo) Create(_ context.Context, v *model.VehicleName) error {
	if v.VehicleNameID == "" {
		m.idCounter++
		v.VehicleNameID = fmt.Sprintf("veh-%d", m.idCounter)
	}
	v.CreatedAt = time.Now()
	v.UpdatedAt = time.Now()
	m.vehicles[v.VehicleNameID] = v
	return nil
}

func (m *mockVehicleNameRepo) GetByID(_ context.Context, id string) (*model.VehicleName, error) {
	if v, ok := m.vehicles[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVehicleNameRepo) List(_ context.Context, filter *repository.VehicleNameListFilter) ([]model.VehicleName, int64, error) {
	var result []model.VehicleName
	for _, v := range m.vehicles {
		if filter.Search != "" && !strings.Contains(v.Name, filter.Search) {
			continue
		}
		if filter.IsActive != nil && v.IsActive != *filter.IsActive {
			continue
		}
		if filter.OrganizationID != "" && v.OrganizationID != filter.OrganizationID {
			continue
		}
		result = append(result, *v)
	}
	return result, int64(len(result)), nil
}

func (m *mockVehicleNameRepo) Update(_ context.Context, v *model.VehicleName) error {
	if _, ok := m.vehicles[v.VehicleNameID]; !ok {
		return gorm.ErrRecordNotFound
	}
	v.UpdatedAt = time.Now()
	m.vehicles[v.VehicleNameID] = v
	return nil
}

func (m *mockVehicleNameRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.vehicles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.vehicles, id)
	return nil
}

// ── Mock ScrapYardRepository ──

type mockScrapYardRepo struct {
	yards     map[string]*model.ScrapYard
	idCounter int
}

func newMockScrapYardRepo() *mockScrapYardRepo {
	return &mockScrapYardRepo{yards: make(map[string]*model.ScrapYard)}
}

func (m *mockScrapYardRepo) Create(_ context.Context, yard *model.ScrapYard) error {
	if yard.ScrapYardID == "" {
		m.idCounter++
		yard.ScrapYardID = fmt.Sprintf("yard-%d", m.idCounter)
	}
	yard.CreatedAt = time.Now()
	yard.UpdatedAt = time.Now()
	m.yards[yard.ScrapYardID] = yard
	return nil
}

func (m *mockScrapYardRepo) GetByID(_ context.Context, id string) (*model.ScrapYard, error) {
	if y, ok := m.yards[id]; ok {
		return y, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScrapYardRepo) List(_ context.Context, filter *repository.ScrapYardListFilter) ([]model.ScrapYard, int64, error) {
	var result []model.ScrapYard
	for _, y := range m.yards {
		if filter.Search != "" && !strings.Contains(y.Name, filter.Search) {
			continue
		}
		if filter.IsActive != nil && y.IsActive != *filter.IsActive {
			continue
		}
		if filter.OrganizationID != "" && y.OrganizationID != filter.OrganizationID {
			continue
		}
		if filter.CityID != "" && (y.CityID == nil || *y.CityID != filter.CityID) {
			continue
		}
		result = append(result, *y)
	}
	return result, int64(len(result)), nil
}

func (m *mockScrapYardRepo) Update(_ context.Context, yard *model.ScrapYard) error {
	if _, ok := m.yards[yard.ScrapYardID]; !ok {
		return gorm.ErrRecordNotFound
	}
	yard.UpdatedAt = time.Now()
	m.yards[yard.ScrapYardID] = yard
	return nil
}

func (m *mockScrapYardRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.yards[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.yards, id)
	return nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments map[string]*model.CollectorAssignment
	idCounter   int
	// 各写操作调用计数，用于验证无操作路径不落库
	updateResourcesCalls int
	updateStatusCalls    int
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{assignments: make(map[string]*model.CollectorAssignment)}
}

func (m *mockAssignmentRepo) Create(_ context.Context, a *model.CollectorAssignment) error {
	if a.AssignmentID == "" {
		m.idCounter++
		a.AssignmentID = fmt.Sprintf("assign-%d", m.idCounter)
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	m.assignments[a.AssignmentID] = a
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id string) (*model.CollectorAssignment, error) {
	if a, ok := m.assignments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) List(_ context.Context, filter *repository.AssignmentListFilter) ([]model.CollectorAssignment, int64, error) {
	var result []model.CollectorAssignment
	for _, a := range m.assignments {
		if filter.IsActive != nil && a.IsActive != *filter.IsActive {
			continue
		}
		if filter.OrganizationID != "" && a.OrganizationID != filter.OrganizationID {
			continue
		}
		if filter.CollectorID != "" && (a.CollectorID == nil || *a.CollectorID != filter.CollectorID) {
			continue
		}
		if filter.VehicleNameID != "" && (a.VehicleNameID == nil || *a.VehicleNameID != filter.VehicleNameID) {
			continue
		}
		result = append(result, *a)
	}
	return result, int64(len(result)), nil
}

func (m *mockAssignmentRepo) UpdateResources(_ context.Context, id string, vehicleNameID, scrapYardID *string, isActive *bool, _ string) error {
	a, ok := m.assignments[id]
	if !ok {
		return pkgerrors.ErrStaleRecord
	}
	m.updateResourcesCalls++
	a.VehicleNameID = vehicleNameID
	a.ScrapYardID = scrapYardID
	if isActive != nil {
		a.IsActive = *isActive
	}
	a.UpdatedAt = time.Now()
	return nil
}

func (m *mockAssignmentRepo) UpdateStatus(_ context.Context, id string, isActive bool, _ string) error {
	a, ok := m.assignments[id]
	if !ok {
		return pkgerrors.ErrStaleRecord
	}
	m.updateStatusCalls++
	a.IsActive = isActive
	a.UpdatedAt = time.Now()
	return nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.assignments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.assignments, id)
	return nil
}

// DeactivateStale Mock 实现不联查主体表，简化为停用全部活跃分配
func (m *mockAssignmentRepo) DeactivateStale(_ context.Context) (int64, error) {
	var count int64
	for _, a := range m.assignments {
		if a.IsActive {
			a.IsActive = false
			count++
		}
	}
	return count, nil
}
