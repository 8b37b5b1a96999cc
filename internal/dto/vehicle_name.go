package dto

// ── 车辆模块 DTO ──

// CreateVehicleNameRequest 创建车辆请求
type CreateVehicleNameRequest struct {
	OrganizationID string `json:"organizationId" binding:"required,uuid"`
	Name           string `json:"name"           binding:"required,min=2,max=100"`
	PlateNumber    string `json:"plateNumber"    binding:"omitempty,max=32"`
}

// UpdateVehicleNameRequest 更新车辆请求
type UpdateVehicleNameRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=100"`
	PlateNumber *string `json:"plateNumber" binding:"omitempty,max=32"`
	IsActive    *bool   `json:"isActive"`
}

// VehicleNameListRequest 车辆列表查询参数
type VehicleNameListRequest struct {
	PaginationRequest
	Search         string `form:"search"`
	IsActive       *bool  `form:"isActive"`
	OrganizationID string `form:"organizationId" binding:"omitempty,uuid"`
}

// VehicleNameResponse 车辆信息响应
type VehicleNameResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PlateNumber string `json:"plateNumber,omitempty"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}
