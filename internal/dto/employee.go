package dto

// ── 员工（回收员）模块 DTO ──

// CreateEmployeeRequest 创建员工请求
type CreateEmployeeRequest struct {
	OrganizationID string  `json:"organizationId" binding:"required,uuid"`
	CityID         *string `json:"cityId"         binding:"omitempty,uuid"`
	Name           string  `json:"name"           binding:"required,min=2,max=100"`
	Email          string  `json:"email"          binding:"required,email"`
	Phone          string  `json:"phone"          binding:"omitempty,e164"`
	Role           string  `json:"role"           binding:"omitempty,oneof=ADMIN COLLECTOR"`
	Password       string  `json:"password"       binding:"required,min=8"`
}

// UpdateEmployeeRequest 更新员工请求
type UpdateEmployeeRequest struct {
	CityID *string `json:"cityId" binding:"omitempty,uuid"`
	Name   *string `json:"name"   binding:"omitempty,min=2,max=100"`
	Email  *string `json:"email"  binding:"omitempty,email"`
	Phone  *string `json:"phone"  binding:"omitempty,e164"`
}

// EmployeeListRequest 员工列表查询参数
type EmployeeListRequest struct {
	PaginationRequest
	Search         string `form:"search"`
	Role           string `form:"role"           binding:"omitempty,oneof=ADMIN COLLECTOR"`
	IsActive       *bool  `form:"isActive"`
	OrganizationID string `form:"organizationId" binding:"omitempty,uuid"`
	CityID         string `form:"cityId"         binding:"omitempty,uuid"`
	SortBy         string `form:"sortBy"`
	SortOrder      string `form:"sortOrder"      binding:"omitempty,oneof=asc desc"`
}

// EmployeeResponse 员工信息响应（脱敏）
type EmployeeResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Email        string                `json:"email"`
	Phone        string                `json:"phone,omitempty"`
	Role         string                `json:"role"`
	IsActive     bool                  `json:"isActive"`
	Organization *OrganizationResponse `json:"organization,omitempty"`
	City         *CityResponse         `json:"city,omitempty"`
	CreatedAt    string                `json:"createdAt"`
	UpdatedAt    string                `json:"updatedAt"`
}
