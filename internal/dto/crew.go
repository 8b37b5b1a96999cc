package dto

// ── 班组模块 DTO ──

// CreateCrewRequest 创建班组请求
type CreateCrewRequest struct {
	OrganizationID string `json:"organizationId" binding:"required,uuid"`
	Name           string `json:"name"           binding:"required,min=2,max=100"`
	Description    string `json:"description"    binding:"omitempty,max=255"`
}

// UpdateCrewRequest 更新班组请求
type UpdateCrewRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// CrewListRequest 班组列表查询参数
type CrewListRequest struct {
	PaginationRequest
	Search         string `form:"search"`
	IsActive       *bool  `form:"isActive"`
	OrganizationID string `form:"organizationId" binding:"omitempty,uuid"`
	SortBy         string `form:"sortBy"`
	SortOrder      string `form:"sortOrder"      binding:"omitempty,oneof=asc desc"`
}

// CrewResponse 班组信息响应
type CrewResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Description  string                `json:"description,omitempty"`
	IsActive     bool                  `json:"isActive"`
	Organization *OrganizationResponse `json:"organization,omitempty"`
	CreatedAt    string                `json:"createdAt"`
	UpdatedAt    string                `json:"updatedAt"`
}
