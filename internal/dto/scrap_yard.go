package dto

// ── 废品站模块 DTO ──

// CreateScrapYardRequest 创建废品站请求
type CreateScrapYardRequest struct {
	OrganizationID string  `json:"organizationId" binding:"required,uuid"`
	CityID         *string `json:"cityId"         binding:"omitempty,uuid"`
	Name           string  `json:"name"           binding:"required,min=2,max=100"`
	Address        string  `json:"address"        binding:"omitempty,max=255"`
}

// UpdateScrapYardRequest 更新废品站请求
type UpdateScrapYardRequest struct {
	CityID   *string `json:"cityId"   binding:"omitempty,uuid"`
	Name     *string `json:"name"     binding:"omitempty,min=2,max=100"`
	Address  *string `json:"address"  binding:"omitempty,max=255"`
	IsActive *bool   `json:"isActive"`
}

// ScrapYardListRequest 废品站列表查询参数
// status=active 仅返回启用站点（与管理端下拉约定一致）
type ScrapYardListRequest struct {
	PaginationRequest
	Search         string `form:"search"`
	Status         string `form:"status"         binding:"omitempty,oneof=active inactive all"`
	OrganizationID string `form:"organizationId" binding:"omitempty,uuid"`
	CityID         string `form:"cityId"         binding:"omitempty,uuid"`
}

// ScrapYardResponse 废品站信息响应
type ScrapYardResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Address   string        `json:"address,omitempty"`
	IsActive  bool          `json:"isActive"`
	City      *CityResponse `json:"city,omitempty"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}
