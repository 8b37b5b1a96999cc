package dto

// ── 通用请求 ──

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page  int `form:"page"  binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetLimit 获取每页数量（含默认值）
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return 10
	}
	return p.Limit
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetLimit()
}

// UpdateStatusRequest 状态切换请求（回收员 / 班组 / 分配通用）
type UpdateStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// ── 通用响应片段 ──

// OrganizationResponse 组织简要信息
type OrganizationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CityResponse 城市简要信息
type CityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
