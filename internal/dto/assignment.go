package dto

// ── 资源分配模块 DTO ──

// CreateAssignmentRequest 创建分配请求
// collectorId / crewId 二选一；vehicleNameId / scrapYardId 未设置时整个键省略
type CreateAssignmentRequest struct {
	OrganizationID string  `json:"organizationId" binding:"required,uuid"`
	CollectorID    *string `json:"collectorId"    binding:"omitempty,uuid"`
	CrewID         *string `json:"crewId"         binding:"omitempty,uuid"`
	VehicleNameID  *string `json:"vehicleNameId"  binding:"omitempty,uuid"`
	ScrapYardID    *string `json:"scrapYardId"    binding:"omitempty,uuid"`
	IsActive       *bool   `json:"isActive"`
}

// UpdateAssignmentRequest 更新分配请求
// 主体创建后不可变，更新仅触及资源绑定与状态；
// vehicleNameId / scrapYardId 为三态：缺席=保持，null=清除，值=改绑
type UpdateAssignmentRequest struct {
	VehicleNameID NullString `json:"vehicleNameId"`
	ScrapYardID   NullString `json:"scrapYardId"`
	IsActive      *bool      `json:"isActive"`
}

// SubmitAssignmentRequest 分配表单提交请求
//
// 管理端表单的原始会话状态：主体下拉、资源下拉均可能为 "" 或 "none" 哨兵，
// 行内"分配车辆"入口会通过 context* 字段预先锁定主体，
// assignmentId 仅在编辑已有分配时出现。
type SubmitAssignmentRequest struct {
	OrganizationID     string  `json:"organizationId"     binding:"required,uuid"`
	SubjectType        string  `json:"subjectType"        binding:"required,oneof=collector crew"`
	AssignmentID       *string `json:"assignmentId"       binding:"omitempty,uuid"`
	CollectorID        string  `json:"collectorId"`
	CrewID             string  `json:"crewId"`
	VehicleNameID      string  `json:"vehicleNameId"`
	ScrapYardID        string  `json:"scrapYardId"`
	ContextCollectorID string  `json:"contextCollectorId"`
	ContextCrewID      string  `json:"contextCrewId"`
}

// AssignmentListRequest 分配列表查询参数
// 不可变的查询值对象：每次请求重新绑定，避免过滤状态组合不一致
type AssignmentListRequest struct {
	PaginationRequest
	Search         string `form:"search"`
	IsActive       *bool  `form:"isActive"`
	OrganizationID string `form:"organizationId" binding:"omitempty,uuid"`
	CollectorID    string `form:"collectorId"    binding:"omitempty,uuid"`
	VehicleNameID  string `form:"vehicleNameId"  binding:"omitempty,uuid"`
	CityID         string `form:"cityId"         binding:"omitempty,uuid"`
	SortBy         string `form:"sortBy"`
	SortOrder      string `form:"sortOrder"      binding:"omitempty,oneof=asc desc"`
}

// 可排序列白名单：外部字段名 → 数据库列
var assignmentSortColumns = map[string]string{
	"createdAt": "collector_assignments.created_at",
	"updatedAt": "collector_assignments.updated_at",
	"isActive":  "collector_assignments.is_active",
}

// OrderClause 生成排序子句，未知字段回退为创建时间倒序
func (r *AssignmentListRequest) OrderClause() string {
	col, ok := assignmentSortColumns[r.SortBy]
	if !ok {
		return "collector_assignments.created_at DESC"
	}
	if r.SortOrder == "asc" {
		return col + " ASC"
	}
	return col + " DESC"
}

// AssignmentResponse 分配信息响应
type AssignmentResponse struct {
	ID          string               `json:"id"`
	Collector   *EmployeeResponse    `json:"collector,omitempty"`
	Crew        *CrewResponse        `json:"crew,omitempty"`
	VehicleName *VehicleNameResponse `json:"vehicleName,omitempty"`
	ScrapYard   *ScrapYardResponse   `json:"scrapYard,omitempty"`
	IsActive    bool                 `json:"isActive"`
	CreatedAt   string               `json:"createdAt"`
	UpdatedAt   string               `json:"updatedAt"`
}
