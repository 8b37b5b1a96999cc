package model

// CollectorAssignment 资源分配表 — 对应 collector_assignments
//
// 主体不变量：CollectorID 与 CrewID 二选一（数据库 CHECK 约束兜底），
// 主体创建后不可变更；VehicleNameID / ScrapYardID 为相互独立的可选绑定。
type CollectorAssignment struct {
	AssignmentID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignmentId"`
	OrganizationID string  `gorm:"type:uuid;not null"                             json:"organizationId"`
	CollectorID    *string `gorm:"type:uuid"                                      json:"collectorId"`
	CrewID         *string `gorm:"type:uuid"                                      json:"crewId"`
	VehicleNameID  *string `gorm:"type:uuid"                                      json:"vehicleNameId"`
	ScrapYardID    *string `gorm:"type:uuid"                                      json:"scrapYardId"`
	IsActive       bool    `gorm:"not null;default:true"                          json:"isActive"`
	BaseModel

	// 关联
	Collector   *Employee    `gorm:"foreignKey:CollectorID;references:EmployeeID"       json:"collector,omitempty"`
	Crew        *Crew        `gorm:"foreignKey:CrewID;references:CrewID"                json:"crew,omitempty"`
	VehicleName *VehicleName `gorm:"foreignKey:VehicleNameID;references:VehicleNameID"  json:"vehicleName,omitempty"`
	ScrapYard   *ScrapYard   `gorm:"foreignKey:ScrapYardID;references:ScrapYardID"      json:"scrapYard,omitempty"`
}

// TableName 指定表名
func (CollectorAssignment) TableName() string { return "collector_assignments" }

// SubjectKind 返回分配主体类型："collector" 或 "crew"；均未设置时返回空串
func (a *CollectorAssignment) SubjectKind() string {
	switch {
	case a.CollectorID != nil && *a.CollectorID != "":
		return "collector"
	case a.CrewID != nil && *a.CrewID != "":
		return "crew"
	default:
		return ""
	}
}
