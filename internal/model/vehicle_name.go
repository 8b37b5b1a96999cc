package model

// VehicleName 车辆表 — 对应 vehicle_names
type VehicleName struct {
	VehicleNameID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"vehicleNameId"`
	OrganizationID string `gorm:"type:uuid;not null"                             json:"organizationId"`
	Name           string `gorm:"type:varchar(100);not null"                     json:"name"`
	PlateNumber    string `gorm:"type:varchar(32)"                               json:"plateNumber,omitempty"`
	IsActive       bool   `gorm:"not null;default:true"                          json:"isActive"`
	BaseModel

	// 关联
	Organization *Organization `gorm:"foreignKey:OrganizationID;references:OrganizationID" json:"organization,omitempty"`
}

// TableName 指定表名
func (VehicleName) TableName() string { return "vehicle_names" }
