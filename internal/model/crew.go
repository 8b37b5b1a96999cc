package model

// Crew 班组表 — 对应 crews
type Crew struct {
	CrewID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"crewId"`
	OrganizationID string `gorm:"type:uuid;not null"                             json:"organizationId"`
	Name           string `gorm:"type:varchar(100);not null"                     json:"name"`
	Description    string `gorm:"type:varchar(255)"                              json:"description,omitempty"`
	IsActive       bool   `gorm:"not null;default:true"                          json:"isActive"`
	BaseModel

	// 关联
	Organization *Organization `gorm:"foreignKey:OrganizationID;references:OrganizationID" json:"organization,omitempty"`
}

// TableName 指定表名
func (Crew) TableName() string { return "crews" }
