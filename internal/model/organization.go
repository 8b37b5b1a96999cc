package model

import "time"

// Organization 组织表 — 对应 organizations
type Organization struct {
	OrganizationID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"organizationId"`
	Name           string    `gorm:"type:varchar(100);not null"                     json:"name"`
	IsActive       bool      `gorm:"not null;default:true"                          json:"isActive"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"createdAt"`
	UpdatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updatedAt"`
}

// TableName 指定表名
func (Organization) TableName() string { return "organizations" }
