package model

import "time"

// City 城市表 — 对应 cities
type City struct {
	CityID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"cityId"`
	Name      string    `gorm:"type:varchar(100);not null"                     json:"name"`
	State     string    `gorm:"type:varchar(100)"                              json:"state,omitempty"`
	IsActive  bool      `gorm:"not null;default:true"                          json:"isActive"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updatedAt"`
}

// TableName 指定表名
func (City) TableName() string { return "cities" }
