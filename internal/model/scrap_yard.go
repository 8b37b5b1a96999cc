package model

// ScrapYard 废品站表 — 对应 scrap_yards
type ScrapYard struct {
	ScrapYardID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"scrapYardId"`
	OrganizationID string  `gorm:"type:uuid;not null"                             json:"organizationId"`
	CityID         *string `gorm:"type:uuid"                                      json:"cityId,omitempty"`
	Name           string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Address        string  `gorm:"type:varchar(255)"                              json:"address,omitempty"`
	IsActive       bool    `gorm:"not null;default:true"                          json:"isActive"`
	BaseModel

	// 关联
	Organization *Organization `gorm:"foreignKey:OrganizationID;references:OrganizationID" json:"organization,omitempty"`
	City         *City         `gorm:"foreignKey:CityID;references:CityID"                 json:"city,omitempty"`
}

// TableName 指定表名
func (ScrapYard) TableName() string { return "scrap_yards" }
