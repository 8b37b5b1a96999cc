package model

// 员工角色
const (
	RoleAdmin     = "ADMIN"
	RoleCollector = "COLLECTOR"
)

// Employee 员工表 — 对应 employees
// 回收员即 role=COLLECTOR 的员工
type Employee struct {
	EmployeeID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employeeId"`
	OrganizationID string  `gorm:"type:uuid;not null"                             json:"organizationId"`
	CityID         *string `gorm:"type:uuid"                                      json:"cityId,omitempty"`
	Name           string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Email          string  `gorm:"type:varchar(255);not null"                     json:"email"`
	Phone          string  `gorm:"type:varchar(20)"                               json:"phone,omitempty"`
	Role           string  `gorm:"type:varchar(20);not null;default:'COLLECTOR'"  json:"role"`
	PasswordHash   string  `gorm:"type:varchar(255);not null"                     json:"-"`
	IsActive       bool    `gorm:"not null;default:true"                          json:"isActive"`
	BaseModel

	// 关联
	Organization *Organization `gorm:"foreignKey:OrganizationID;references:OrganizationID" json:"organization,omitempty"`
	City         *City         `gorm:"foreignKey:CityID;references:CityID"                 json:"city,omitempty"`
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }
