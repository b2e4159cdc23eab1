package model

import "time"

type AdminModel struct {
	AdminID        string    `gorm:"column:admin_id;type:uuid;primaryKey" json:"admin_id"`
	AdminUsername  string    `gorm:"column:admin_username;type:varchar(50);uniqueIndex;not null" json:"admin_username"`
	AdminPassword  string    `gorm:"column:admin_password;type:varchar(100);not null" json:"-"`
	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
}

// TableName sets the name of the table
func (AdminModel) TableName() string {
	return "admins"
}
