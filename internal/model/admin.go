package model

import "time"

// Admin maps to the admins table.
type Admin struct {
	AdminID      string     `gorm:"column:admin_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username     string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_admins_username"     json:"username"`
	PasswordHash string     `gorm:"type:varchar(255);not null"                                     json:"-"`
	Email        string     `gorm:"type:varchar(255)"                                              json:"email"`
	Name         string     `gorm:"type:varchar(100)"                                              json:"name"`
	Role         string     `gorm:"type:varchar(20);not null;default:'Admin'"                      json:"role"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName sets the table name.
func (Admin) TableName() string { return "admins" }
