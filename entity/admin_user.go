package entity

import (
	"gorm.io/gorm"
)

// AdminUser can manage the menu and orders through the REST API.
type AdminUser struct {
	gorm.Model
	Username string `gorm:"not null;uniqueIndex" json:"username"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash
	Role     string `gorm:"not null;default:admin" json:"role"`
}
