package entity

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name          string     `gorm:"not null" json:"name"`
	Phone         string     `gorm:"not null;uniqueIndex" json:"phone"` // normalized to 10 digits
	Email         string     `json:"email"`
	TotalOrders   int        `gorm:"not null;default:0" json:"totalOrders"`
	LastOrderDate *time.Time `json:"lastOrderDate"`

	Orders []Order `json:"-"`
}
