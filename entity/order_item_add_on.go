package entity

import (
	"gorm.io/gorm"
)

// OrderItemAddOn is a priced snapshot of an add-on at order time.
type OrderItemAddOn struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	AddOnID   uint    `json:"addOnId"`
	AddOnName string  `gorm:"not null" json:"addOnName"`
	Price     float64 `gorm:"not null" json:"price"`
}
