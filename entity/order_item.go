package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID   uint   `json:"menuItemId"`
	MenuItemName string `gorm:"not null" json:"menuItemName"`

	Quantity            int     `gorm:"not null" json:"quantity"`
	BasePrice           float64 `gorm:"not null" json:"basePrice"`
	Total               float64 `gorm:"not null" json:"total"`
	SpecialInstructions string  `json:"specialInstructions"`

	AddOns []OrderItemAddOn `json:"addOns"`
}
