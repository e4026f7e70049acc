package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	CustomerID uint     `json:"customerId"`
	Customer   Customer `json:"-"` // preload only when detail needs it

	// Snapshot of the customer at order time; the customer row may change later.
	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerPhone string `gorm:"not null" json:"customerPhone"`

	TotalAmount          float64 `gorm:"not null" json:"totalAmount"`
	Status               string  `gorm:"not null;default:pending" json:"status"`
	EstimatedPrepMinutes int     `json:"estimatedPrepMinutes"`
	SpecialInstructions  string  `json:"specialInstructions"`

	Items []OrderItem `json:"items"`
}
