package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Category    string  `gorm:"not null;index" json:"category"` // "burger", "pizza", ...
	BasePrice   float64 `gorm:"not null" json:"basePrice"`
	Description string  `json:"description"`
	IsAvailable bool    `gorm:"not null;default:true" json:"isAvailable"`
}
