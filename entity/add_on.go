package entity

import (
	"strings"

	"gorm.io/gorm"
)

// AddOnTypeOrder is the canonical presentation order of add-on types
// during the selection flow.
var AddOnTypeOrder = []string{"size", "sauce", "topping", "other"}

type AddOn struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"` // negative allowed (size discounts)
	Category    string  `gorm:"not null;index" json:"category"`
	Type        string  `gorm:"not null;default:other" json:"type"` // size, sauce, topping, other
	IsAvailable bool    `gorm:"not null;default:true" json:"isAvailable"`
}

// NormalizeType maps a missing or unknown add-on type to "other".
// Matching is case-insensitive; admins and the LLM both send mixed case.
func NormalizeType(t string) string {
	switch strings.ToLower(t) {
	case "size":
		return "size"
	case "sauce":
		return "sauce"
	case "topping":
		return "topping"
	default:
		return "other"
	}
}
