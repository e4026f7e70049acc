package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	Address      string `gorm:"not null" json:"address"`
	Phone        string `gorm:"not null" json:"phone"`
	Email        string `json:"email"`
	OpeningHours string `json:"openingHours"`
	IsActive     bool   `gorm:"not null;default:true" json:"isActive"`
}
