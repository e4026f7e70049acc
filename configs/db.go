package configs

import (
	"github.com/ujjwal-9/ordering-agent/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.AdminUser{},
		&entity.Restaurant{},
		&entity.MenuItem{}, &entity.AddOn{},
		&entity.Customer{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemAddOn{},
	)
}
