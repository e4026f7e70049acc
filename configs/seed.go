package configs

import (
	"log"

	"github.com/ujjwal-9/ordering-agent/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env vars.
func SeedAdmin() error {
	db := DB()
	username := getEnv("ADMIN_USERNAME", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if username == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.AdminUser{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", username)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.AdminUser{
		Username: username,
		Password: string(hash),
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedRestaurant inserts the restaurant row when the table is empty.
func SeedRestaurant() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	restaurant := entity.Restaurant{
		Name:         "Tote AI Restaurant",
		Address:      "123 Main Street, Downtown, CA 94123",
		Phone:        "(555) 123-4567",
		Email:        "info@toteairestaurant.com",
		OpeningHours: "Monday-Sunday: 11:00 AM - 10:00 PM",
		IsActive:     true,
	}
	if err := db.Create(&restaurant).Error; err != nil {
		return err
	}
	log.Println("seeded restaurant:", restaurant.Name)
	return nil
}

// SeedMenu inserts a starter menu with add-ons when the menu is empty.
func SeedMenu() error {
	db := DB()

	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Classic Burger", Category: "burger", BasePrice: 8.99, Description: "Beef patty, lettuce, tomato, house sauce", IsAvailable: true},
		{Name: "Double Cheeseburger", Category: "burger", BasePrice: 11.49, Description: "Two patties, double cheddar", IsAvailable: true},
		{Name: "Margherita Pizza", Category: "pizza", BasePrice: 12.99, Description: "Tomato, mozzarella, basil", IsAvailable: true},
		{Name: "Pepperoni Pizza", Category: "pizza", BasePrice: 14.49, Description: "Pepperoni, mozzarella", IsAvailable: true},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	addOns := []entity.AddOn{
		{Name: "Small", Price: -2.00, Category: "pizza", Type: "size", IsAvailable: true},
		{Name: "Medium", Price: 0, Category: "pizza", Type: "size", IsAvailable: true},
		{Name: "Large", Price: 4.00, Category: "pizza", Type: "size", IsAvailable: true},
		{Name: "Spicy Tomato", Price: 0.75, Category: "pizza", Type: "sauce", IsAvailable: true},
		{Name: "Garlic Butter", Price: 0.75, Category: "pizza", Type: "sauce", IsAvailable: true},
		{Name: "Cheese", Price: 1.00, Category: "burger", Type: "topping", IsAvailable: true},
		{Name: "Bacon", Price: 1.50, Category: "burger", Type: "topping", IsAvailable: true},
		{Name: "Ketchup", Price: 0, Category: "burger", Type: "sauce", IsAvailable: true},
		{Name: "Mayo", Price: 0, Category: "burger", Type: "sauce", IsAvailable: true},
	}
	if err := db.Create(&addOns).Error; err != nil {
		return err
	}
	log.Println("seeded starter menu")
	return nil
}
