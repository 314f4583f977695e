package configs

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/IlyaM70/RedMango-API/entity"
)

// SeedAdmin creates the first admin account when ADMIN_EMAIL/ADMIN_PASSWORD are set.
func SeedAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("LOWER(email) = LOWER(?)", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedMenuItems fills an empty catalog with a starter menu so a fresh install
// has something to sell.
func SeedMenuItems(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Spring Roll", Category: "Appetizer", Price: decimal.NewFromFloat(7.99), Description: "Crispy vegetable rolls"},
		{Name: "Pad Thai", Category: "Entrée", SpecialTag: "Chef's Special", Price: decimal.NewFromFloat(12.99), Description: "Rice noodles with tamarind sauce"},
		{Name: "Mango Sticky Rice", Category: "Dessert", SpecialTag: "Top Rated", Price: decimal.NewFromFloat(6.50), Description: "Sweet coconut rice with fresh mango"},
	}
	return db.Create(&items).Error
}
