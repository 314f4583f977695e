package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/IlyaM70/RedMango-API/entity"
)

func ConnectDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}

func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{}, &entity.Role{},
		&entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
