package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/IlyaM70/RedMango-API/entity"
	"github.com/IlyaM70/RedMango-API/repository"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Role{},
		&entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func seedMenuItem(t *testing.T, db *gorm.DB, name, price string) *entity.MenuItem {
	t.Helper()

	item := &entity.MenuItem{
		Name:     name,
		Category: "Entrée",
		Price:    decimal.RequireFromString(price),
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func newCartService(t *testing.T, db *gorm.DB) *CartService {
	t.Helper()
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	return NewOrderService(db, repository.NewOrderRepository(db), zap.NewNop().Sugar())
}

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepository(db), "test-secret", zap.NewNop().Sugar())
}
