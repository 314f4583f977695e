package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is written once at order creation and never mutated. ItemName and
// Price snapshot the menu item at that moment, so later catalog edits do not
// rewrite history.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	ItemName string          `json:"itemName"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Quantity int             `json:"quantity"`
}
