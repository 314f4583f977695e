package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	// Quantity stays >= 1 while the row exists; a delta driving it to zero or
	// below removes the row instead.
	Quantity int `json:"quantity"`
}
