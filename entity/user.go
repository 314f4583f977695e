package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	// Email doubles as the login username; matching is case-insensitive.
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	Orders []Order `json:"-"`
}
