package entity

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Role is the closed vocabulary of assignable roles. The two fixed rows are
// created lazily on the first registration.
type Role struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
