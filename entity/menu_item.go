package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	SpecialTag  string          `json:"specialTag"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	// Image is the public path of the uploaded picture, e.g. /uploads/<uuid>.jpg
	Image string `json:"image"`
}
