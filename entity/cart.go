package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart exists only while it has items: it is created on the first positive
// quantity delta and deleted together with its last item.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	// Provider handles from the last payment-intent call, carried forward to
	// order creation by the client.
	StripePaymentIntentID string `json:"stripePaymentIntentId"`
	ClientSecret          string `json:"clientSecret"`

	// CartTotal is recomputed from live menu prices on every read, never stored.
	CartTotal decimal.Decimal `gorm:"-" json:"cartTotal"`
}
