package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusBeingCooked    = "beingCooked"
	StatusReadyForPickup = "readyForPickup"
	StatusCompleted      = "completed"
	StatusCancelled      = "cancelled"
)

// Order is the header of a placed order. Total and owner are fixed at creation;
// only status, pickup contact fields and the payment reference change later.
type Order struct {
	gorm.Model
	// UserID is nil for guest checkout.
	UserID *uint `json:"userId"`
	User   User  `json:"-"`

	PickupName  string `json:"pickupName"`
	PickupPhone string `json:"pickupPhone"`
	PickupEmail string `json:"pickupEmail"`

	OrderTotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"orderTotal"`
	TotalItems int             `json:"totalItems"`
	OrderDate  time.Time       `json:"orderDate"`

	StripePaymentIntentID string `json:"stripePaymentIntentId"`
	Status                string `gorm:"not null;default:pending" json:"status"`

	Items []OrderItem `json:"items,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
