package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/IlyaM70/RedMango-API/entity"
	"github.com/IlyaM70/RedMango-API/repository"
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
	Log  *zap.SugaredLogger
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, log *zap.SugaredLogger) *OrderService {
	return &OrderService{DB: db, Repo: repo, Log: log}
}

type OrderItemIn struct {
	MenuItemID uint            `json:"menuItemId" binding:"required"`
	ItemName   string          `json:"itemName"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	PickupName  string `json:"pickupName" binding:"required"`
	PickupPhone string `json:"pickupPhone" binding:"required"`
	PickupEmail string `json:"pickupEmail" binding:"required,email"`

	// Nil for guest checkout.
	UserID *uint `json:"userId"`

	OrderTotal            decimal.Decimal `json:"orderTotal"`
	TotalItems            int             `json:"totalItems"`
	StripePaymentIntentID string          `json:"stripePaymentIntentId"`
	Status                string          `json:"status"`

	Items []OrderItemIn `json:"items"`
}

type UpdateOrderReq struct {
	ID uint `json:"id"`

	PickupName  string `json:"pickupName"`
	PickupPhone string `json:"pickupPhone"`
	PickupEmail string `json:"pickupEmail"`

	StripePaymentIntentID string `json:"stripePaymentIntentId"`
	Status                string `json:"status"`
}

// Create writes the header and its line snapshots in a single transaction;
// either both land or neither does. The returned header has its lines
// stripped to keep the payload small — they are persisted regardless.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	order := entity.Order{
		UserID:                req.UserID,
		PickupName:            req.PickupName,
		PickupPhone:           req.PickupPhone,
		PickupEmail:           req.PickupEmail,
		OrderTotal:            req.OrderTotal,
		TotalItems:            req.TotalItems,
		OrderDate:             time.Now(),
		StripePaymentIntentID: req.StripePaymentIntentID,
		Status:                req.Status,
	}
	if order.Status == "" {
		order.Status = entity.StatusPending
	}
	for _, it := range req.Items {
		order.Items = append(order.Items, entity.OrderItem{
			MenuItemID: it.MenuItemID,
			ItemName:   it.ItemName,
			Price:      it.Price,
			Quantity:   it.Quantity,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		s.Log.Errorw("create order", "err", err)
		return nil, err
	}

	order.Items = nil
	return &order, nil
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	o, err := s.Repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return o, err
}

func (s *OrderService) List(userID *uint, search, status string) ([]entity.Order, error) {
	return s.Repo.List(userID, search, status)
}

// Update patches the mutable header fields. A field left empty in the request
// keeps its stored value; total and owner are not patchable at all.
func (s *OrderService) Update(id uint, req *UpdateOrderReq) error {
	if req.ID != id {
		return ErrIDMismatch
	}

	order, err := s.Repo.FindHeader(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if req.PickupName != "" {
		order.PickupName = req.PickupName
	}
	if req.PickupPhone != "" {
		order.PickupPhone = req.PickupPhone
	}
	if req.PickupEmail != "" {
		order.PickupEmail = req.PickupEmail
	}
	if req.Status != "" {
		order.Status = req.Status
	}
	if req.StripePaymentIntentID != "" {
		order.StripePaymentIntentID = req.StripePaymentIntentID
	}

	return s.Repo.SaveHeader(order)
}
