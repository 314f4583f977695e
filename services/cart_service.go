package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/IlyaM70/RedMango-API/entity"
	"github.com/IlyaM70/RedMango-API/repository"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

// Get returns the user's cart with its total recomputed from current menu
// prices. userID 0 (no userId supplied) or a missing cart yields an empty
// shell, not an error.
func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	if userID == 0 {
		return &entity.Cart{}, nil
	}
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	cart.CartTotal = CartTotal(cart)
	return cart, nil
}

// CartTotal sums quantity x live catalog price over the cart's lines. Totals
// are never read from storage.
func CartTotal(cart *entity.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart.Items {
		total = total.Add(item.MenuItem.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// ApplyDelta adjusts the quantity of one menu item in the user's cart by a
// signed amount. The contract is relative, never absolute:
//   - no cart and delta > 0: create cart with one line
//   - no cart and delta <= 0: no-op
//   - cart without the line: create it when delta > 0, otherwise no-op
//   - cart with the line: delta == 0 or a resulting quantity <= 0 removes the
//     line (and the cart, if it was the last line); otherwise the quantity is
//     updated in place
//
// Everything runs in one transaction so concurrent deltas on the same cart
// serialize instead of losing updates.
func (s *CartService) ApplyDelta(userID, menuItemID uint, delta int) error {
	if _, err := s.MenuRepo.GetByID(menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.FindByUser(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if delta <= 0 {
				return nil // nothing to remove
			}
			newCart := entity.Cart{UserID: userID}
			if err := tx.Create(&newCart).Error; err != nil {
				return err
			}
			return tx.Create(&entity.CartItem{
				CartID:     newCart.ID,
				MenuItemID: menuItemID,
				Quantity:   delta,
			}).Error
		}
		if err != nil {
			return err
		}

		line, err := s.CartRepo.FindItem(tx, cart.ID, menuItemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if delta <= 0 {
				return nil // cannot reduce a line that does not exist
			}
			return tx.Create(&entity.CartItem{
				CartID:     cart.ID,
				MenuItemID: menuItemID,
				Quantity:   delta,
			}).Error
		}
		if err != nil {
			return err
		}

		newQuantity := line.Quantity + delta
		if delta == 0 || newQuantity <= 0 {
			// Zero delta is the explicit "remove regardless of quantity" signal.
			if err := s.CartRepo.DeleteItem(tx, line); err != nil {
				return err
			}
			remaining, err := s.CartRepo.CountItems(tx, cart.ID)
			if err != nil {
				return err
			}
			if remaining == 0 {
				return s.CartRepo.DeleteCart(tx, cart.ID)
			}
			return nil
		}

		line.Quantity = newQuantity
		return tx.Save(line).Error
	})
}
