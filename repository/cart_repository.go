package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/IlyaM70/RedMango-API/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart with items and their live menu
// rows. A missing cart comes back as an empty, non-persisted shell so the
// frontend always has something to render.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.MenuItem").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByUser reads the cart row inside tx; callers handle ErrRecordNotFound.
func (r *CartRepository) FindByUser(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) FindItem(tx *gorm.DB, cartID, menuItemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	if err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) CountItems(tx *gorm.DB, cartID uint) (int64, error) {
	var count int64
	err := tx.Model(&entity.CartItem{}).Where("cart_id = ?", cartID).Count(&count).Error
	return count, err
}

// DeleteItem removes a line for good. Hard delete: a soft-deleted row would
// still shadow the (cart, menu item) pair on re-add.
func (r *CartRepository) DeleteItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Unscoped().Delete(item).Error
}

// DeleteCart removes the cart and any remaining items. Hard delete so the
// unique user index does not block a future cart for the same user.
func (r *CartRepository) DeleteCart(tx *gorm.DB, cartID uint) error {
	if err := tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Cart{}, cartID).Error
}

// SavePaymentRef persists the provider intent handles on the cart row.
func (r *CartRepository) SavePaymentRef(cartID uint, intentID, clientSecret string) error {
	return r.DB.Model(&entity.Cart{}).Where("id = ?", cartID).Updates(map[string]any{
		"stripe_payment_intent_id": intentID,
		"client_secret":            clientSecret,
	}).Error
}
