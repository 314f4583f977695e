package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/IlyaM70/RedMango-API/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").Preload("Items.MenuItem").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindHeader(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// List applies the optional filters conjunctively; empty values are no-ops.
// Newest orders come first.
func (r *OrderRepository) List(userID *uint, search, status string) ([]entity.Order, error) {
	q := r.DB.Model(&entity.Order{}).
		Preload("Items").
		Preload("Items.MenuItem").
		Order("id DESC")

	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(pickup_phone) LIKE ? OR LOWER(pickup_email) LIKE ? OR LOWER(pickup_name) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if status != "" {
		q = q.Where("LOWER(status) = LOWER(?)", status)
	}

	var orders []entity.Order
	err := q.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) SaveHeader(o *entity.Order) error {
	return r.DB.Save(o).Error
}
