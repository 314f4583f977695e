package repository

import (
	"gorm.io/gorm"

	"github.com/IlyaM70/RedMango-API/entity"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

// FindByEmail matches the login name case-insensitively.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("LOWER(email) = LOWER(?)", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("LOWER(email) = LOWER(?)", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

// EnsureRoles creates the fixed role rows on first use.
func (r *UserRepository) EnsureRoles() error {
	var count int64
	if err := r.DB.Model(&entity.Role{}).Where("name = ?", entity.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, name := range []string{entity.RoleAdmin, entity.RoleCustomer} {
		if err := r.DB.FirstOrCreate(&entity.Role{}, entity.Role{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
