package repository

import (
	"restaurant-api/models"

	"gorm.io/gorm"
)

// ICartRepository defines the interface for cart data operations.
type ICartRepository interface {
	CreateCartItem(item *models.Cart) error
	ListByUser(userID uint) ([]models.Cart, error)
	ClearByUser(userID uint) error
}

// CartRepository implements ICartRepository for GORM.
type CartRepository struct {
	DB *gorm.DB
}

// NewCartRepository creates a new CartRepository instance.
func NewCartRepository(db *gorm.DB) ICartRepository {
	return &CartRepository{DB: db}
}

// CreateCartItem persists a new cart row. A duplicate (user, menu item)
// pair violates the unique index and surfaces as gorm.ErrDuplicatedKey.
func (r *CartRepository) CreateCartItem(item *models.Cart) error {
	return r.DB.Create(item).Error
}

// ListByUser retrieves the caller's cart rows with menu item and category.
func (r *CartRepository) ListByUser(userID uint) ([]models.Cart, error) {
	var items []models.Cart
	err := r.DB.Preload("MenuItem.Category").Preload("MenuItem").
		Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

// ClearByUser deletes all of the caller's cart rows. Clearing an empty
// cart is a no-op, not an error.
func (r *CartRepository) ClearByUser(userID uint) error {
	return r.DB.Where("user_id = ?", userID).Delete(&models.Cart{}).Error
}
