package repository

import (
	"fmt"

	"restaurant-api/models"

	"gorm.io/gorm"
)

// IOrderRepository defines the interface for order data operations.
type IOrderRepository interface {
	CreateFromCart(order *models.Order, cartRows int) error
	FindByID(id uint) (*models.Order, error)
	ListAll() ([]models.Order, error)
	ListByUser(userID uint) ([]models.Order, error)
	ListByDeliveryCrew(crewID uint) ([]models.Order, error)
	UpdateOrder(id uint, attrs map[string]interface{}) error
	DeleteOrder(id uint) error
}

// OrderRepository implements IOrderRepository for GORM.
type OrderRepository struct {
	DB *gorm.DB
}

// NewOrderRepository creates a new OrderRepository instance.
func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{DB: db}
}

// CreateFromCart persists the order with its item snapshots and clears
// the owner's cart in one transaction. cartRows is the number of cart
// rows the caller snapshotted; the clear must remove exactly that many
// or the transaction rolls back. Two concurrent checkouts race on the
// delete, the loser clears zero rows and gets ErrConflict instead of a
// second order.
func (r *OrderRepository) CreateFromCart(order *models.Order, cartRows int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		res := tx.Where("user_id = ?", order.UserID).Delete(&models.Cart{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(cartRows) {
			return fmt.Errorf("%w: cart changed during checkout", models.ErrConflict)
		}
		return nil
	})
}

// FindByID retrieves an order with its items.
func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("Items").First(&order, id).Error
	return &order, err
}

// ListAll retrieves every order. Manager-only view.
func (r *OrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Find(&orders).Error
	return orders, err
}

// ListByUser retrieves the orders owned by a customer.
func (r *OrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Where("user_id = ?", userID).Find(&orders).Error
	return orders, err
}

// ListByDeliveryCrew retrieves the orders assigned to a crew member.
func (r *OrderRepository) ListByDeliveryCrew(crewID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Where("delivery_crew_id = ?", crewID).Find(&orders).Error
	return orders, err
}

// UpdateOrder applies a partial update; attrs holds only the columns the
// caller actually supplied, so absent fields are never overwritten.
func (r *OrderRepository) UpdateOrder(id uint, attrs map[string]interface{}) error {
	return r.DB.Model(&models.Order{}).Where("id = ?", id).Updates(attrs).Error
}

// DeleteOrder removes an order and cascades removal of its items.
func (r *OrderRepository) DeleteOrder(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}
