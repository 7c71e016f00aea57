package services

import (
	"errors"
	"fmt"
	"strings"

	"restaurant-api/models"
	"restaurant-api/repository"

	"gorm.io/gorm"
)

// ICartService defines the interface for cart business logic.
type ICartService interface {
	AddItem(userID uint, title string, quantity int, unitPrice *float64) (*models.Cart, error)
	ListItems(userID uint) ([]models.Cart, error)
	Clear(userID uint) error
}

// CartService implements ICartService.
type CartService struct {
	cartRepo repository.ICartRepository
	menuRepo repository.IMenuRepository
}

// NewCartService creates a new CartService instance.
func NewCartService(cartRepo repository.ICartRepository, menuRepo repository.IMenuRepository) ICartService {
	return &CartService{cartRepo: cartRepo, menuRepo: menuRepo}
}

// AddItem resolves a menu item by case-normalized title and persists a
// cart row with price = unit price * quantity. The unit price defaults
// to the item's current price when the caller does not supply one.
func (s *CartService) AddItem(userID uint, title string, quantity int, unitPrice *float64) (*models.Cart, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: menuitem is required", models.ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", models.ErrValidation)
	}

	item, err := s.menuRepo.FindMenuItemByTitle(title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item %q", models.ErrNotFound, title)
		}
		return nil, fmt.Errorf("failed to look up menu item: %w", err)
	}

	price := item.Price
	if unitPrice != nil {
		if *unitPrice <= 0 {
			return nil, fmt.Errorf("%w: unit_price must be positive", models.ErrValidation)
		}
		price = *unitPrice
	}

	row := &models.Cart{
		UserID:     userID,
		MenuItemID: item.ID,
		MenuItem:   *item,
		UnitPrice:  price,
		Quantity:   quantity,
		Price:      price * float64(quantity),
	}
	if err := s.cartRepo.CreateCartItem(row); err != nil {
		// A second add of the same item trips the (user, item) unique
		// index; classify it apart from unexpected persistence faults.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s is already in the cart", models.ErrConflict, item.Title)
		}
		return nil, fmt.Errorf("failed to save cart item: %w", err)
	}
	return row, nil
}

// ListItems retrieves the caller's cart rows with menu item details.
func (s *CartService) ListItems(userID uint) ([]models.Cart, error) {
	return s.cartRepo.ListByUser(userID)
}

// Clear deletes the caller's cart rows; clearing an empty cart succeeds.
func (s *CartService) Clear(userID uint) error {
	return s.cartRepo.ClearByUser(userID)
}
