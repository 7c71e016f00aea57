package services

import (
	"errors"
	"fmt"
	"strings"

	"restaurant-api/models"
	"restaurant-api/repository"

	"gorm.io/gorm"
)

// orderableFields whitelists the columns the ordering query parameter
// may reference, with or without a leading "-".
var orderableFields = map[string]bool{
	"id":          true,
	"title":       true,
	"price":       true,
	"featured":    true,
	"category_id": true,
}

// MenuItemInput carries the fields for creating a menu item.
type MenuItemInput struct {
	Title      string   `json:"title"`
	Price      *float64 `json:"price"`
	CategoryID *uint    `json:"category_id"`
}

// MenuItemUpdate carries a partial update; nil fields are left unchanged.
type MenuItemUpdate struct {
	Title      *string  `json:"title"`
	Price      *float64 `json:"price"`
	CategoryID *uint    `json:"category_id"`
	Featured   *bool    `json:"featured"`
}

// IMenuService defines the interface for menu catalog business logic.
type IMenuService interface {
	ListMenuItems(filter repository.MenuItemFilter) ([]models.MenuItem, error)
	GetMenuItem(id uint) (*models.MenuItem, error)
	CreateMenuItem(input MenuItemInput) (*models.MenuItem, error)
	UpdateMenuItem(id uint, update MenuItemUpdate) (*models.MenuItem, error)
	DeleteMenuItem(id uint) error
	ToggleFeatured(title string) (*models.MenuItem, error)
	ListFeatured() ([]models.MenuItem, error)
	ListCategories() ([]models.Category, error)
	CreateCategory(title, slug string) (*models.Category, error)
}

// MenuService implements IMenuService.
type MenuService struct {
	menuRepo repository.IMenuRepository
}

// NewMenuService creates a new MenuService instance.
func NewMenuService(repo repository.IMenuRepository) IMenuService {
	return &MenuService{menuRepo: repo}
}

// ListMenuItems validates the ordering fields and delegates to the
// repository. A page past the end returns an empty list.
func (s *MenuService) ListMenuItems(filter repository.MenuItemFilter) ([]models.MenuItem, error) {
	for _, field := range filter.Ordering {
		if !orderableFields[strings.TrimPrefix(field, "-")] {
			return nil, fmt.Errorf("%w: cannot order by %q", models.ErrValidation, field)
		}
	}
	items, err := s.menuRepo.ListMenuItems(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

// GetMenuItem retrieves one menu item.
func (s *MenuService) GetMenuItem(id uint) (*models.MenuItem, error) {
	item, err := s.menuRepo.FindMenuItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item %d", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}
	return item, nil
}

// CreateMenuItem validates and persists a new menu item.
func (s *MenuService) CreateMenuItem(input MenuItemInput) (*models.MenuItem, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", models.ErrValidation)
	}
	if input.Price == nil {
		return nil, fmt.Errorf("%w: price is required", models.ErrValidation)
	}
	if *input.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", models.ErrValidation)
	}
	if input.CategoryID == nil {
		return nil, fmt.Errorf("%w: category_id is required", models.ErrValidation)
	}
	if _, err := s.menuRepo.FindCategoryByID(*input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d does not exist", models.ErrValidation, *input.CategoryID)
		}
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	item := &models.MenuItem{
		Title:      input.Title,
		Price:      *input.Price,
		CategoryID: *input.CategoryID,
	}
	if err := s.menuRepo.CreateMenuItem(item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return s.menuRepo.FindMenuItemByID(item.ID)
}

// UpdateMenuItem applies a partial update. Nil fields never touch the
// stored row.
func (s *MenuService) UpdateMenuItem(id uint, update MenuItemUpdate) (*models.MenuItem, error) {
	if _, err := s.GetMenuItem(id); err != nil {
		return nil, err
	}

	attrs := map[string]interface{}{}
	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", models.ErrValidation)
		}
		attrs["title"] = *update.Title
	}
	if update.Price != nil {
		if *update.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", models.ErrValidation)
		}
		attrs["price"] = *update.Price
	}
	if update.CategoryID != nil {
		if _, err := s.menuRepo.FindCategoryByID(*update.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: category %d does not exist", models.ErrValidation, *update.CategoryID)
			}
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		attrs["category_id"] = *update.CategoryID
	}
	if update.Featured != nil {
		attrs["featured"] = *update.Featured
	}

	if len(attrs) > 0 {
		if err := s.menuRepo.UpdateMenuItem(id, attrs); err != nil {
			return nil, fmt.Errorf("failed to update menu item: %w", err)
		}
	}
	return s.menuRepo.FindMenuItemByID(id)
}

// DeleteMenuItem permanently removes a menu item.
func (s *MenuService) DeleteMenuItem(id uint) error {
	if _, err := s.GetMenuItem(id); err != nil {
		return err
	}
	if err := s.menuRepo.DeleteMenuItem(id); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}

// ToggleFeatured flips the featured flag of the named item. Two
// consecutive calls restore the original value.
func (s *MenuService) ToggleFeatured(title string) (*models.MenuItem, error) {
	item, err := s.menuRepo.FindMenuItemByTitle(title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu item %q", models.ErrNotFound, title)
		}
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}

	err = s.menuRepo.UpdateMenuItem(item.ID, map[string]interface{}{"featured": !item.Featured})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle featured: %w", err)
	}
	return s.menuRepo.FindMenuItemByID(item.ID)
}

// ListFeatured retrieves the promoted items.
func (s *MenuService) ListFeatured() ([]models.MenuItem, error) {
	return s.menuRepo.ListFeatured()
}

// ListCategories retrieves all categories.
func (s *MenuService) ListCategories() ([]models.Category, error) {
	return s.menuRepo.ListCategories()
}

// CreateCategory validates and persists a new category.
func (s *MenuService) CreateCategory(title, slug string) (*models.Category, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", models.ErrValidation)
	}
	category := &models.Category{Title: title, Slug: slug}
	if err := s.menuRepo.CreateCategory(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}
