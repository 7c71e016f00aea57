package repository

import (
	"strings"

	"restaurant-api/models"

	"gorm.io/gorm"
)

// MenuItemFilter carries the list-endpoint query parameters. Zero values
// mean "not filtered"; Ordering fields are already validated by the caller.
type MenuItemFilter struct {
	Category string
	ToPrice  *float64
	Search   string
	Ordering []string
	PerPage  int
	Page     int
}

// IMenuRepository defines the interface for menu catalog data operations.
type IMenuRepository interface {
	ListMenuItems(filter MenuItemFilter) ([]models.MenuItem, error)
	ListFeatured() ([]models.MenuItem, error)
	FindMenuItemByID(id uint) (*models.MenuItem, error)
	FindMenuItemByTitle(title string) (*models.MenuItem, error)
	CreateMenuItem(item *models.MenuItem) error
	UpdateMenuItem(id uint, attrs map[string]interface{}) error
	DeleteMenuItem(id uint) error
	ListCategories() ([]models.Category, error)
	FindCategoryByID(id uint) (*models.Category, error)
	CreateCategory(category *models.Category) error
}

// MenuRepository implements IMenuRepository for GORM.
type MenuRepository struct {
	DB *gorm.DB
}

// NewMenuRepository creates a new MenuRepository instance.
func NewMenuRepository(db *gorm.DB) IMenuRepository {
	return &MenuRepository{DB: db}
}

// ListMenuItems applies the catalog filters, ordering and pagination on a
// single query. A page beyond the last one yields an empty slice.
func (r *MenuRepository) ListMenuItems(filter MenuItemFilter) ([]models.MenuItem, error) {
	query := r.DB.Model(&models.MenuItem{}).Preload("Category")

	if filter.Category != "" {
		query = query.
			Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.title = ?", filter.Category)
	}
	if filter.ToPrice != nil {
		query = query.Where("menu_items.price <= ?", *filter.ToPrice)
	}
	if filter.Search != "" {
		query = query.Where("menu_items.title LIKE ?", "%"+filter.Search+"%")
	}
	for _, field := range filter.Ordering {
		if strings.HasPrefix(field, "-") {
			query = query.Order("menu_items." + strings.TrimPrefix(field, "-") + " DESC")
		} else {
			query = query.Order("menu_items." + field)
		}
	}

	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = 10
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	var items []models.MenuItem
	err := query.Limit(perPage).Offset((page - 1) * perPage).Find(&items).Error
	return items, err
}

// ListFeatured retrieves all menu items flagged as featured.
func (r *MenuRepository) ListFeatured() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.DB.Preload("Category").Where("featured = ?", true).Find(&items).Error
	return items, err
}

// FindMenuItemByID retrieves a menu item with its category.
func (r *MenuRepository) FindMenuItemByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.DB.Preload("Category").First(&item, id).Error
	return &item, err
}

// FindMenuItemByTitle retrieves a menu item by case-normalized title.
func (r *MenuRepository) FindMenuItemByTitle(title string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.DB.Preload("Category").Where("LOWER(title) = ?", strings.ToLower(title)).First(&item).Error
	return &item, err
}

// CreateMenuItem creates a new menu item.
func (r *MenuRepository) CreateMenuItem(item *models.MenuItem) error {
	return r.DB.Create(item).Error
}

// UpdateMenuItem applies a partial update; attrs holds only the columns
// the caller actually supplied, so absent fields are never overwritten.
func (r *MenuRepository) UpdateMenuItem(id uint, attrs map[string]interface{}) error {
	return r.DB.Model(&models.MenuItem{}).Where("id = ?", id).Updates(attrs).Error
}

// DeleteMenuItem permanently removes a menu item.
func (r *MenuRepository) DeleteMenuItem(id uint) error {
	return r.DB.Delete(&models.MenuItem{}, id).Error
}

// ListCategories retrieves all categories.
func (r *MenuRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.DB.Find(&categories).Error
	return categories, err
}

// FindCategoryByID retrieves a category by its ID.
func (r *MenuRepository) FindCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.DB.First(&category, id).Error
	return &category, err
}

// CreateCategory creates a new category.
func (r *MenuRepository) CreateCategory(category *models.Category) error {
	return r.DB.Create(category).Error
}
