package services_test

import (
	"testing"

	"restaurant-api/models"
	"restaurant-api/repository"
	"restaurant-api/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMenuService_ToggleFeatured_Involution(t *testing.T) {
	menuRepo := new(MockMenuRepository)

	item := &models.MenuItem{ID: 3, Title: "Greek salad", Featured: false}
	toggled := &models.MenuItem{ID: 3, Title: "Greek salad", Featured: true}

	menuRepo.On("FindMenuItemByTitle", "Greek salad").Return(item, nil).Once()
	menuRepo.On("UpdateMenuItem", uint(3), map[string]interface{}{"featured": true}).Return(nil).Once()
	menuRepo.On("FindMenuItemByID", uint(3)).Return(toggled, nil).Once()

	menuRepo.On("FindMenuItemByTitle", "Greek salad").Return(toggled, nil).Once()
	menuRepo.On("UpdateMenuItem", uint(3), map[string]interface{}{"featured": false}).Return(nil).Once()
	menuRepo.On("FindMenuItemByID", uint(3)).Return(item, nil).Once()

	menuSvc := services.NewMenuService(menuRepo)

	first, err := menuSvc.ToggleFeatured("Greek salad")
	assert.NoError(t, err)
	assert.True(t, first.Featured)

	second, err := menuSvc.ToggleFeatured("Greek salad")
	assert.NoError(t, err)
	assert.False(t, second.Featured)

	menuRepo.AssertExpectations(t)
}

func TestMenuService_CreateMenuItem_Validation(t *testing.T) {
	price := 9.5
	categoryID := uint(1)

	tests := []struct {
		name  string
		input services.MenuItemInput
	}{
		{"missing title", services.MenuItemInput{Price: &price, CategoryID: &categoryID}},
		{"missing price", services.MenuItemInput{Title: "Bruschetta", CategoryID: &categoryID}},
		{"missing category", services.MenuItemInput{Title: "Bruschetta", Price: &price}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menuRepo := new(MockMenuRepository)
			menuSvc := services.NewMenuService(menuRepo)

			_, err := menuSvc.CreateMenuItem(tt.input)

			assert.ErrorIs(t, err, models.ErrValidation)
			menuRepo.AssertNotCalled(t, "CreateMenuItem")
		})
	}
}

func TestMenuService_CreateMenuItem_NegativePrice(t *testing.T) {
	price := -1.0
	categoryID := uint(1)
	menuSvc := services.NewMenuService(new(MockMenuRepository))

	_, err := menuSvc.CreateMenuItem(services.MenuItemInput{Title: "Bruschetta", Price: &price, CategoryID: &categoryID})

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestMenuService_UpdateMenuItem_PartialNeverNullsOmitted(t *testing.T) {
	menuRepo := new(MockMenuRepository)

	existing := &models.MenuItem{ID: 3, Title: "Greek salad", Price: 12.5, Featured: true, CategoryID: 1}
	menuRepo.On("FindMenuItemByID", uint(3)).Return(existing, nil)
	// Only price is written; title, category and featured are untouched.
	menuRepo.On("UpdateMenuItem", uint(3), map[string]interface{}{"price": 14.0}).Return(nil)

	menuSvc := services.NewMenuService(menuRepo)
	price := 14.0
	_, err := menuSvc.UpdateMenuItem(3, services.MenuItemUpdate{Price: &price})

	assert.NoError(t, err)
	menuRepo.AssertExpectations(t)
}

func TestMenuService_UpdateMenuItem_EmptyUpdateWritesNothing(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	menuRepo.On("FindMenuItemByID", uint(3)).Return(&models.MenuItem{ID: 3}, nil)

	menuSvc := services.NewMenuService(menuRepo)
	_, err := menuSvc.UpdateMenuItem(3, services.MenuItemUpdate{})

	assert.NoError(t, err)
	menuRepo.AssertNotCalled(t, "UpdateMenuItem")
}

func TestMenuService_ListMenuItems_RejectsUnknownOrderingField(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	menuSvc := services.NewMenuService(menuRepo)

	_, err := menuSvc.ListMenuItems(repository.MenuItemFilter{Ordering: []string{"price", "-secret_column"}})

	assert.ErrorIs(t, err, models.ErrValidation)
	menuRepo.AssertNotCalled(t, "ListMenuItems")
}

func TestMenuService_ListMenuItems_AcceptsDescendingFields(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	filter := repository.MenuItemFilter{Ordering: []string{"-price", "title"}}
	menuRepo.On("ListMenuItems", filter).Return([]models.MenuItem{}, nil)

	menuSvc := services.NewMenuService(menuRepo)
	_, err := menuSvc.ListMenuItems(filter)

	assert.NoError(t, err)
	menuRepo.AssertExpectations(t)
}

func TestMenuService_CreateCategory(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	menuRepo.On("CreateCategory", mock.AnythingOfType("*models.Category")).Return(nil)

	menuSvc := services.NewMenuService(menuRepo)
	category, err := menuSvc.CreateCategory("Desserts", "desserts")

	assert.NoError(t, err)
	assert.Equal(t, "Desserts", category.Title)

	_, err = menuSvc.CreateCategory("", "empty")
	assert.ErrorIs(t, err, models.ErrValidation)
}
