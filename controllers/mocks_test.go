package controllers_test

import (
	"restaurant-api/models"
	"restaurant-api/repository"
	"restaurant-api/services"

	"github.com/stretchr/testify/mock"
)

// MockOrderService is a mock implementation of services.IOrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(userID uint) (*models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(p *models.Principal) ([]models.Order, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderService) GetOrder(p *models.Principal, id uint) (*models.Order, error) {
	args := m.Called(p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrder(p *models.Principal, id uint, update services.OrderUpdate) (*models.Order, error) {
	args := m.Called(p, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) DeleteOrder(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCartService is a mock implementation of services.ICartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddItem(userID uint, title string, quantity int, unitPrice *float64) (*models.Cart, error) {
	args := m.Called(userID, title, quantity, unitPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartService) ListItems(userID uint) ([]models.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Cart), args.Error(1)
}

func (m *MockCartService) Clear(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockMenuService is a mock implementation of services.IMenuService.
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) ListMenuItems(filter repository.MenuItemFilter) ([]models.MenuItem, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *MockMenuService) GetMenuItem(id uint) (*models.MenuItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockMenuService) CreateMenuItem(input services.MenuItemInput) (*models.MenuItem, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockMenuService) UpdateMenuItem(id uint, update services.MenuItemUpdate) (*models.MenuItem, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockMenuService) DeleteMenuItem(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMenuService) ToggleFeatured(title string) (*models.MenuItem, error) {
	args := m.Called(title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockMenuService) ListFeatured() ([]models.MenuItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *MockMenuService) ListCategories() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockMenuService) CreateCategory(title, slug string) (*models.Category, error) {
	args := m.Called(title, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

// MockGroupService is a mock implementation of services.IGroupService.
type MockGroupService struct {
	mock.Mock
}

func (m *MockGroupService) ListMembers(groupName string) ([]models.User, error) {
	args := m.Called(groupName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockGroupService) AddMember(groupName, username string) error {
	args := m.Called(groupName, username)
	return args.Error(0)
}

func (m *MockGroupService) RemoveMember(groupName, username string) error {
	args := m.Called(groupName, username)
	return args.Error(0)
}
