package services_test

import (
	"context"
	"time"

	"restaurant-api/models"
	"restaurant-api/repository"

	"github.com/stretchr/testify/mock"
)

// MockMenuRepository is a mock implementation of repository.IMenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) ListMenuItems(filter repository.MenuItemFilter) ([]models.MenuItem, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) ListFeatured() ([]models.MenuItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) FindMenuItemByID(id uint) (*models.MenuItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) FindMenuItemByTitle(title string) (*models.MenuItem, error) {
	args := m.Called(title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) CreateMenuItem(item *models.MenuItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockMenuRepository) UpdateMenuItem(id uint, attrs map[string]interface{}) error {
	args := m.Called(id, attrs)
	return args.Error(0)
}

func (m *MockMenuRepository) DeleteMenuItem(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMenuRepository) ListCategories() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockMenuRepository) FindCategoryByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockMenuRepository) CreateCategory(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

// MockCartRepository is a mock implementation of repository.ICartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) CreateCartItem(item *models.Cart) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCartRepository) ListByUser(userID uint) ([]models.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Cart), args.Error(1)
}

func (m *MockCartRepository) ClearByUser(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of repository.IOrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateFromCart(order *models.Order, cartRows int) error {
	args := m.Called(order, cartRows)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByDeliveryCrew(crewID uint) ([]models.Order, error) {
	args := m.Called(crewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrder(id uint, attrs map[string]interface{}) error {
	args := m.Called(id, attrs)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteOrder(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repository.IUserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ListGroupMembers(groupName string) ([]models.User, error) {
	args := m.Called(groupName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) AddToGroup(user *models.User, groupName string) error {
	args := m.Called(user, groupName)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveFromGroup(user *models.User, groupName string) error {
	args := m.Called(user, groupName)
	return args.Error(0)
}

// MockKafkaService is a mock implementation of services.IKafkaService.
type MockKafkaService struct {
	mock.Mock
}

func (m *MockKafkaService) PushMessage(topic string, message []byte) error {
	args := m.Called(topic, message)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of repository.ITokenStore.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Save(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	args := m.Called(ctx, token, userID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) Resolve(ctx context.Context, token string) (uint, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockTokenStore) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
