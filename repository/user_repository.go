package repository

import (
	"restaurant-api/models"

	"gorm.io/gorm"
)

// IUserRepository defines the interface for user and role-group data
// operations. Group membership is only reachable through this interface.
type IUserRepository interface {
	CreateUser(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	ListGroupMembers(groupName string) ([]models.User, error)
	AddToGroup(user *models.User, groupName string) error
	RemoveFromGroup(user *models.User, groupName string) error
}

// UserRepository implements IUserRepository for GORM.
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{DB: db}
}

// CreateUser creates a new user account.
func (r *UserRepository) CreateUser(user *models.User) error {
	return r.DB.Create(user).Error
}

// FindByID retrieves a user with their role groups.
func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.DB.Preload("Groups").First(&user, id).Error
	return &user, err
}

// FindByUsername retrieves a user with their role groups.
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.DB.Preload("Groups").Where("username = ?", username).First(&user).Error
	return &user, err
}

// ListGroupMembers retrieves all users holding the named role group.
func (r *UserRepository) ListGroupMembers(groupName string) ([]models.User, error) {
	var users []models.User
	err := r.DB.Preload("Groups").
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Joins("JOIN groups ON groups.id = user_groups.group_id").
		Where("groups.name = ?", groupName).
		Find(&users).Error
	return users, err
}

func (r *UserRepository) findGroup(name string) (*models.Group, error) {
	var group models.Group
	err := r.DB.Where("name = ?", name).First(&group).Error
	return &group, err
}

// AddToGroup adds the user to the named group. Adding an existing member
// is idempotent.
func (r *UserRepository) AddToGroup(user *models.User, groupName string) error {
	group, err := r.findGroup(groupName)
	if err != nil {
		return err
	}
	if user.HasGroup(groupName) {
		return nil
	}
	return r.DB.Model(user).Association("Groups").Append(group)
}

// RemoveFromGroup removes the user from the named group. Removing a
// non-member is idempotent.
func (r *UserRepository) RemoveFromGroup(user *models.User, groupName string) error {
	group, err := r.findGroup(groupName)
	if err != nil {
		return err
	}
	return r.DB.Model(user).Association("Groups").Delete(group)
}
