package services

import (
	"errors"
	"fmt"

	"restaurant-api/models"
	"restaurant-api/repository"

	"gorm.io/gorm"
)

// IGroupService defines the interface for role-group administration.
type IGroupService interface {
	ListMembers(groupName string) ([]models.User, error)
	AddMember(groupName, username string) error
	RemoveMember(groupName, username string) error
}

// GroupService implements IGroupService. Each endpoint operates only on
// the group it names; add and remove are both idempotent.
type GroupService struct {
	userRepo repository.IUserRepository
}

// NewGroupService creates a new GroupService instance.
func NewGroupService(userRepo repository.IUserRepository) IGroupService {
	return &GroupService{userRepo: userRepo}
}

// ListMembers returns the users holding the named role group.
func (s *GroupService) ListMembers(groupName string) ([]models.User, error) {
	users, err := s.userRepo.ListGroupMembers(groupName)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s members: %w", groupName, err)
	}
	return users, nil
}

// AddMember grants the named user the role group.
func (s *GroupService) AddMember(groupName, username string) error {
	user, err := s.findUser(username)
	if err != nil {
		return err
	}
	if err := s.userRepo.AddToGroup(user, groupName); err != nil {
		return fmt.Errorf("failed to add %s to %s: %w", username, groupName, err)
	}
	return nil
}

// RemoveMember revokes the role group from the named user.
func (s *GroupService) RemoveMember(groupName, username string) error {
	user, err := s.findUser(username)
	if err != nil {
		return err
	}
	if err := s.userRepo.RemoveFromGroup(user, groupName); err != nil {
		return fmt.Errorf("failed to remove %s from %s: %w", username, groupName, err)
	}
	return nil
}

func (s *GroupService) findUser(username string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", models.ErrValidation)
	}
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, username)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}
