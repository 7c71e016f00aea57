package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-api/models"
	"restaurant-api/repository"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// IAuthService defines the interface for account and session operations.
type IAuthService interface {
	Register(username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AuthService implements IAuthService with bcrypt password hashes and
// Redis-backed bearer tokens.
type AuthService struct {
	userRepo   repository.IUserRepository
	tokenStore repository.ITokenStore
	tokenTTL   time.Duration
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.IUserRepository, tokenStore repository.ITokenStore, tokenTTL time.Duration) IAuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		tokenTTL:   tokenTTL,
	}
}

// Register creates a new customer account.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", models.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", models.ErrValidation)
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, fmt.Errorf("%w: username %s is already taken", models.ErrConflict, username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}

	token := uuid.NewString()
	if err := s.tokenStore.Save(ctx, token, user.ID, s.tokenTTL); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return token, nil
}

// Logout revokes the token. Revoking an unknown token succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokenStore.Revoke(ctx, token)
}

// Authenticate resolves a bearer token into the user behind it, with
// role groups loaded. Unknown or expired tokens are unauthorized.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokenStore.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: invalid or expired token", models.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: token user no longer exists", models.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
