package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"restaurant-api/config"

	"github.com/go-redis/redis/v8"
)

// ITokenStore defines the interface for session token persistence.
type ITokenStore interface {
	Save(ctx context.Context, token string, userID uint, ttl time.Duration) error
	Resolve(ctx context.Context, token string) (uint, error)
	Revoke(ctx context.Context, token string) error
}

// TokenStore implements ITokenStore on Redis. Tokens live under
// token:<value> and expire after the configured TTL.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a new TokenStore instance.
func NewTokenStore(cfg *config.Config) *TokenStore {
	return &TokenStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		}),
	}
}

// Ping verifies the Redis connection.
func (s *TokenStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func tokenKey(token string) string {
	return fmt.Sprintf("token:%s", token)
}

// Save stores the token for the user with the given TTL.
func (s *TokenStore) Save(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(token), strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

// Resolve returns the user ID behind a token. An unknown or expired
// token is reported as redis.Nil.
func (s *TokenStore) Resolve(ctx context.Context, token string) (uint, error) {
	val, err := s.client.Get(ctx, tokenKey(token)).Result()
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Revoke deletes the token. Revoking an unknown token is a no-op.
func (s *TokenStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, tokenKey(token)).Err()
}

// Close releases the underlying Redis connection pool.
func (s *TokenStore) Close() error {
	return s.client.Close()
}
