package redis

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/AlexGronaCW/tickwork/pkg/domain"
)

// TokenStore implements ports.TokenStore using Redis. All token types live
// in a single hash so List stays a single round-trip.
type TokenStore struct {
	client *backend.Client
	key    string
	ttl    time.Duration
}

type Option func(*TokenStore)

// WithTTL sets the expiration for the token hash, refreshed on every save.
func WithTTL(ttl time.Duration) Option {
	return func(s *TokenStore) {
		s.ttl = ttl
	}
}

// WithKey sets the Redis key holding the token hash.
func WithKey(key string) Option {
	return func(s *TokenStore) {
		s.key = key
	}
}

// New creates a new Redis token store with options.
func New(address, password string, db int, opts ...Option) *TokenStore {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis token store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *TokenStore {
	store := &TokenStore{
		client: client,
		key:    "tickwork:tokens",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Save persists the token value.
func (s *TokenStore) Save(ctx context.Context, tokenType domain.TokenType, value string) error {
	pipe := s.client.Pipeline()
	pipe.HSet(ctx, s.key, string(tokenType), value)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save token to redis: %w", err)
	}
	return nil
}

// Load retrieves the token value.
func (s *TokenStore) Load(ctx context.Context, tokenType domain.TokenType) (string, error) {
	val, err := s.client.HGet(ctx, s.key, string(tokenType)).Result()
	if err != nil {
		if err == backend.Nil {
			return "", domain.ErrTokenNotFound
		}
		return "", fmt.Errorf("failed to get token from redis: %w", err)
	}
	return val, nil
}

// Delete removes the token value.
func (s *TokenStore) Delete(ctx context.Context, tokenType domain.TokenType) error {
	if err := s.client.HDel(ctx, s.key, string(tokenType)).Err(); err != nil {
		return fmt.Errorf("failed to delete token from redis: %w", err)
	}
	return nil
}

// List returns the token types with stored values.
func (s *TokenStore) List(ctx context.Context) ([]domain.TokenType, error) {
	fields, err := s.client.HKeys(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens from redis: %w", err)
	}

	types := make([]domain.TokenType, 0, len(fields))
	for _, f := range fields {
		types = append(types, domain.TokenType(f))
	}
	return types, nil
}

// Close closes the redis client.
func (s *TokenStore) Close() error {
	return s.client.Close()
}
