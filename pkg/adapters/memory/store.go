package memory

import (
	"context"
	"sync"

	"github.com/AlexGronaCW/tickwork/pkg/domain"
)

// TokenStore implements ports.TokenStore in memory.
// Safe for concurrent use.
type TokenStore struct {
	data map[domain.TokenType]string
	mu   sync.RWMutex
}

// NewTokenStore creates a new in-memory token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{
		data: make(map[domain.TokenType]string),
	}
}

// Save persists the token value in memory.
func (s *TokenStore) Save(ctx context.Context, tokenType domain.TokenType, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[tokenType] = value
	return nil
}

// Load retrieves the token value from memory.
func (s *TokenStore) Load(ctx context.Context, tokenType domain.TokenType) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[tokenType]
	if !ok {
		return "", domain.ErrTokenNotFound
	}
	return value, nil
}

// Delete removes the token value.
func (s *TokenStore) Delete(ctx context.Context, tokenType domain.TokenType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, tokenType)
	return nil
}

// List returns the token types with stored values.
func (s *TokenStore) List(ctx context.Context) ([]domain.TokenType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	types := make([]domain.TokenType, 0, len(s.data))
	for t := range s.data {
		types = append(types, t)
	}
	return types, nil
}
