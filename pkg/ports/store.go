package ports

import (
	"context"

	"github.com/AlexGronaCW/tickwork/pkg/domain"
)

// TokenStore defines the interface for persisting session tokens.
// This allows tokens set on one session manager instance to survive process
// restarts when backed by an external store.
type TokenStore interface {
	// Save persists the value for a token type, replacing any previous value.
	Save(ctx context.Context, tokenType domain.TokenType, value string) error

	// Load retrieves the value for a token type.
	// Returns domain.ErrTokenNotFound if no value is stored.
	Load(ctx context.Context, tokenType domain.TokenType) (string, error)

	// Delete removes the value for a token type.
	Delete(ctx context.Context, tokenType domain.TokenType) error

	// List returns the token types that currently have a stored value.
	List(ctx context.Context) ([]domain.TokenType, error)
}
