package ports

import (
	"context"
	"testing"

	"github.com/AlexGronaCW/tickwork/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTokenStoreContract runs a suite of tests to verify that a TokenStore
// implementation adheres to the defined interface contract.
func RunTokenStoreContract(t *testing.T, store TokenStore) {
	ctx := context.Background()

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, domain.TokenAccess, "token-value-1")
		require.NoError(t, err, "Save should not return error")

		val, err := store.Load(ctx, domain.TokenAccess)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, "token-value-1", val)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.TokenRefresh, "old"))
		require.NoError(t, store.Save(ctx, domain.TokenRefresh, "new"))

		val, err := store.Load(ctx, domain.TokenRefresh)
		require.NoError(t, err)
		assert.Equal(t, "new", val)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, domain.TokenType("absent"))
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.TokenSession, "s"))

		err := store.Delete(ctx, domain.TokenSession)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, domain.TokenSession)
		assert.ErrorIs(t, err, domain.ErrTokenNotFound, "Load after Delete should return ErrTokenNotFound")
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.TokenID, "id-token"))

		defer func() {
			_ = store.Delete(ctx, domain.TokenID)
		}()

		types, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, types, domain.TokenID)
	})
}
