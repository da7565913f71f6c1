package memory_test

import (
	"testing"

	"github.com/AlexGronaCW/tickwork/pkg/adapters/memory"
	"github.com/AlexGronaCW/tickwork/pkg/ports"
)

func TestTokenStore_Contract(t *testing.T) {
	store := memory.NewTokenStore()
	ports.RunTokenStoreContract(t, store)
}
