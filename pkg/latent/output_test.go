package latent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexGronaCW/tickwork/pkg/host"
)

func TestResolve_DurableSlotPassesThrough(t *testing.T) {
	frame := host.NewFrame()
	slot := host.Alloc[int](frame)

	resolved := Resolve(frame, slot)
	assert.Same(t, slot, resolved)
}

func TestResolve_TransientReferenceIsRedirected(t *testing.T) {
	frame := host.NewFrame()
	host.Alloc[int](frame) // frame must not be empty

	local := 42
	resolved := Resolve(frame, &local)

	require.NotSame(t, &local, resolved)
	assert.Same(t, DiscardSlot[int](), resolved)

	// Writing through the resolved pointer must not touch the local.
	*resolved = 7
	assert.Equal(t, 42, local)
}

func TestResolve_NilReferenceIsRedirected(t *testing.T) {
	frame := host.NewFrame()
	host.Alloc[string](frame)

	resolved := Resolve[string](frame, nil)
	assert.Same(t, DiscardSlot[string](), resolved)
}

func TestResolve_NilFramePanics(t *testing.T) {
	local := 1
	assert.Panics(t, func() {
		Resolve(nil, &local)
	})
}

func TestResolve_EmptyFramePanics(t *testing.T) {
	frame := host.NewFrame()
	local := 1
	assert.Panics(t, func() {
		Resolve(frame, &local)
	})
}

func TestDiscardSlot_SharedPerType(t *testing.T) {
	assert.Same(t, DiscardSlot[int](), DiscardSlot[int]())
	assert.Same(t, DiscardSlot[string](), DiscardSlot[string]())

	// Distinct types get distinct slots.
	a := DiscardSlot[int]()
	b := DiscardSlot[int64]()
	assert.NotEqual(t, any(a), any(b))
}
