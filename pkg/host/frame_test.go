package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrame_AllocRegistersOwnership(t *testing.T) {
	f := NewFrame()
	a := Alloc[int](f)
	b := Alloc[string](f)

	assert.True(t, f.Owns(a))
	assert.True(t, f.Owns(b))
	assert.Equal(t, 2, f.SlotCount())
}

func TestFrame_DoesNotOwnForeignPointers(t *testing.T) {
	f := NewFrame()
	Alloc[int](f)

	local := 5
	assert.False(t, f.Owns(&local))

	other := NewFrame()
	foreign := Alloc[int](other)
	assert.False(t, f.Owns(foreign))
}

func TestFrame_DistinctSlotsPerAlloc(t *testing.T) {
	f := NewFrame()
	a := Alloc[int](f)
	b := Alloc[int](f)

	assert.NotSame(t, a, b)
	*a = 1
	*b = 2
	assert.Equal(t, 1, *a)
}
