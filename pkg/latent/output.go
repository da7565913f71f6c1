package latent

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/AlexGronaCW/tickwork/pkg/ports"
)

// maxPlausibleSlots is a sanity limit for a single invocation frame. A frame
// reporting more live slots than this means the hosting integration is
// corrupting its own bookkeeping, not that a caller is merely wasteful.
const maxPlausibleSlots = 1 << 20

// discardSlots holds one shared discard destination per concrete output type,
// lazily created. Keyed by reflect.Type so every redirected reference of the
// same type lands in the same slot.
var discardSlots sync.Map // reflect.Type -> pointer to zero value

// DiscardSlot returns the process-wide discard destination for type T.
// Redirected outputs are written here; the host loop is single-threaded, so
// the slot has no concurrent writers even when shared across operations.
func DiscardSlot[T any]() *T {
	key := reflect.TypeFor[T]()
	if p, ok := discardSlots.Load(key); ok {
		return p.(*T)
	}
	p, _ := discardSlots.LoadOrStore(key, new(T))
	return p.(*T)
}

// Resolve classifies an output destination once, at operation construction.
// A reference the frame owns is durable and returned unchanged: it is safe to
// write at poll time, many ticks after the launching call returned. Anything
// else, including nil (the idiom for "caller ignored this output"), is a
// transient call-site artifact and is redirected to the shared discard slot.
//
// A nil frame or an implausible slot count is not a recoverable condition: it
// means the hosting contract itself is broken, so Resolve panics instead of
// converting it into an operation failure.
func Resolve[T any](frame ports.DurableFrame, ref *T) *T {
	if frame == nil {
		panic("latent: durable frame unavailable, hosting contract broken")
	}
	if n := frame.SlotCount(); n <= 0 || n > maxPlausibleSlots {
		panic(fmt.Sprintf("latent: implausible durable frame size %d, hosting contract broken", n))
	}
	if ref != nil && frame.Owns(ref) {
		return ref
	}
	return DiscardSlot[T]()
}
