package host

// Frame is a durable per-invocation storage block. Slots allocated from it
// outlive the launching call site and stay valid until the host discards the
// frame, so latent operations may write into them at poll time.
//
// A Frame is owned by the host goroutine and is not safe for concurrent use;
// the single-threaded host model is exactly what makes that acceptable.
type Frame struct {
	slots map[any]struct{}
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{slots: make(map[any]struct{})}
}

// Alloc allocates a typed output slot from the frame and records ownership,
// so the output safety resolver can distinguish it from a transient
// call-site variable.
func Alloc[T any](f *Frame) *T {
	p := new(T)
	f.slots[p] = struct{}{}
	return p
}

// Owns reports whether the reference is a slot allocated from this frame.
func (f *Frame) Owns(slot any) bool {
	_, ok := f.slots[slot]
	return ok
}

// SlotCount returns the number of live slots.
func (f *Frame) SlotCount() int { return len(f.slots) }
