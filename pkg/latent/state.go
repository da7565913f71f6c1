package latent

import (
	"sync"

	"github.com/AlexGronaCW/tickwork/pkg/domain"
)

// State is the shared handoff object between a controller and its worker.
// It is heap-owned and referenced by both sides; neither assumes the other
// outlives it, so a worker finishing after host shutdown writes into memory
// nobody reads anymore instead of into freed host storage.
//
// The worker owns status and result until done is closed; the controller may
// read them only after observing done. The partial queue has the worker as
// its only producer and the polling controller as its only consumer.
type State[R any] struct {
	queue *partialQueue[R] // nil unless an observer was registered at creation
	done  chan struct{}    // closed exactly once after the worker returns

	status domain.OperationResult
	result R
}

func newState[R any](streaming bool) *State[R] {
	s := &State[R]{done: make(chan struct{})}
	if streaming {
		s.queue = &partialQueue[R]{}
	}
	return s
}

// Stream enqueues a partial result for delivery to the observer on the next
// host poll. Without a registered observer there is no queue and the value is
// dropped, so workers can stream unconditionally. Must not be called after
// the worker closure returns.
func (s *State[R]) Stream(v R) {
	if s.queue == nil {
		return
	}
	s.queue.push(v)
}

// SetResult records the operation's final result. Worker-side only.
func (s *State[R]) SetResult(v R) { s.result = v }

// SetStatus records the operation's final status. Worker-side only.
func (s *State[R]) SetStatus(r domain.OperationResult) { s.status = r }

// finish publishes the worker's writes to the polling side. Called by the
// launcher once the worker closure has returned; never by the closure itself.
func (s *State[R]) finish() { close(s.done) }

// completed reports, without blocking, whether the worker has finished.
func (s *State[R]) completed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the worker has finished. The terminal
// commit still happens on the host's next poll, not here.
func (s *State[R]) Done() <-chan struct{} { return s.done }

// partialQueue is an unbounded single-producer/single-consumer FIFO. The
// worker must never block on a full buffer, so a channel does not fit here.
type partialQueue[R any] struct {
	mu    sync.Mutex
	items []R
}

func (q *partialQueue[R]) push(v R) {
	q.mu.Lock()
	q.items = append(q.items, v)
	q.mu.Unlock()
}

func (q *partialQueue[R]) pop() (R, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		var zero R
		return zero, false
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v, true
}

// empty is only meaningful once the producer has stopped; mid-flight the
// queue may refill immediately after returning true.
func (q *partialQueue[R]) empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) == 0
}
