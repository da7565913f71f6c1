package host

import (
	"log/slog"
	"sync"
	"time"

	"github.com/AlexGronaCW/tickwork/internal/logging"
	"github.com/AlexGronaCW/tickwork/pkg/domain"
	"github.com/AlexGronaCW/tickwork/pkg/ports"
)

// OperationInfo describes one registered operation, for introspection
// surfaces (CLI, HTTP adapter).
type OperationInfo struct {
	Owner       string    `json:"owner"`
	OperationID string    `json:"operation_id"`
	StartedAt   time.Time `json:"started_at"`
}

type actionKey struct {
	owner string
	id    string
}

type actionEntry struct {
	key       actionKey
	action    ports.PollingAction
	startedAt time.Time
}

// Manager is the poll-driven action manager. Tick must only ever run on the
// host goroutine: actions are polled, removed, and resumed there and
// nowhere else. The registry itself is guarded so introspection surfaces
// (CLI, HTTP adapter) can read it from other goroutines.
type Manager struct {
	mu      sync.RWMutex
	entries []*actionEntry // registration order is poll order
	index   map[actionKey]*actionEntry
	closed  bool

	pending []func() // continuations scheduled during the current tick; tick-local

	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Manager) {
		m.hooks = hooks
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a poll-driven action manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		index:  make(map[actionKey]*actionEntry),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register adds an action to the poll set keyed by (owner, operationID).
func (m *Manager) Register(owner, operationID string, action ports.PollingAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return domain.ErrManagerClosed
	}
	key := actionKey{owner: owner, id: operationID}
	if _, exists := m.index[key]; exists {
		return domain.ErrDuplicateOperation
	}

	entry := &actionEntry{key: key, action: action, startedAt: time.Now()}
	m.entries = append(m.entries, entry)
	m.index[key] = entry

	m.emit(domain.EventOperationStart, entry, nil)
	m.logger.Debug("operation registered", "owner", owner, "operation_id", operationID)
	return nil
}

// responseSink records the terminal Finish call for one poll.
type responseSink struct {
	finished     bool
	continuation func()
}

// Finish signals terminal completion and schedules the continuation.
func (s *responseSink) Finish(continuation func()) {
	s.finished = true
	s.continuation = continuation
}

// Tick advances the host by one discrete step: every registered action is
// polled once in registration order, finished actions are removed from the
// poll set, and their continuations run afterwards, in that order, so a
// continuation never observes its own operation as still registered.
func (m *Manager) Tick() {
	m.mu.RLock()
	polling := make([]*actionEntry, len(m.entries))
	copy(polling, m.entries)
	m.mu.RUnlock()

	var finished []*actionEntry

	for _, entry := range polling {
		sink := &responseSink{}
		entry.action.Poll(sink)

		m.emit(domain.EventOperationPoll, entry, nil)

		if sink.finished {
			finished = append(finished, entry)
			if sink.continuation != nil {
				m.pending = append(m.pending, sink.continuation)
			}
		}
	}

	for _, entry := range finished {
		m.remove(entry)
		m.emit(domain.EventOperationFinish, entry, entry.action)
	}

	// Continuations run last, after removal, on this same goroutine.
	continuations := m.pending
	m.pending = nil
	for _, fn := range continuations {
		fn()
	}
}

func (m *Manager) remove(entry *actionEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.index, entry.key)
	for i, e := range m.entries {
		if e == entry {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			break
		}
	}
}

// Active returns the number of registered operations.
func (m *Manager) Active() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Operations lists the registered operations in registration order.
func (m *Manager) Operations() []OperationInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]OperationInfo, 0, len(m.entries))
	for _, entry := range m.entries {
		infos = append(infos, OperationInfo{
			Owner:       entry.key.owner,
			OperationID: entry.key.id,
			StartedAt:   entry.startedAt,
		})
	}
	return infos
}

// Shutdown drops all registered operations and rejects further registration.
// In-flight workers run to completion; their eventual writes land in the
// shared State that nothing reads anymore and are silently discarded. No
// observer call is attempted. Best-effort: launched work is not cancelled.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	dropped := len(m.entries)
	m.entries = nil
	m.index = make(map[actionKey]*actionEntry)
	m.pending = nil
	m.closed = true
	if dropped > 0 {
		m.logger.Debug("shutdown dropped operations", "count", dropped)
	}
}

func (m *Manager) emit(t domain.EventType, entry *actionEntry, action ports.PollingAction) {
	var fn func(*domain.OperationEvent)
	switch t {
	case domain.EventOperationStart:
		fn = m.hooks.OnOperationStart
	case domain.EventOperationPoll:
		fn = m.hooks.OnOperationPoll
	case domain.EventOperationFinish:
		fn = m.hooks.OnOperationFinish
	}
	if fn == nil {
		return
	}

	ev := &domain.OperationEvent{
		Timestamp:   time.Now(),
		Type:        t,
		Owner:       entry.key.owner,
		OperationID: entry.key.id,
	}
	if t == domain.EventOperationFinish {
		ev.Duration = time.Since(entry.startedAt)
		if reporter, ok := action.(ports.Reporter); ok {
			ev.Status, ev.Outcome, ev.Partials = reporter.Summary()
		}
	}
	fn(ev)
}
