package latent

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AlexGronaCW/tickwork/internal/logging"
	"github.com/AlexGronaCW/tickwork/pkg/domain"
	"github.com/AlexGronaCW/tickwork/pkg/ports"
)

// Noop is the result type for operations whose only outputs are status and
// outcome.
type Noop struct{}

// Outputs identifies the host-owned destinations for the terminal commit.
// Each pointer should be a slot allocated from the invocation's durable
// frame; anything else (including nil for an ignored output) is redirected
// to the discard slot at construction.
type Outputs[Res any] struct {
	Status  *domain.OperationResult
	Outcome *domain.Outcome
	Result  *Res
}

// Operation is the caller-facing handle returned by Launch.
type Operation[Req, Res any] struct {
	controller *Controller[Req, Res]
}

// ID returns the operation identifier used for registration.
func (o *Operation[Req, Res]) ID() string { return o.controller.id }

// Done returns a channel closed when the worker has finished. The terminal
// commit and observer notification still happen on the host's next poll.
func (o *Operation[Req, Res]) Done() <-chan struct{} { return o.controller.state.Done() }

// Option configures a Launch.
type Option[Req, Res any] func(*launchConfig[Req, Res])

type launchConfig[Req, Res any] struct {
	operationID  string
	observer     Observer[Req, Res]
	continuation func()
	logger       *slog.Logger
}

// WithObserver registers a streaming observer. The partial-result queue is
// created only when this option is present; without it the worker's Stream
// calls are no-ops and no dispatch work happens on polls.
func WithObserver[Req, Res any](obs Observer[Req, Res]) Option[Req, Res] {
	return func(c *launchConfig[Req, Res]) {
		c.observer = obs
	}
}

// WithContinuation sets the host callback scheduled after the terminal
// commit, resuming whatever the host suspended while waiting.
func WithContinuation[Req, Res any](fn func()) Option[Req, Res] {
	return func(c *launchConfig[Req, Res]) {
		c.continuation = fn
	}
}

// WithOperationID overrides the generated operation identifier.
func WithOperationID[Req, Res any](id string) Option[Req, Res] {
	return func(c *launchConfig[Req, Res]) {
		c.operationID = id
	}
}

// WithLogger configures a logger for the controller.
func WithLogger[Req, Res any](logger *slog.Logger) Option[Req, Res] {
	return func(c *launchConfig[Req, Res]) {
		c.logger = logger
	}
}

// Launch wires up one latent operation: it resolves the output destinations
// against the durable frame, builds the controller and its shared State,
// registers with the host's action manager keyed by (owner, operation ID),
// and starts the worker goroutine, all before returning. The first host
// poll already observes a running operation; a registered action with no
// worker behind it would leave the host polling forever.
//
// The worker closure runs exactly once on its dedicated goroutine. It must
// populate the State's status and result before returning and may stream
// partial results at any point. A panic inside the closure is captured as a
// StatusWorkerFailed result and still flows through the normal terminal
// commit, so the host observes an explicit failure rather than a hang.
func Launch[Req, Res any](
	mgr ports.ActionManager,
	frame ports.DurableFrame,
	owner string,
	request Req,
	outputs Outputs[Res],
	work func(*State[Res]),
	opts ...Option[Req, Res],
) (*Operation[Req, Res], error) {
	cfg := launchConfig[Req, Res]{
		operationID: uuid.NewString(),
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	state := newState[Res](cfg.observer != nil)

	c := &Controller[Req, Res]{
		owner:        owner,
		id:           cfg.operationID,
		request:      request,
		state:        state,
		disp:         dispatcher[Req, Res]{observer: cfg.observer, request: request},
		continuation: cfg.continuation,
		outStatus:    Resolve(frame, outputs.Status),
		outOutcome:   Resolve(frame, outputs.Outcome),
		outResult:    Resolve(frame, outputs.Result),
		startedAt:    time.Now(),
		logger:       cfg.logger,
	}

	if err := mgr.Register(owner, c.id, c); err != nil {
		return nil, fmt.Errorf("failed to register operation %s: %w", c.id, err)
	}
	c.phase = PhaseRunning

	go func() {
		defer func() {
			if r := recover(); r != nil {
				state.SetStatus(domain.Failure(domain.StatusWorkerFailed, "worker panic: %v", r))
			}
			state.finish()
		}()
		work(state)
	}()

	cfg.logger.Debug("operation launched", "owner", owner, "operation_id", c.id, "streaming", cfg.observer != nil)

	return &Operation[Req, Res]{controller: c}, nil
}
