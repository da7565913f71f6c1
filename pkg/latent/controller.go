package latent

import (
	"log/slog"
	"time"

	"github.com/AlexGronaCW/tickwork/pkg/domain"
	"github.com/AlexGronaCW/tickwork/pkg/ports"
)

// Phase is the controller lifecycle. Phases only move forward; a completed
// controller is removed from the host poll set and never re-entered.
type Phase int

const (
	// PhaseCreated means outputs are resolved but the worker has not been
	// launched yet. A controller must never be polled in this phase.
	PhaseCreated Phase = iota
	// PhaseRunning means the worker goroutine is (or was) executing.
	PhaseRunning
	// PhaseCompleted means the terminal commit has happened.
	PhaseCompleted
)

// Controller drives one latent operation through its lifecycle. It is
// exclusively owned by the host's action manager once registered: every
// method runs on the host goroutine, and the only thing it shares with the
// worker is the State handoff object.
type Controller[Req, Res any] struct {
	owner string
	id    string

	request      Req
	state        *State[Res]
	disp         dispatcher[Req, Res]
	continuation func()

	// Resolved output destinations: either frame-owned slots or the shared
	// discard slot, decided once at construction.
	outStatus  *domain.OperationResult
	outOutcome *domain.Outcome
	outResult  *Res

	phase     Phase
	startedAt time.Time
	logger    *slog.Logger
}

// ID returns the operation identifier the controller was registered under.
func (c *Controller[Req, Res]) ID() string { return c.id }

// Owner returns the registering owner key.
func (c *Controller[Req, Res]) Owner() string { return c.owner }

// CurrentPhase returns the current lifecycle phase.
func (c *Controller[Req, Res]) CurrentPhase() Phase { return c.phase }

// Poll advances the operation by one host tick. While the worker is still
// running it drains queued partials and returns without blocking. On the
// poll that first observes completion it performs the full terminal
// sequence: final drain, output commit, outcome classification, and exactly
// one Finish call on the sink.
func (c *Controller[Req, Res]) Poll(sink ports.ResponseSink) {
	switch c.phase {
	case PhaseCreated:
		// Launch is required to start the worker before returning control;
		// a poll in this phase means the factory contract was bypassed.
		panic("latent: controller polled before its worker was launched")
	case PhaseCompleted:
		// The host removes a finished controller from its poll set, so a
		// poll here indicates a broken action manager.
		panic("latent: controller polled after completion")
	}

	if !c.state.completed() {
		c.disp.drain(c.state, false)
		return
	}

	c.disp.drain(c.state, true)

	*c.outResult = c.state.result
	*c.outStatus = c.state.status
	*c.outOutcome = domain.OutcomeOf(c.state.status)

	c.phase = PhaseCompleted
	c.logger.Debug("operation completed",
		"owner", c.owner,
		"operation_id", c.id,
		"status", c.state.status.Code.String(),
		"partials", c.disp.delivered,
		"elapsed", time.Since(c.startedAt),
	)

	sink.Finish(c.continuation)
}

// Summary describes the finished operation for host lifecycle hooks.
func (c *Controller[Req, Res]) Summary() (domain.StatusCode, domain.Outcome, int) {
	return c.state.status.Code, domain.OutcomeOf(c.state.status), c.disp.delivered
}
