package tickwork

import (
	"io"
	"log/slog"

	"github.com/AlexGronaCW/tickwork/pkg/domain"
	"github.com/AlexGronaCW/tickwork/pkg/host"
	"github.com/AlexGronaCW/tickwork/pkg/latent"
	"github.com/AlexGronaCW/tickwork/pkg/ports"
)

// Version is the library version reported by the CLI and the HTTP adapter.
const Version = "0.1.0"

// Re-exported core types, so simple hosts only need this package.
type (
	// Frame registers the durable output slots of a host frame.
	Frame = host.Frame

	// Manager is the poll-driven action manager, ticked by the host loop.
	Manager = host.Manager

	// OperationResult is the status handed back by a finished operation.
	OperationResult = domain.OperationResult

	// Outcome is the coarse success/failure classification of a result.
	Outcome = domain.Outcome

	// Outputs collects the durable destinations of an operation.
	Outputs[Res any] = latent.Outputs[Res]

	// Observer receives streamed partial results on the host goroutine.
	Observer[Req, Res any] = latent.Observer[Req, Res]

	// Operation is the handle returned by Launch.
	Operation[Req, Res any] = latent.Operation[Req, Res]

	// State is the shared handoff object a worker writes through.
	State[Res any] = latent.State[Res]

	// Noop marks operations that produce no result value.
	Noop = latent.Noop
)

// LaunchOption configures a Launch.
type LaunchOption[Req, Res any] = latent.Option[Req, Res]

// WithObserver registers a streaming observer for a launched operation.
func WithObserver[Req, Res any](obs Observer[Req, Res]) LaunchOption[Req, Res] {
	return latent.WithObserver[Req, Res](obs)
}

// WithContinuation sets the callback resumed on the host after the terminal
// commit.
func WithContinuation[Req, Res any](fn func()) LaunchOption[Req, Res] {
	return latent.WithContinuation[Req, Res](fn)
}

// WithOperationID overrides the generated operation identifier.
func WithOperationID[Req, Res any](id string) LaunchOption[Req, Res] {
	return latent.WithOperationID[Req, Res](id)
}

// Success returns the successful OperationResult.
func Success() OperationResult { return domain.Success() }

// Failure builds a failed OperationResult with the given status code.
func Failure(code domain.StatusCode, format string, args ...any) OperationResult {
	return domain.Failure(code, format, args...)
}

// Host bundles a Manager with a Frame: everything a tick loop needs to
// launch and drive threaded operations.
type Host struct {
	manager *host.Manager
	frame   *host.Frame
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
}

// Option defines a functional option for configuring a Host.
type Option func(*Host)

// WithLifecycleHooks registers observability hooks on the manager.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(h *Host) {
		h.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the host.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Host) {
		h.logger = logger
	}
}

// NewHost initializes a Host with a fresh manager and frame.
func NewHost(opts ...Option) *Host {
	h := &Host{}
	for _, opt := range opts {
		opt(h)
	}

	// Keep the manager quiet unless the caller wires a logger.
	if h.logger == nil {
		h.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	h.manager = host.NewManager(
		host.WithLifecycleHooks(h.hooks),
		host.WithLogger(h.logger),
	)
	h.frame = host.NewFrame()
	return h
}

// Manager returns the underlying action manager.
func (h *Host) Manager() *host.Manager { return h.manager }

// Frame returns the host's durable frame.
func (h *Host) Frame() *host.Frame { return h.frame }

// Tick polls every registered operation once and resumes the finished ones.
func (h *Host) Tick() { h.manager.Tick() }

// Active returns the number of operations still in flight.
func (h *Host) Active() int { return h.manager.Active() }

// Shutdown abandons all in-flight operations. Their workers keep running
// to completion but their results are never committed.
func (h *Host) Shutdown() { h.manager.Shutdown() }

// Alloc registers a durable output slot on the host's frame.
func Alloc[T any](h *Host) *T {
	return host.Alloc[T](h.frame)
}

// Launch starts work on a dedicated goroutine and registers a polled
// controller for it with the host's manager. See latent.Launch for the
// full contract.
func Launch[Req, Res any](h *Host, owner string, request Req, outputs Outputs[Res], work func(*State[Res]), opts ...latent.Option[Req, Res]) (*Operation[Req, Res], error) {
	return latent.Launch(h.manager, h.frame, owner, request, outputs, work, opts...)
}

// AsManager exposes the host's manager through the port, for code written
// against ports.ActionManager.
func (h *Host) AsManager() ports.ActionManager { return h.manager }
