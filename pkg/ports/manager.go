package ports

import "github.com/AlexGronaCW/tickwork/pkg/domain"

// ResponseSink is handed to an action on every poll. Finish signals terminal
// completion exactly once; the continuation is scheduled to run on the host
// goroutine after the action has been removed from the poll set.
type ResponseSink interface {
	Finish(continuation func())
}

// PollingAction is the contract between the host action manager and a
// registered latent operation. Poll is invoked on the host goroutine at every
// tick and must never block: it either observes "not yet done" and returns,
// or performs its terminal commit and calls sink.Finish in the same poll.
type PollingAction interface {
	Poll(sink ResponseSink)
}

// ActionManager registers latent operations into the host's poll loop,
// keyed by (owner, operationID).
type ActionManager interface {
	// Register adds the action to the poll set. It returns
	// domain.ErrDuplicateOperation when the (owner, operationID) pair is
	// already registered, and domain.ErrManagerClosed after shutdown.
	Register(owner, operationID string, action PollingAction) error
}

// Reporter is optionally implemented by polling actions that can summarize
// their outcome. The host manager uses it to enrich finish events for
// lifecycle hooks; actions without it still complete normally.
type Reporter interface {
	Summary() (status domain.StatusCode, outcome domain.Outcome, partials int)
}

// DurableFrame is the host storage introspection surface: the per-invocation
// block of output slots guaranteed valid until the operation completes. It is
// consumed only by the output safety resolver.
type DurableFrame interface {
	// Owns reports whether the given reference is a slot allocated from this
	// frame and therefore safe for deferred writes at poll time.
	Owns(slot any) bool

	// SlotCount returns the number of live slots. Implausible values (a frame
	// that cannot hold storage) indicate a broken hosting assumption.
	SlotCount() int
}
