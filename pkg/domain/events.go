package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventOperationStart  EventType = "operation_start"
	EventOperationPoll   EventType = "operation_poll"
	EventOperationFinish EventType = "operation_finish"
)

// OperationEvent describes one lifecycle transition of a latent operation as
// observed by the host action manager.
type OperationEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	Type        EventType `json:"type"`
	Owner       string    `json:"owner"`
	OperationID string    `json:"operation_id"`

	// Finish-only fields.
	Outcome  Outcome       `json:"outcome,omitempty"`
	Status   StatusCode    `json:"status,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	Partials int           `json:"partials,omitempty"`
}

// LifecycleHooks defines callbacks for host observability. All callbacks run
// on the host goroutine during a tick, so they must not block.
type LifecycleHooks struct {
	OnOperationStart  func(*OperationEvent)
	OnOperationPoll   func(*OperationEvent)
	OnOperationFinish func(*OperationEvent)
}
