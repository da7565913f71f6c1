package domain

import "fmt"

// StatusCode identifies the outcome of a collaborator call.
// The zero value is the canonical success sentinel: controllers classify an
// operation by comparing against StatusSuccess and nothing else.
type StatusCode uint32

const (
	// StatusSuccess is the canonical success sentinel.
	StatusSuccess StatusCode = 0

	// StatusCallFailed is the generic failure code for collaborator calls
	// without a more specific classification.
	StatusCallFailed StatusCode = 0x10
	// StatusConfigReadFailed indicates the client config file could not be read.
	StatusConfigReadFailed StatusCode = 0x11
	// StatusConfigParseFailed indicates the client config contents were not valid YAML.
	StatusConfigParseFailed StatusCode = 0x12
	// StatusInstanceReleased indicates a call against a session manager instance
	// that has already been closed.
	StatusInstanceReleased StatusCode = 0x13
	// StatusTokenStoreFailed indicates the token persistence backend rejected a write.
	StatusTokenStoreFailed StatusCode = 0x14

	// StatusWorkerFailed indicates the worker closure itself failed abnormally
	// (panic) rather than reporting a collaborator error.
	StatusWorkerFailed StatusCode = 0x1F
)

// String returns a short identifier for the code, for logs and CLI output.
func (c StatusCode) String() string {
	switch c {
	case StatusSuccess:
		return "success"
	case StatusCallFailed:
		return "call_failed"
	case StatusConfigReadFailed:
		return "config_read_failed"
	case StatusConfigParseFailed:
		return "config_parse_failed"
	case StatusInstanceReleased:
		return "instance_released"
	case StatusTokenStoreFailed:
		return "token_store_failed"
	case StatusWorkerFailed:
		return "worker_failed"
	default:
		return fmt.Sprintf("status(0x%x)", uint32(c))
	}
}

// OperationResult is the final status of one latent operation. It is produced
// exactly once by the worker and committed to the host at terminal time.
type OperationResult struct {
	Code    StatusCode `json:"code"`
	Message string     `json:"message,omitempty"`
}

// OK reports whether the result matches the success sentinel.
func (r OperationResult) OK() bool { return r.Code == StatusSuccess }

// Success returns the canonical success result.
func Success() OperationResult { return OperationResult{Code: StatusSuccess} }

// Failure builds a failure result with a code and human-readable message.
func Failure(code StatusCode, format string, args ...any) OperationResult {
	return OperationResult{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Outcome is the success/failure indicator committed to a host output slot.
// It mirrors the two execution branches a host typically resumes into.
type Outcome int

const (
	// OutcomeSuccess resumes the host on its success branch.
	OutcomeSuccess Outcome = iota
	// OutcomeFailure resumes the host on its failure branch.
	OutcomeFailure
)

// String returns "success" or "failure".
func (o Outcome) String() string {
	if o == OutcomeSuccess {
		return "success"
	}
	return "failure"
}

// OutcomeOf classifies a result into the branch indicator.
func OutcomeOf(r OperationResult) Outcome {
	if r.OK() {
		return OutcomeSuccess
	}
	return OutcomeFailure
}
