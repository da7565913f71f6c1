// Package http exposes a read-only inspection surface for a running host
// over HTTP: the operations currently in flight plus the process metrics,
// so an operator can watch a tick loop from outside.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/AlexGronaCW/tickwork/pkg/host"
)

// Host is the slice of the action manager the server needs. *host.Manager
// satisfies it.
type Host interface {
	Active() int
	Operations() []host.OperationInfo
}

// Server serves the inspection endpoints for a Host.
type Server struct {
	host    Host
	metrics http.Handler
	logger  *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithMetricsHandler mounts the given handler at GET /metrics. Typically
// promhttp.HandlerFor over the registry the observability hooks feed.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// NewServer creates a Server around the given host.
func NewServer(h Host, opts ...Option) *Server {
	s := &Server{
		host:   h,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.GetHealth)
	r.Get("/operations", s.ListOperations)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return r
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// operationsResponse is the payload for GET /operations.
type operationsResponse struct {
	Active     int                  `json:"active"`
	Operations []host.OperationInfo `json:"operations"`
}

// ListOperations handles the GET /operations request. It reports the
// operations registered with the host at the time of the call.
func (s *Server) ListOperations(w http.ResponseWriter, r *http.Request) {
	ops := s.host.Operations()
	if ops == nil {
		ops = []host.OperationInfo{}
	}

	resp := operationsResponse{
		Active:     s.host.Active(),
		Operations: ops,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("ListOperations response encode failed", "error", err)
	}
}
