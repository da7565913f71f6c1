package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/AlexGronaCW/tickwork/pkg/domain"
)

// Metrics holds the Prometheus collectors for latent operations.
type Metrics struct {
	started  *prometheus.CounterVec
	finished *prometheus.CounterVec
	partials prometheus.Counter
	duration prometheus.Histogram
	active   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with the given
// registerer (use prometheus.DefaultRegisterer for the default registry).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		started: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tickwork_operations_started_total",
				Help: "Total number of latent operations launched",
			},
			[]string{"owner"},
		),
		finished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tickwork_operations_finished_total",
				Help: "Total number of latent operations completed",
			},
			[]string{"owner", "outcome"},
		),
		partials: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tickwork_partial_results_total",
				Help: "Total number of streamed partial results dispatched",
			},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "tickwork_operation_duration_seconds",
				Help: "Wall time from launch to terminal commit",
			},
		),
		active: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tickwork_operations_active",
				Help: "Number of operations currently in the poll set",
			},
		),
	}

	reg.MustRegister(m.started, m.finished, m.partials, m.duration, m.active)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors. Pass the result to
// host.WithLifecycleHooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnOperationStart: func(e *domain.OperationEvent) {
			m.started.WithLabelValues(e.Owner).Inc()
			m.active.Inc()
		},
		OnOperationFinish: func(e *domain.OperationEvent) {
			m.finished.WithLabelValues(e.Owner, e.Outcome.String()).Inc()
			m.partials.Add(float64(e.Partials))
			m.duration.Observe(e.Duration.Seconds())
			m.active.Dec()
		},
	}
}
