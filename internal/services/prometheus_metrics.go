package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorderInterface defines the contract for recording domain metrics
type MetricsRecorderInterface interface {
	RecordExpenseCreated(category string)
	RecordBudgetCreated(category string)
	RecordAuthEvent(event string)
}

// PrometheusMetrics records domain metrics to the default Prometheus registry.
type PrometheusMetrics struct {
	expensesCreated *prometheus.CounterVec
	budgetsCreated  *prometheus.CounterVec
	authEvents      *prometheus.CounterVec
}

// NewPrometheusMetrics creates and registers the domain metric collectors.
// Register once per process; promauto panics on duplicate registration.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		expensesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_created_total",
				Help: "Total number of expenses created, by category",
			},
			[]string{"category"},
		),
		budgetsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgets_created_total",
				Help: "Total number of budgets created, by category",
			},
			[]string{"category"},
		),
		authEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_events_total",
				Help: "Total number of authentication events, by outcome",
			},
			[]string{"event"},
		),
	}
}

func (m *PrometheusMetrics) RecordExpenseCreated(category string) {
	m.expensesCreated.WithLabelValues(category).Inc()
}

func (m *PrometheusMetrics) RecordBudgetCreated(category string) {
	m.budgetsCreated.WithLabelValues(category).Inc()
}

func (m *PrometheusMetrics) RecordAuthEvent(event string) {
	m.authEvents.WithLabelValues(event).Inc()
}

// NoopMetrics discards all recordings. Used by tests, which would otherwise
// collide on the process-global Prometheus registry.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return NoopMetrics{} }

func (NoopMetrics) RecordExpenseCreated(string) {}
func (NoopMetrics) RecordBudgetCreated(string)  {}
func (NoopMetrics) RecordAuthEvent(string)      {}
