package tournamentmetrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tournament"

// PrometheusMetrics exports tournament metrics through a Prometheus registry.
type PrometheusMetrics struct {
	attempts          *prometheus.CounterVec
	successes         *prometheus.CounterVec
	failures          *prometheus.CounterVec
	duration          *prometheus.HistogramVec
	matchesRecorded   prometheus.Counter
	pairingsGenerated prometheus.Counter
}

// NewPrometheus registers the tournament collectors on reg.
func NewPrometheus(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	labels := []string{"operation", "service"}
	m := &PrometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_attempts_total",
			Help:      "Service operations started.",
		}, labels),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_success_total",
			Help:      "Service operations that completed without an infrastructure error.",
		}, labels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Service operations that failed with an infrastructure error or panic.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, labels),
		matchesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_recorded_total",
			Help:      "Match results committed to the store.",
		}),
		pairingsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pairings_generated_total",
			Help:      "Pairings produced for upcoming rounds.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.attempts, m.successes, m.failures, m.duration, m.matchesRecorded, m.pairingsGenerated,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register tournament metric: %w", err)
		}
	}

	return m, nil
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation, service string) {
	m.attempts.WithLabelValues(operation, service).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation, service string) {
	m.successes.WithLabelValues(operation, service).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation, service string) {
	m.failures.WithLabelValues(operation, service).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation, service string, duration time.Duration) {
	m.duration.WithLabelValues(operation, service).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordMatchesRecorded(_ context.Context, count int) {
	m.matchesRecorded.Add(float64(count))
}

func (m *PrometheusMetrics) RecordPairingsGenerated(_ context.Context, count int) {
	m.pairingsGenerated.Add(float64(count))
}
