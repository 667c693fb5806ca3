package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"gradpath-server/internal/domain/counselling"
)

// Counselling API metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gradpath",
			Subsystem: "counselling_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gradpath",
			Subsystem: "counselling_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Counselling turns
	TurnsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gradpath",
			Subsystem: "counselling_api",
			Name:      "turns_total",
			Help:      "Total counselling turns processed",
		},
	)

	TurnsRateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gradpath",
			Subsystem: "counselling_api",
			Name:      "turns_rate_limited_total",
			Help:      "Counselling turns rejected by the rate limiter",
		},
	)

	TurnsFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gradpath",
			Subsystem: "counselling_api",
			Name:      "turns_fallback_total",
			Help:      "Counselling turns answered by the deterministic fallback",
		},
	)

	ActionsDispatchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gradpath",
			Subsystem: "counselling_api",
			Name:      "actions_dispatched_total",
			Help:      "Counsellor actions executed, by action type",
		},
		[]string{"action"},
	)

	// Reasoning engine call duration
	ReasoningDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gradpath",
			Subsystem: "counselling_api",
			Name:      "reasoning_duration_seconds",
			Help:      "Reasoning engine call duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30},
		},
		[]string{"outcome"},
	)
)

// RecordRequest records an HTTP request with duration
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordReasoningCall records the duration of one engine call
func RecordReasoningCall(outcome string, durationSec float64) {
	ReasoningDuration.WithLabelValues(outcome).Observe(durationSec)
}

// CounsellingMetrics adapts the prometheus counters to the counselling
// service's Metrics interface.
type CounsellingMetrics struct{}

var _ counselling.Metrics = CounsellingMetrics{}

func NewCounsellingMetrics() counselling.Metrics { return CounsellingMetrics{} }

func (CounsellingMetrics) TurnCompleted()   { TurnsTotal.Inc() }
func (CounsellingMetrics) TurnRateLimited() { TurnsRateLimitedTotal.Inc() }
func (CounsellingMetrics) TurnFallback()    { TurnsFallbackTotal.Inc() }

func (CounsellingMetrics) ActionDispatched(action counselling.Action) {
	ActionsDispatchedTotal.WithLabelValues(string(action)).Inc()
}
