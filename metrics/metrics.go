package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// CheckInsTotal counts processed check-ins labeled by resulting risk level.
	CheckInsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cropwatch",
		Subsystem: "engine",
		Name:      "checkins_total",
		Help:      "Total number of weekly check-ins assessed, labeled by risk level.",
	}, []string{"risk_level"})

	// WeeklyRecordsTotal counts processed weekly field records by risk level.
	WeeklyRecordsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cropwatch",
		Subsystem: "engine",
		Name:      "weekly_records_total",
		Help:      "Total number of weekly field records analyzed, labeled by risk level.",
	}, []string{"risk_level"})

	// AlertsEmittedTotal counts alerts emitted by either engine, by severity.
	AlertsEmittedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cropwatch",
		Subsystem: "engine",
		Name:      "alerts_emitted_total",
		Help:      "Total number of alerts emitted by the risk engines, labeled by severity.",
	}, []string{"severity"})

	// AssessmentDurationSeconds is end-to-end time per check-in assessment,
	// including persistence.
	AssessmentDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cropwatch",
		Subsystem: "engine",
		Name:      "assessment_duration_seconds",
		Help:      "End-to-end time to assess and persist one check-in.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	})

	// WeatherLookupErrorsTotal counts failed weather provider calls. Lookups
	// are best-effort; a failure only disables the weather multipliers.
	WeatherLookupErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cropwatch",
		Subsystem: "engine",
		Name:      "weather_lookup_errors_total",
		Help:      "Total number of failed weather provider lookups.",
	})

	// SuggestionErrorsTotal counts failed suggestion-model calls.
	SuggestionErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cropwatch",
		Subsystem: "engine",
		Name:      "suggestion_errors_total",
		Help:      "Total number of failed suggestion model calls.",
	})

	// AlertPublishErrorsTotal counts failed RabbitMQ alert publishes.
	AlertPublishErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cropwatch",
		Subsystem: "engine",
		Name:      "alert_publish_errors_total",
		Help:      "Total number of failed alert publishes to RabbitMQ.",
	})

	// WebSocketClients is the current number of connected alert stream clients.
	WebSocketClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "cropwatch",
		Subsystem: "engine",
		Name:      "websocket_clients",
		Help:      "Current number of connected alert stream WebSocket clients.",
	})
)

// Register registers the service metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			CheckInsTotal,
			WeeklyRecordsTotal,
			AlertsEmittedTotal,
			AssessmentDurationSeconds,
			WeatherLookupErrorsTotal,
			SuggestionErrorsTotal,
			AlertPublishErrorsTotal,
			WebSocketClients,
		)
	})
}
