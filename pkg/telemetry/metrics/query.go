package metrics

import (
	"time"

	"mercator-hq/attrq/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Query outcomes.
const (
	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
)

// QueryMetrics tracks metrics related to path queries.
//
// Metrics:
//   - attrq_queries_total: Total queries by operation and outcome
//   - attrq_query_duration_seconds: Query duration by operation
//   - attrq_documents_loaded: Number of loaded documents
//   - attrq_attributes_loaded: Number of loaded root attributes
//   - attrq_reloads_total: Document reloads by status
type QueryMetrics struct {
	queriesTotal *prometheus.CounterVec

	queryDuration *prometheus.HistogramVec

	documentsLoaded prometheus.Gauge

	attributesLoaded prometheus.Gauge

	reloadsTotal *prometheus.CounterVec
}

// NewQueryMetrics creates and registers query metrics with the provided registry.
func NewQueryMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *QueryMetrics {
	buckets := cfg.DurationBuckets
	if len(buckets) == 0 {
		buckets = config.DefaultDurationBuckets
	}

	qm := &QueryMetrics{
		queriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "queries_total",
				Help:      "Total number of attribute path queries",
			},
			[]string{"operation", "outcome"},
		),

		queryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "query_duration_seconds",
				Help:      "Duration of attribute path queries in seconds",
				Buckets:   buckets,
			},
			[]string{"operation"},
		),

		documentsLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "documents_loaded",
				Help:      "Number of annotation documents currently loaded",
			},
		),

		attributesLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "attributes_loaded",
				Help:      "Number of root attributes currently loaded",
			},
		),

		reloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "reloads_total",
				Help:      "Total number of document reloads",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		qm.queriesTotal,
		qm.queryDuration,
		qm.documentsLoaded,
		qm.attributesLoaded,
		qm.reloadsTotal,
	)

	return qm
}

// RecordQuery records one query.
//
// Parameters:
//   - operation: "contains", "value" or "map"
//   - outcome: OutcomeHit, OutcomeMiss or OutcomeError
//   - duration: Time taken by the query
func (qm *QueryMetrics) RecordQuery(operation, outcome string, duration time.Duration) {
	qm.queriesTotal.WithLabelValues(operation, outcome).Inc()
	qm.queryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetLoaded sets the loaded document and attribute gauges.
func (qm *QueryMetrics) SetLoaded(documents, attributes int) {
	qm.documentsLoaded.Set(float64(documents))
	qm.attributesLoaded.Set(float64(attributes))
}

// RecordReload records a reload attempt with status "success" or "error".
func (qm *QueryMetrics) RecordReload(status string) {
	qm.reloadsTotal.WithLabelValues(status).Inc()
}
