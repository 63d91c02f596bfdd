package metrics

import (
	"fmt"
	"time"

	"mercator-hq/attrq/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector owns the Prometheus registry for attrq and gates all recording
// on the Enabled flag of its config.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	queryMetrics *QueryMetrics
}

// NewCollector creates a new metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh registry is created.
//
// Example:
//
//	cfg := &config.MetricsConfig{
//		Enabled:   true,
//		Namespace: "attrq",
//	}
//	collector := metrics.NewCollector(cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}

	return &Collector{
		config:       cfg,
		registry:     registry,
		queryMetrics: NewQueryMetrics(cfg, registry),
	}
}

// Enabled reports whether the collector records anything.
func (c *Collector) Enabled() bool {
	return c != nil && c.config.Enabled
}

// RecordQuery records metrics for a completed query.
//
// Example:
//
//	collector.RecordQuery("value", metrics.OutcomeMiss, 3*time.Microsecond)
func (c *Collector) RecordQuery(operation, outcome string, duration time.Duration) {
	if !c.Enabled() {
		return
	}

	c.queryMetrics.RecordQuery(operation, outcome, duration)
}

// SetLoaded records the size of the current document set.
func (c *Collector) SetLoaded(documents, attributes int) {
	if !c.Enabled() {
		return
	}

	c.queryMetrics.SetLoaded(documents, attributes)
}

// RecordReload records a reload attempt.
func (c *Collector) RecordReload(err error) {
	if !c.Enabled() {
		return
	}

	status := "success"
	if err != nil {
		status = "error"
	}
	c.queryMetrics.RecordReload(status)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes all registered metrics to path in the Prometheus text
// format. The file is replaced atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
