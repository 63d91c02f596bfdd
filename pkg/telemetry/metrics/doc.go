// Package metrics provides Prometheus metrics collection for attrq.
//
// # Overview
//
// The metrics package counts path queries by operation and outcome, times
// them, and tracks the size of the loaded annotation set. Metrics live in a
// private registry and are exported by writing a Prometheus text file, which
// a node_exporter textfile collector can pick up.
//
// # Metrics
//
//   - attrq_queries_total{operation,outcome}: Queries by operation and outcome
//   - attrq_query_duration_seconds{operation}: Query duration
//   - attrq_documents_loaded: Documents in the current load
//   - attrq_attributes_loaded: Root attributes in the current load
//   - attrq_reloads_total{status}: Document reloads by status
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//	collector.RecordQuery("contains", metrics.OutcomeHit, 12*time.Microsecond)
//	if err := collector.WriteTextfile("/var/lib/node_exporter/attrq.prom"); err != nil {
//		return err
//	}
//
// When the config has Enabled false every Record method is a no-op.
package metrics
