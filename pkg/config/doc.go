// Package config provides configuration management for attrq.
//
// Configuration is read from an optional YAML file, completed with defaults,
// overridden from the environment, and validated before use.
//
// # Configuration Loading
//
//  1. Defaults only (no file):
//     cfg := config.DefaultConfig()
//
//  2. From a YAML file:
//     cfg, err := config.LoadConfig("attrq.yaml")
//
//  3. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("attrq.yaml")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention ATTRQ_SECTION_FIELD:
//
//   - ATTRQ_QUERY_SEPARATOR overrides query.separator
//   - ATTRQ_LOGGING_LEVEL overrides logging.level
//   - ATTRQ_METRICS_ENABLED overrides metrics.enabled
//   - ATTRQ_TRACING_ENDPOINT overrides tracing.endpoint
//   - ATTRQ_WATCH_RELOAD_SCHEDULE overrides watch.reload_schedule
//
// Environment variables always take precedence over file-based configuration.
//
// # Example File
//
//	query:
//	  separator: "::"
//	decode:
//	  max_depth: 16
//	logging:
//	  level: debug
//	  format: text
//	metrics:
//	  enabled: true
//	  textfile_path: /var/lib/node_exporter/attrq.prom
//	tracing:
//	  enabled: true
//	  endpoint: otel-collector:4317
//	  insecure: true
//	watch:
//	  debounce_interval: 250ms
//	  reload_schedule: "@every 1m"
package config
