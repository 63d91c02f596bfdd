// Package telemetry groups observability for attrq.
//
// # Components
//
//   - logging: Structured logging over log/slog with run and document context
//   - metrics: Prometheus query metrics exported to a text file
//   - tracing: OpenTelemetry spans for loads and queries, exported over OTLP
package telemetry
