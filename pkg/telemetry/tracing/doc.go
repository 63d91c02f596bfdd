// Package tracing provides OpenTelemetry tracing for attrq.
//
// # Overview
//
// Document loads and path queries run inside spans. When tracing is
// disabled a no-op tracer is used and spans cost next to nothing. When
// enabled, spans are exported over OTLP gRPC to a collector.
//
// # Usage
//
//	tracer, err := tracing.New(&cfg.Tracing)
//	if err != nil {
//		return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	ctx, span := tracer.Start(ctx, "attrq.contains")
//	tracing.SetQueryAttributes(span, "contains", "level0.level1", ".")
//	defer span.End()
//
// # Parent Context
//
// A CI job that exports TRACEPARENT (and optionally TRACESTATE) gets attrq's
// spans attached to its own trace:
//
//	ctx = tracing.ExtractFromEnv(ctx)
//
// # Sampling
//
//   - always: keep every trace
//   - never: drop every trace
//   - ratio: keep sample_ratio of traces, by trace ID
//
// All samplers respect the parent's sampling decision.
package tracing
