package tracing

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/propagation"
)

// Environment variables carrying W3C trace context into a process.
const (
	EnvTraceParent = "TRACEPARENT"
	EnvTraceState  = "TRACESTATE"
)

var envPropagator = propagation.TraceContext{}

// ExtractFromEnv returns ctx carrying the remote span context found in
// TRACEPARENT and TRACESTATE. Without a valid TRACEPARENT ctx is returned
// unchanged.
func ExtractFromEnv(ctx context.Context) context.Context {
	return ExtractFromMap(ctx, map[string]string{
		"traceparent": os.Getenv(EnvTraceParent),
		"tracestate":  os.Getenv(EnvTraceState),
	})
}

// ExtractFromMap extracts W3C trace context from a string map.
func ExtractFromMap(ctx context.Context, carrier map[string]string) context.Context {
	return envPropagator.Extract(ctx, propagation.MapCarrier(carrier))
}

// InjectToMap writes the span context of ctx into carrier as
// traceparent/tracestate entries.
func InjectToMap(ctx context.Context, carrier map[string]string) {
	envPropagator.Inject(ctx, propagation.MapCarrier(carrier))
}
