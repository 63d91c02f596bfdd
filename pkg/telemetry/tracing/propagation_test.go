package tracing

import (
	"context"
	"testing"

	"mercator-hq/attrq/pkg/config"

	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

const testTraceParent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

func TestExtractFromEnv(t *testing.T) {
	t.Setenv(EnvTraceParent, testTraceParent)
	t.Setenv(EnvTraceState, "congo=t61rcWkgMzE")

	ctx := ExtractFromEnv(context.Background())

	if got := TraceID(ctx); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("TraceID() = %q, want %q", got, "4bf92f3577b34da6a3ce929d0e0e4736")
	}
}

func TestExtractFromEnv_Missing(t *testing.T) {
	t.Setenv(EnvTraceParent, "")

	if got := TraceID(ExtractFromEnv(context.Background())); got != "" {
		t.Errorf("TraceID() = %q without TRACEPARENT, want empty", got)
	}
}

func TestExtractFromEnv_ChildSpan(t *testing.T) {
	t.Setenv(EnvTraceParent, testTraceParent)

	recorder := tracetest.NewSpanRecorder()
	tracer, err := NewWithProcessor(&config.TracingConfig{}, recorder)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(ExtractFromEnv(context.Background()), "attrq.map")
	span.End()

	s := recorder.Ended()[0]
	if s.SpanContext().TraceID().String() != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("span trace ID = %s, want the CI trace", s.SpanContext().TraceID())
	}
	if s.Parent().SpanID().String() != "00f067aa0ba902b7" {
		t.Errorf("parent span ID = %s, want 00f067aa0ba902b7", s.Parent().SpanID())
	}
}

func TestInjectToMap_RoundTrip(t *testing.T) {
	ctx := ExtractFromMap(context.Background(), map[string]string{"traceparent": testTraceParent})

	carrier := map[string]string{}
	InjectToMap(ctx, carrier)

	if carrier["traceparent"] != testTraceParent {
		t.Errorf("traceparent = %q, want %q", carrier["traceparent"], testTraceParent)
	}
}
