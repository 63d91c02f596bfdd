package logging

import (
	"context"
	"io"
	"testing"
)

// BenchmarkLogger_Info_Enabled measures logging cost when the level is enabled.
func BenchmarkLogger_Info_Enabled(b *testing.B) {
	logger, err := New(Config{Level: "info", Format: "json", Writer: io.Discard})
	if err != nil {
		b.Fatalf("Failed to create logger: %v", err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message", "key", "value", "count", i)
	}
}

// BenchmarkLogger_Debug_Disabled measures the fast path for filtered records.
func BenchmarkLogger_Debug_Disabled(b *testing.B) {
	logger, err := New(Config{Level: "info", Format: "json", Writer: io.Discard})
	if err != nil {
		b.Fatalf("Failed to create logger: %v", err)
	}
	ctx := WithRunID(context.Background(), "run")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.DebugContext(ctx, "test message", "count", i)
	}
}
