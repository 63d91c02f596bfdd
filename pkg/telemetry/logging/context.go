package logging

import (
	"context"
)

// Context keys for common log fields.
type contextKey string

const (
	// RunIDKey is the context key for the CLI run identifier.
	RunIDKey contextKey = "run_id"

	// DocumentKey is the context key for the annotation document being processed.
	DocumentKey contextKey = "document"
)

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID retrieves the run ID from the context.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// WithDocument adds a document path to the context.
func WithDocument(ctx context.Context, document string) context.Context {
	return context.WithValue(ctx, DocumentKey, document)
}

// GetDocument retrieves the document path from the context.
func GetDocument(ctx context.Context) string {
	if document, ok := ctx.Value(DocumentKey).(string); ok {
		return document
	}
	return ""
}

// extractContextFields extracts common fields from context for logging.
// Returns a slice of key-value pairs suitable for logger.With().
func extractContextFields(ctx context.Context) []any {
	var fields []any

	if runID := GetRunID(ctx); runID != "" {
		fields = append(fields, "run_id", runID)
	}
	if document := GetDocument(ctx); document != "" {
		fields = append(fields, "document", document)
	}

	return fields
}
