// Package logging provides structured logging for attrq.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - Structured logging with JSON, text, and console formats
//   - Context-aware logging with run IDs and document names
//   - Configurable log levels (debug, info, warn, error)
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logger.Info("Documents loaded",
//	    "documents", 2,
//	    "attributes", 14,
//	)
//
//	// Context-aware logging
//	ctx := logging.WithRunID(ctx, uuid.New().String())
//	logger.InfoContext(ctx, "Query finished")  // Includes run_id automatically
//
// The CLI writes logs to stderr so query results on stdout stay machine-readable.
package logging
