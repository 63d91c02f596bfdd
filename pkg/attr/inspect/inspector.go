package inspect

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"mercator-hq/attrq/pkg/attr/ast"
	"mercator-hq/attrq/pkg/attr/decode"
	attrErrors "mercator-hq/attrq/pkg/attr/errors"
	"mercator-hq/attrq/pkg/attr/match"
	"mercator-hq/attrq/pkg/config"
	"mercator-hq/attrq/pkg/telemetry/logging"
	"mercator-hq/attrq/pkg/telemetry/metrics"
	"mercator-hq/attrq/pkg/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Query operation names used in logs and metric labels.
const (
	OpContains = "contains"
	OpValue    = "value"
	OpMap      = "map"
)

// Inspector answers path queries over loaded annotation documents.
// It is safe for concurrent use.
type Inspector struct {
	decoder   *decode.Decoder
	logger    *logging.Logger
	metrics   *metrics.Collector
	tracer    *tracing.Tracer
	separator string

	mu    sync.RWMutex
	paths []string
	nodes []*ast.Node
}

// New creates an Inspector from cfg. logger and collector may be nil.
func New(cfg *config.Config, logger *logging.Logger, collector *metrics.Collector) *Inspector {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.Nop()
	}

	separator := cfg.Query.Separator
	if separator == "" {
		separator = ast.DefaultSeparator
	}

	decoder := decode.NewDecoder()
	if cfg.Decode.MaxFileSize > 0 {
		decoder.WithMaxFileSize(cfg.Decode.MaxFileSize)
	}
	if cfg.Decode.MaxDepth > 0 {
		decoder.WithMaxDepth(cfg.Decode.MaxDepth)
	}

	return &Inspector{
		decoder:   decoder,
		logger:    logger,
		metrics:   collector,
		tracer:    tracing.Noop(),
		separator: separator,
	}
}

// WithTracer sets the tracer used for load and query spans.
func (in *Inspector) WithTracer(t *tracing.Tracer) *Inspector {
	if t != nil {
		in.tracer = t
	}
	return in
}

// Separator returns the separator used to split query paths and join map keys.
func (in *Inspector) Separator() string {
	return in.separator
}

// Load decodes the documents at paths and replaces the loaded set.
// On error the previous set is kept.
func (in *Inspector) Load(ctx context.Context, paths []string) (err error) {
	start := time.Now()

	ctx, span := in.tracer.Start(ctx, "attrq.load")
	defer func() {
		tracing.SetStatus(span, err)
		span.End()
	}()

	if len(paths) == 0 {
		return &attrErrors.Error{
			Type:    attrErrors.ErrorTypeIO,
			Message: "No attribute documents provided",
		}
	}

	var nodes []*ast.Node
	for _, path := range paths {
		docCtx := logging.WithDocument(ctx, path)

		decoded, err := in.decoder.Decode(path)
		if err != nil {
			in.logger.ErrorContext(docCtx, "Failed to decode document", "error", err)
			return fmt.Errorf("failed to decode %s: %w", path, err)
		}

		in.logger.DebugContext(docCtx, "Document decoded", "attributes", len(decoded))
		nodes = append(nodes, decoded...)
	}

	in.mu.Lock()
	in.paths = slices.Clone(paths)
	in.nodes = nodes
	in.mu.Unlock()

	in.metrics.SetLoaded(len(paths), len(nodes))
	tracing.SetLoadAttributes(span, len(paths), len(nodes))

	in.logger.InfoContext(ctx, "Documents loaded",
		"documents", len(paths),
		"attributes", len(nodes),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// Reload re-reads the documents given to the last successful Load.
func (in *Inspector) Reload(ctx context.Context) error {
	in.mu.RLock()
	paths := slices.Clone(in.paths)
	in.mu.RUnlock()

	if len(paths) == 0 {
		return &attrErrors.Error{
			Type:    attrErrors.ErrorTypeIO,
			Message: "Nothing to reload: no documents loaded",
		}
	}

	err := in.Load(ctx, paths)
	in.metrics.RecordReload(err)
	return err
}

// Paths returns the documents of the current load.
func (in *Inspector) Paths() []string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return slices.Clone(in.paths)
}

// Nodes returns the loaded root attributes in document order.
func (in *Inspector) Nodes() []*ast.Node {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return slices.Clone(in.nodes)
}

// Contains reports whether path names a bare marker in any loaded tree.
func (in *Inspector) Contains(ctx context.Context, path string) bool {
	start := time.Now()
	ctx, span := in.startQuery(ctx, OpContains, path)
	defer span.End()

	found := match.ContainsAttribute(in.Nodes(), ast.ParsePath(path, in.separator))

	in.record(ctx, span, OpContains, path, found, start)
	return found
}

// Value returns the first literal bound at path.
func (in *Inspector) Value(ctx context.Context, path string) (ast.Literal, bool) {
	start := time.Now()
	ctx, span := in.startQuery(ctx, OpValue, path)
	defer span.End()

	value, found := match.GetAttributeValue(in.Nodes(), ast.ParsePath(path, in.separator))

	in.record(ctx, span, OpValue, path, found, start)
	return value, found
}

// Map flattens every loaded tree into an ordered attribute map.
func (in *Inspector) Map(ctx context.Context) *match.AttributeMap {
	start := time.Now()
	ctx, span := in.startQuery(ctx, OpMap, "")
	defer span.End()

	m := match.GetAttributeMap(in.Nodes(), in.separator)
	span.SetAttributes(attribute.Int(tracing.AttrKeys, m.Len()))

	in.record(ctx, span, OpMap, "", true, start)
	return m
}

// Suggest returns a "Did you mean" hint for a path that missed, or "" when
// no flattened key is close.
func (in *Inspector) Suggest(path string) string {
	keys := match.GetAttributeMap(in.Nodes(), in.separator).Keys()
	return attrErrors.SuggestPath(path, keys)
}

func (in *Inspector) startQuery(ctx context.Context, op, path string) (context.Context, trace.Span) {
	ctx, span := in.tracer.Start(ctx, "attrq."+op)
	tracing.SetQueryAttributes(span, op, path, in.separator)
	return ctx, span
}

func (in *Inspector) record(ctx context.Context, span trace.Span, op, path string, found bool, start time.Time) {
	elapsed := time.Since(start)

	outcome := metrics.OutcomeHit
	if !found {
		outcome = metrics.OutcomeMiss
	}
	in.metrics.RecordQuery(op, outcome, elapsed)
	tracing.SetOutcome(span, outcome)

	in.logger.DebugContext(ctx, "Query evaluated",
		"operation", op,
		"path", path,
		"outcome", outcome,
		"duration_us", elapsed.Microseconds(),
	)
}
