package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys.
const (
	AttrOperation  = "attrq.operation"
	AttrPath       = "attrq.path"
	AttrOutcome    = "attrq.outcome"
	AttrSeparator  = "attrq.separator"
	AttrDocuments  = "attrq.documents"
	AttrAttributes = "attrq.attributes"
	AttrKeys       = "attrq.keys"
)

// SetQueryAttributes sets the operation and path of a query span.
func SetQueryAttributes(span trace.Span, operation, path, separator string) {
	span.SetAttributes(
		attribute.String(AttrOperation, operation),
		attribute.String(AttrPath, path),
		attribute.String(AttrSeparator, separator),
	)
}

// SetOutcome sets the query outcome ("hit" or "miss").
func SetOutcome(span trace.Span, outcome string) {
	span.SetAttributes(attribute.String(AttrOutcome, outcome))
}

// SetLoadAttributes sets document and root attribute counts on a load span.
func SetLoadAttributes(span trace.Span, documents, attributes int) {
	span.SetAttributes(
		attribute.Int(AttrDocuments, documents),
		attribute.Int(AttrAttributes, attributes),
	)
}
