package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"mercator-hq/attrq/pkg/attr/ast"
	"mercator-hq/attrq/pkg/attr/match"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is plain text output (default).
	FormatText OutputFormat = "text"
	// FormatJSON is JSON output.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat validates a --format flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", NewConfigError("format", fmt.Sprintf("unknown output format %q (valid: text, json)", s))
	}
}

// ContainsResult is the answer of an existence query.
type ContainsResult struct {
	Path  string `json:"path"`
	Found bool   `json:"found"`
}

// ValueResult is the answer of a value query. Value holds an ast.Literal, or
// the cast Go value when a kind was requested.
type ValueResult struct {
	Path  string `json:"path"`
	Found bool   `json:"found"`
	Kind  string `json:"kind,omitempty"`
	Value any    `json:"value,omitempty"`
}

// PathReport combines both queries for one path; watch prints one per reload.
type PathReport struct {
	Path     string       `json:"path"`
	Contains bool         `json:"contains"`
	Value    *ast.Literal `json:"value,omitempty"`
}

// Formatter formats command output.
type Formatter interface {
	Format(data any) ([]byte, error)
	FormatTo(w io.Writer, data any) error
}

// TextFormatter formats output as plain text.
type TextFormatter struct{}

// Format converts data to text format.
func (f *TextFormatter) Format(data any) ([]byte, error) {
	var sb strings.Builder
	if err := f.FormatTo(&sb, data); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// FormatTo writes data to writer in text format.
//
// Results print bare so shell pipelines can consume them: "true"/"false"
// for existence, the raw value for value queries, and one
// "key = v1, v2" line per flattened key.
func (f *TextFormatter) FormatTo(w io.Writer, data any) error {
	var err error
	switch d := data.(type) {
	case ContainsResult:
		_, err = fmt.Fprintln(w, d.Found)
	case ValueResult:
		if !d.Found {
			return nil
		}
		_, err = fmt.Fprintln(w, rawValue(d.Value))
	case PathReport:
		value := "<none>"
		if d.Value != nil {
			value = d.Value.String()
		}
		_, err = fmt.Fprintf(w, "%s: contains=%t value=%s\n", d.Path, d.Contains, value)
	case *match.AttributeMap:
		for key, values := range d.All() {
			if err = writeMapLine(w, key, values); err != nil {
				return err
			}
		}
	default:
		_, err = fmt.Fprintf(w, "%v\n", data)
	}
	return err
}

func writeMapLine(w io.Writer, key string, values []ast.Literal) error {
	if len(values) == 0 {
		_, err := fmt.Fprintln(w, key)
		return err
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	_, err := fmt.Fprintf(w, "%s = %s\n", key, strings.Join(parts, ", "))
	return err
}

// rawValue renders string literals without quotes.
func rawValue(v any) string {
	if l, ok := v.(ast.Literal); ok {
		return fmt.Sprint(l.Interface())
	}
	return fmt.Sprint(v)
}

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	Indent bool
}

// Format converts data to JSON format.
func (f *JSONFormatter) Format(data any) ([]byte, error) {
	if f.Indent {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}

// FormatTo writes data to writer in JSON format.
func (f *JSONFormatter) FormatTo(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// NewFormatter creates a new formatter for the specified format.
func NewFormatter(format OutputFormat) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	default:
		return &TextFormatter{}
	}
}
