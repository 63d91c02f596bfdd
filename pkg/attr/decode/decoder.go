package decode

import (
	"fmt"
	"os"

	"mercator-hq/attrq/pkg/attr/ast"
	attrErrors "mercator-hq/attrq/pkg/attr/errors"
)

const (
	// DefaultMaxFileSize bounds the size of a single document.
	DefaultMaxFileSize int64 = 10 * 1024 * 1024 // 10MB

	// DefaultMaxDepth bounds attribute nesting, counting the root as depth 1.
	DefaultMaxDepth = 32
)

// Decoder decodes YAML annotation documents into trees.
type Decoder struct {
	maxFileSize int64 // Maximum document size in bytes
	maxDepth    int   // Maximum nesting depth
}

// NewDecoder creates a new decoder with default configuration.
func NewDecoder() *Decoder {
	return &Decoder{
		maxFileSize: DefaultMaxFileSize,
		maxDepth:    DefaultMaxDepth,
	}
}

// WithMaxFileSize sets the maximum document size limit.
func (d *Decoder) WithMaxFileSize(size int64) *Decoder {
	d.maxFileSize = size
	return d
}

// WithMaxDepth sets the maximum nesting depth.
func (d *Decoder) WithMaxDepth(depth int) *Decoder {
	d.maxDepth = depth
	return d
}

// Decode decodes the document at path.
// It returns an error if the file cannot be read, has invalid YAML syntax,
// or contains malformed entries.
func (d *Decoder) Decode(path string) ([]*ast.Node, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, &attrErrors.Error{
			Type:     attrErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("Failed to access file: %v", err),
			Location: ast.Location{File: path},
		}
	}

	if fileInfo.Size() > d.maxFileSize {
		return nil, &attrErrors.Error{
			Type:     attrErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("File size %d exceeds maximum %d bytes", fileInfo.Size(), d.maxFileSize),
			Location: ast.Location{File: path},
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &attrErrors.Error{
			Type:     attrErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("Failed to read file: %v", err),
			Location: ast.Location{File: path},
		}
	}

	return d.DecodeBytes(data, path)
}

// DecodeBytes decodes a document held in memory. sourcePath is recorded in
// node locations and error messages.
func (d *Decoder) DecodeBytes(data []byte, sourcePath string) ([]*ast.Node, error) {
	if int64(len(data)) > d.maxFileSize {
		return nil, &attrErrors.Error{
			Type:     attrErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("Data size %d exceeds maximum %d bytes", len(data), d.maxFileSize),
			Location: ast.Location{File: sourcePath},
		}
	}

	root, err := parseYAMLBytes(data)
	if err != nil {
		return nil, &attrErrors.Error{
			Type:       attrErrors.ErrorTypeSyntax,
			Message:    fmt.Sprintf("YAML parsing failed: %v", err),
			Location:   ast.Location{File: sourcePath, Line: 1, Column: 1},
			Suggestion: "Check YAML syntax (indentation, colons, quotes)",
		}
	}

	b := newBuilder(sourcePath, d.maxDepth)
	nodes := b.buildDocument(root)
	if b.errs.HasErrors() {
		for _, e := range b.errs.Errors {
			e.Context = attrErrors.ExtractContext(data, e.Location, 2)
		}
		return nil, b.errs
	}

	return nodes, nil
}

// DecodeMulti decodes several documents and concatenates their attributes in
// path order.
func (d *Decoder) DecodeMulti(paths []string) ([]*ast.Node, error) {
	if len(paths) == 0 {
		return nil, &attrErrors.Error{
			Type:    attrErrors.ErrorTypeIO,
			Message: "No attribute documents provided",
		}
	}

	var all []*ast.Node
	for _, path := range paths {
		nodes, err := d.Decode(path)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		all = append(all, nodes...)
	}

	return all, nil
}
