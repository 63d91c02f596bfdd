package errors

import (
	"fmt"
	"strings"

	"mercator-hq/attrq/pkg/attr/ast"
)

// ErrorType names the stage that produced an Error.
type ErrorType string

const (
	// ErrorTypeSyntax: the document is not valid YAML.
	ErrorTypeSyntax ErrorType = "syntax"
	// ErrorTypeStructural: valid YAML that does not describe an attribute tree.
	ErrorTypeStructural ErrorType = "structural"
	// ErrorTypeIO: the document could not be read.
	ErrorTypeIO ErrorType = "io"
	// ErrorTypeQuery: a path matched nothing in the loaded trees.
	ErrorTypeQuery ErrorType = "query"
)

// Error is a located problem in an attribute document, or a query miss.
//
// Rendered, it reads like a compiler diagnostic:
//
//	attrs.yaml:7:9: structural: Argument "level1" has both 'value' and 'args'
//	   6 |       - name: level1
//	-> 7 |         value: "hi"
//	     |         ^
//	  hint: Keep 'value' for a name-value argument or 'args' for a nested attribute
type Error struct {
	Type       ErrorType
	Message    string
	Location   ast.Location
	Context    string // source excerpt, see ExtractContext
	Suggestion string
}

func (e *Error) Error() string {
	var sb strings.Builder

	if e.Location.IsValid() {
		sb.WriteString(e.Location.String())
		sb.WriteString(": ")
	}
	fmt.Fprintf(&sb, "%s: %s", e.Type, e.Message)

	if e.Context != "" {
		sb.WriteByte('\n')
		sb.WriteString(strings.TrimRight(e.Context, "\n"))
	}
	if e.Suggestion != "" {
		sb.WriteString("\n  hint: ")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// NewQueryError reports that path matched nothing. suggestion may be empty.
func NewQueryError(path, suggestion string) *Error {
	return &Error{
		Type:       ErrorTypeQuery,
		Message:    fmt.Sprintf("no match for %q", path),
		Suggestion: suggestion,
	}
}

// ErrorList collects every problem found while decoding one document.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates an empty list.
func NewErrorList() *ErrorList {
	return &ErrorList{}
}

// Add appends err.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError appends a new error at location.
func (el *ErrorList) AddError(errType ErrorType, message string, location ast.Location) {
	el.AddErrorWithSuggestion(errType, message, location, "")
}

// AddErrorWithSuggestion appends a new error at location with a hint.
func (el *ErrorList) AddErrorWithSuggestion(errType ErrorType, message string, location ast.Location, suggestion string) {
	el.Add(&Error{
		Type:       errType,
		Message:    message,
		Location:   location,
		Suggestion: suggestion,
	})
}

// HasErrors reports whether anything was added.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of errors.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// Error renders one diagnostic per error, separated by blank lines.
func (el *ErrorList) Error() string {
	parts := make([]string, len(el.Errors))
	for i, err := range el.Errors {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "\n\n")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (el *ErrorList) Unwrap() []error {
	errs := make([]error, len(el.Errors))
	for i, err := range el.Errors {
		errs[i] = err
	}
	return errs
}

// ToError returns nil for an empty list and the list otherwise.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}
