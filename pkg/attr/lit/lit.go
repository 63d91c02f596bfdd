// Package lit converts annotation literals into Go values.
//
// A conversion succeeds only when the literal's kind matches the target:
// ints never become floats, floats never become ints, and nothing is parsed
// out of strings. Failures wrap ErrCast.
package lit

import (
	"errors"
	"fmt"

	"mercator-hq/attrq/pkg/attr/ast"
)

// ErrCast is returned when a literal cannot be converted to the requested type.
var ErrCast = errors.New("cannot cast literal")

// Castable lists the Go types a literal converts to.
type Castable interface {
	ast.Literal | string | int64 | uint64 | float64 | bool
}

func castError(l ast.Literal, target string) error {
	return fmt.Errorf("%w: %s literal %s to %s", ErrCast, l.Kind(), l, target)
}

// String returns the value of a string literal.
func String(l ast.Literal) (string, error) {
	if l.Kind() != ast.LiteralString {
		return "", castError(l, "string")
	}
	return l.Interface().(string), nil
}

// Int64 returns the value of an int literal that fits in int64.
func Int64(l ast.Literal) (int64, error) {
	if i, ok := l.Interface().(int64); ok && l.Kind() == ast.LiteralInt {
		return i, nil
	}
	return 0, castError(l, "int64")
}

// Uint64 returns the value of a non-negative int literal, up to
// math.MaxUint64.
func Uint64(l ast.Literal) (uint64, error) {
	if l.Kind() != ast.LiteralInt {
		return 0, castError(l, "uint64")
	}
	switch v := l.Interface().(type) {
	case uint64:
		return v, nil
	case int64:
		if v >= 0 {
			return uint64(v), nil
		}
	}
	return 0, castError(l, "uint64")
}

// Float64 returns the value of a float literal.
func Float64(l ast.Literal) (float64, error) {
	if l.Kind() != ast.LiteralFloat {
		return 0, castError(l, "float64")
	}
	return l.Interface().(float64), nil
}

// Bool returns the value of a bool literal.
func Bool(l ast.Literal) (bool, error) {
	if l.Kind() != ast.LiteralBool {
		return false, castError(l, "bool")
	}
	return l.Interface().(bool), nil
}

// As converts l to T. Converting to ast.Literal always succeeds.
func As[T Castable](l ast.Literal) (T, error) {
	var out T
	var err error

	switch p := any(&out).(type) {
	case *ast.Literal:
		*p = l
	case *string:
		*p, err = String(l)
	case *int64:
		*p, err = Int64(l)
	case *uint64:
		*p, err = Uint64(l)
	case *float64:
		*p, err = Float64(l)
	case *bool:
		*p, err = Bool(l)
	}

	return out, err
}

// ByName converts l according to a kind name ("string", "int", "uint",
// "float", "bool", or "" / "literal" for no conversion) and returns the
// result as an untyped value.
func ByName(l ast.Literal, kind string) (any, error) {
	switch kind {
	case "", "literal":
		return l, nil
	case "string":
		return String(l)
	case "int", "int64":
		return Int64(l)
	case "uint", "uint64":
		return Uint64(l)
	case "float", "float64":
		return Float64(l)
	case "bool":
		return Bool(l)
	default:
		return nil, fmt.Errorf("unknown cast kind %q", kind)
	}
}
