package ast

import (
	"encoding/json"
	"math"
	"strconv"
)

// LiteralKind represents the type of a literal value.
// Literals carry no automatic coercion between kinds.
type LiteralKind string

const (
	LiteralInvalid LiteralKind = ""
	LiteralString  LiteralKind = "string"
	LiteralInt     LiteralKind = "int"
	LiteralFloat   LiteralKind = "float"
	LiteralBool    LiteralKind = "bool"
)

// Literal is a scalar value bound by a NameValue.
// Literal is comparable: two literals are == when kind and value are equal.
// The zero Literal is invalid.
type Literal struct {
	kind LiteralKind
	s    string
	i    int64
	u    uint64 // set instead of i for ints above math.MaxInt64
	big  bool
	f    float64
	b    bool
}

// String creates a string literal.
func String(s string) Literal { return Literal{kind: LiteralString, s: s} }

// Int creates an integer literal.
func Int(i int64) Literal { return Literal{kind: LiteralInt, i: i} }

// Uint creates an integer literal from an unsigned value. Values that fit in
// int64 are the same literal as Int(int64(u)).
func Uint(u uint64) Literal {
	if u <= math.MaxInt64 {
		return Int(int64(u))
	}
	return Literal{kind: LiteralInt, u: u, big: true}
}

// Float creates a floating point literal.
func Float(f float64) Literal { return Literal{kind: LiteralFloat, f: f} }

// Bool creates a boolean literal.
func Bool(b bool) Literal { return Literal{kind: LiteralBool, b: b} }

// Kind returns the literal's kind.
func (l Literal) Kind() LiteralKind { return l.kind }

// IsValid returns false for the zero Literal.
func (l Literal) IsValid() bool { return l.kind != LiteralInvalid }

// Interface returns the underlying value as string, int64, float64 or bool.
// Ints above math.MaxInt64 are returned as uint64. It returns nil for an
// invalid literal.
func (l Literal) Interface() any {
	switch l.kind {
	case LiteralString:
		return l.s
	case LiteralInt:
		if l.big {
			return l.u
		}
		return l.i
	case LiteralFloat:
		return l.f
	case LiteralBool:
		return l.b
	default:
		return nil
	}
}

// String renders the literal as it would appear in source: strings are quoted.
func (l Literal) String() string {
	switch l.kind {
	case LiteralString:
		return strconv.Quote(l.s)
	case LiteralInt:
		if l.big {
			return strconv.FormatUint(l.u, 10)
		}
		return strconv.FormatInt(l.i, 10)
	case LiteralFloat:
		return strconv.FormatFloat(l.f, 'g', -1, 64)
	case LiteralBool:
		return strconv.FormatBool(l.b)
	default:
		return "<invalid>"
	}
}

// MarshalJSON encodes the literal as its native JSON value. JSON has no
// NaN or infinities, so those floats encode as the strings "NaN", "+Inf"
// and "-Inf".
func (l Literal) MarshalJSON() ([]byte, error) {
	if l.kind == LiteralFloat && (math.IsNaN(l.f) || math.IsInf(l.f, 0)) {
		return json.Marshal(strconv.FormatFloat(l.f, 'g', -1, 64))
	}
	return json.Marshal(l.Interface())
}
