package ast

import "strings"

// DefaultSeparator joins path segments when no separator is configured.
const DefaultSeparator = "."

// Path is an ordered sequence of name segments. The first segment names
// a root attribute; each following segment names one level of nesting.
type Path []string

// ParsePath splits a rendered path on sep. An empty sep means DefaultSeparator.
// ParsePath("", ".") returns a one-segment path holding the empty name, which
// matches nothing.
func ParsePath(s, sep string) Path {
	if sep == "" {
		sep = DefaultSeparator
	}
	return Path(strings.Split(s, sep))
}

// Join renders the path with sep.
func (p Path) Join(sep string) string {
	return strings.Join(p, sep)
}

// IsEmpty returns true if the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Child returns a new path with name appended. The receiver is never aliased.
func (p Path) Child(name string) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, name)
}
