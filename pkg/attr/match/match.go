package match

import "mercator-hq/attrq/pkg/attr/ast"

// ResultKind classifies the outcome of walking one tree against a path.
type ResultKind int

const (
	NoMatch      ResultKind = iota // Path not satisfied
	ExistsOnly                     // Path ends on a bare marker
	MatchedValue                   // Path ends on a NameValue
)

// String returns the result kind name.
func (k ResultKind) String() string {
	switch k {
	case NoMatch:
		return "no_match"
	case ExistsOnly:
		return "exists_only"
	case MatchedValue:
		return "matched_value"
	default:
		return "unknown"
	}
}

// Result is the outcome of MatchPath. Value is set only for MatchedValue.
type Result struct {
	Kind  ResultKind
	Value ast.Literal
}

// Matched returns true for any result other than NoMatch.
func (r Result) Matched() bool {
	return r.Kind != NoMatch
}

// accept filters which result kinds end a walk. Kinds it rejects are
// treated like NoMatch so later siblings are still scanned.
type accept func(ResultKind) bool

func acceptAny(k ResultKind) bool       { return k != NoMatch }
func acceptExistence(k ResultKind) bool { return k == ExistsOnly }
func acceptValue(k ResultKind) bool     { return k == MatchedValue }

// MatchPath walks a single tree against path and returns the first match in
// argument order, either kind.
//
// A one-segment path equal to the root's name yields ExistsOnly when the root
// is a bare marker and NoMatch otherwise. Longer paths descend one argument
// level per segment; a NameValue satisfies the path only as its final segment.
func MatchPath(node *ast.Node, path ast.Path) Result {
	return walk(node, path, acceptAny)
}

func walk(node *ast.Node, path ast.Path, ok accept) Result {
	if len(path) == 0 || path[0] != node.Name {
		return Result{}
	}

	rest := path[1:]
	if len(rest) == 0 {
		// The node itself is the destination.
		if node.IsMarker() && ok(ExistsOnly) {
			return Result{Kind: ExistsOnly}
		}
		return Result{}
	}

	for _, arg := range node.Args {
		switch a := arg.(type) {
		case *ast.Node:
			if r := walk(a, rest, ok); r.Kind != NoMatch {
				return r
			}
		case *ast.NameValue:
			if len(rest) == 1 && rest[0] == a.Name && ok(MatchedValue) {
				return Result{Kind: MatchedValue, Value: a.Value}
			}
		}
	}

	return Result{}
}
