package match

import (
	"mercator-hq/attrq/pkg/attr/ast"
	"mercator-hq/attrq/pkg/attr/lit"
)

// ContainsAttribute returns true if path ends on a bare marker in at least
// one outer tree of nodes. A path ending on a NameValue, or on a node that
// still has arguments, does not count. An empty path never matches.
func ContainsAttribute(nodes []*ast.Node, path ast.Path) bool {
	if path.IsEmpty() {
		return false
	}

	for _, node := range nodes {
		if !node.IsOuter() {
			continue
		}
		if walk(node, path, acceptExistence).Kind == ExistsOnly {
			return true
		}
	}

	return false
}

// GetAttributeValue returns the literal at the end of path in the first outer
// tree of nodes that binds one. Trees where the path only reaches a bare
// marker are skipped. ok is false when no tree binds a value at path.
func GetAttributeValue(nodes []*ast.Node, path ast.Path) (value ast.Literal, ok bool) {
	if path.IsEmpty() {
		return ast.Literal{}, false
	}

	for _, node := range nodes {
		if !node.IsOuter() {
			continue
		}
		if r := walk(node, path, acceptValue); r.Kind == MatchedValue {
			return r.Value, true
		}
	}

	return ast.Literal{}, false
}

// GetAttributeValueAs looks up the value at path and casts it to T.
// found is false when no value exists; err wraps lit.ErrCast when a value
// exists but has a different kind.
func GetAttributeValueAs[T lit.Castable](nodes []*ast.Node, path ast.Path) (v T, found bool, err error) {
	l, found := GetAttributeValue(nodes, path)
	if !found {
		return v, false, nil
	}
	v, err = lit.As[T](l)
	return v, true, err
}
