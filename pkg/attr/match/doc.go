// Package match answers path queries over annotation trees.
//
// All functions are pure: they never mutate their input, keep no state
// between calls, and may be called concurrently over the same trees.
//
// # Paths
//
// The first segment of every path names a root attribute; each following
// segment names one level of nested arguments. Given
//
//	#[level0(level1, level1_1(level2 = "bye"))]
//
// the path [level0 level1] reaches the bare marker level1 and the path
// [level0 level1_1 level2] reaches the literal "bye".
//
// # Queries
//
// ContainsAttribute reports whether a path ends on a bare marker in any tree:
//
//	if match.ContainsAttribute(attrs, ast.Path{"serde", "skip"}) {
//	    // ...
//	}
//
// GetAttributeValue returns the literal at the end of a path in the first tree
// that has one:
//
//	v, ok := match.GetAttributeValue(attrs, ast.Path{"serde", "rename"})
//
// GetAttributeMap flattens every tree into an insertion-ordered map from
// dotted path to the literals found there:
//
//	m := match.GetAttributeMap(attrs, ".")
//	for key, values := range m.All() {
//	    fmt.Println(key, values)
//	}
//
// Inner attributes (Style == ast.StyleInner) are skipped by all three queries.
package match
