package ast

// Style distinguishes outer attributes (#[...]) from inner ones (#![...]).
// The zero value is StyleOuter.
type Style int

const (
	StyleOuter Style = iota // Attached to the following declaration
	StyleInner              // Attached to the enclosing item
)

// String returns the lowercase style name.
func (s Style) String() string {
	switch s {
	case StyleOuter:
		return "outer"
	case StyleInner:
		return "inner"
	default:
		return "unknown"
	}
}

// ParseStyle parses "outer" or "inner". An empty string means outer.
func ParseStyle(s string) (Style, bool) {
	switch s {
	case "", "outer":
		return StyleOuter, true
	case "inner":
		return StyleInner, true
	default:
		return StyleOuter, false
	}
}

// Arg is one argument of a Node. It is implemented by exactly two types,
// *Node (nested attribute) and *NameValue (terminal name bound to a literal).
// Consumers switch over both:
//
//	switch a := arg.(type) {
//	case *ast.Node:
//	case *ast.NameValue:
//	}
type Arg interface {
	ArgName() string
	isArg()
}

// Node is one attribute occurrence: a name and its ordered arguments.
// A node without arguments is a bare marker.
type Node struct {
	Name     string   // Identifier of the attribute
	Args     []Arg    // Ordered arguments (empty for a bare marker)
	Style    Style    // Only meaningful on root nodes
	Location Location // Source location
}

// NameValue is a terminal argument binding a name to a literal.
type NameValue struct {
	Name     string   // Identifier of the argument
	Value    Literal  // Bound literal
	Location Location // Source location
}

func (*Node) isArg()      {}
func (*NameValue) isArg() {}

// ArgName returns the node's name.
func (n *Node) ArgName() string { return n.Name }

// ArgName returns the argument's name.
func (nv *NameValue) ArgName() string { return nv.Name }

// NewNode creates an outer node with the given arguments.
func NewNode(name string, args ...Arg) *Node {
	return &Node{Name: name, Args: args}
}

// NewInnerNode creates an inner node with the given arguments.
func NewInnerNode(name string, args ...Arg) *Node {
	return &Node{Name: name, Args: args, Style: StyleInner}
}

// NewNameValue creates a name-value argument.
func NewNameValue(name string, value Literal) *NameValue {
	return &NameValue{Name: name, Value: value}
}

// IsMarker returns true if the node has no arguments.
func (n *Node) IsMarker() bool {
	return len(n.Args) == 0
}

// IsOuter returns true if the node is an outer attribute.
func (n *Node) IsOuter() bool {
	return n.Style == StyleOuter
}
