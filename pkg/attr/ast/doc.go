// Package ast provides the annotation tree model consumed by the attrq query packages.
//
// An annotation tree is the parsed form of one attribute attached to a source
// declaration. The tree is produced by an external collaborator (a syntax
// parser or the YAML decoder in package decode) and handed to the query
// functions in package match as read-only input.
//
// # Core Types
//
// Node: a named attribute with ordered arguments (bare marker when it has none)
//
// Arg: sealed sum type over the two argument variants, *Node and *NameValue
//
// NameValue: terminal name bound to a Literal
//
// Literal: comparable scalar (string, int, float, bool)
//
// Path: ordered name segments, rendered with a separator
//
// Location: source location (file, line, column)
//
// # Tree Shape
//
// The attribute #[level0(level1, level1_1(level2 = "bye"))] is modelled as:
//
//	Node level0
//	├── Node level1              (bare marker)
//	└── Node level1_1
//	    └── NameValue level2 = "bye"
//
// Build it directly:
//
//	root := ast.NewNode("level0",
//	    ast.NewNode("level1"),
//	    ast.NewNode("level1_1",
//	        ast.NewNameValue("level2", ast.String("bye")),
//	    ),
//	)
//
// # Traversal
//
// Walk visits every node and name-value in depth-first order, children in
// order, passing the chain of names from the root:
//
//	err := ast.Walk(root, visitor)
//
// # Immutability
//
// Trees should be treated as immutable after construction. Nothing in this
// module mutates a tree it was handed, so trees may be shared between
// goroutines without synchronization.
package ast
