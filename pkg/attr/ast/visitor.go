package ast

// Visitor provides an interface for traversing annotation trees.
// path holds the names from the root down to and including the visited item.
type Visitor interface {
	VisitNode(n *Node, path Path) error
	VisitNameValue(nv *NameValue, path Path) error
}

// Walk traverses the tree rooted at n depth-first, arguments in order, and
// calls the visitor for each node and name-value. It returns the first error
// encountered, or nil if traversal completes.
func Walk(n *Node, visitor Visitor) error {
	return walkNode(n, Path{n.Name}, visitor)
}

// walkNode recursively walks a node and its arguments.
func walkNode(n *Node, path Path, visitor Visitor) error {
	if err := visitor.VisitNode(n, path); err != nil {
		return err
	}

	for _, arg := range n.Args {
		switch a := arg.(type) {
		case *Node:
			if err := walkNode(a, path.Child(a.Name), visitor); err != nil {
				return err
			}
		case *NameValue:
			if err := visitor.VisitNameValue(a, path.Child(a.Name)); err != nil {
				return err
			}
		}
	}

	return nil
}
