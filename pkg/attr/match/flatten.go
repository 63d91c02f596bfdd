package match

import "mercator-hq/attrq/pkg/attr/ast"

// GetAttributeMap flattens every outer tree of nodes into an AttributeMap.
//
// Every terminal reachable from a root contributes one key: the chain of names
// from the root joined with separator. Bare markers insert their key with no
// literal; NameValues append their literal. Nodes with arguments contribute
// only through their descendants. Duplicates are preserved in scan order.
func GetAttributeMap(nodes []*ast.Node, separator string) *AttributeMap {
	m := NewAttributeMap()
	f := &flattener{m: m, separator: separator}

	for _, node := range nodes {
		if !node.IsOuter() {
			continue
		}
		// flattener never fails
		_ = ast.Walk(node, f)
	}

	return m
}

// flattener is the ast.Visitor that fills an AttributeMap.
type flattener struct {
	m         *AttributeMap
	separator string
}

func (f *flattener) VisitNode(n *ast.Node, path ast.Path) error {
	if n.IsMarker() {
		f.m.touch(path.Join(f.separator))
	}
	return nil
}

func (f *flattener) VisitNameValue(nv *ast.NameValue, path ast.Path) error {
	f.m.add(path.Join(f.separator), nv.Value)
	return nil
}
