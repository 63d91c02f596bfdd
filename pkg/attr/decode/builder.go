package decode

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"mercator-hq/attrq/pkg/attr/ast"
	attrErrors "mercator-hq/attrq/pkg/attr/errors"
)

// builder converts a YAML node tree into annotation trees, collecting every
// structural problem instead of stopping at the first.
type builder struct {
	sourcePath string
	maxDepth   int
	errs       *attrErrors.ErrorList
}

func newBuilder(sourcePath string, maxDepth int) *builder {
	return &builder{
		sourcePath: sourcePath,
		maxDepth:   maxDepth,
		errs:       attrErrors.NewErrorList(),
	}
}

func (b *builder) location(node *yaml.Node) ast.Location {
	return ast.Location{File: b.sourcePath, Line: node.Line, Column: node.Column}
}

// buildDocument builds the top-level attribute list. An empty document
// yields no attributes.
func (b *builder) buildDocument(doc *yaml.Node) []*ast.Node {
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil
	}

	root := doc
	if root.Kind == yaml.DocumentNode {
		root = root.Content[0]
	}

	if root.Kind != yaml.MappingNode {
		b.errs.AddErrorWithSuggestion(attrErrors.ErrorTypeStructural,
			"Document must be a mapping with an 'attributes' list",
			b.location(root),
			"Start the document with 'attributes:'")
		return nil
	}

	var attrs *yaml.Node
	for _, pair := range mappingPairs(root) {
		if pair.key.Value == keyAttributes {
			attrs = pair.value
			continue
		}
		b.errs.AddErrorWithSuggestion(attrErrors.ErrorTypeStructural,
			fmt.Sprintf("Unknown document field %q", pair.key.Value),
			b.location(pair.key),
			attrErrors.SuggestFieldName(pair.key.Value, documentFields))
	}

	if attrs == nil || isNull(attrs) {
		return nil
	}
	if attrs.Kind != yaml.SequenceNode {
		b.errs.AddError(attrErrors.ErrorTypeStructural,
			"'attributes' must be a list", b.location(attrs))
		return nil
	}

	nodes := make([]*ast.Node, 0, len(attrs.Content))
	for _, item := range attrs.Content {
		if node := b.buildRoot(item); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// entry holds the recognised fields of one attribute entry.
type entry struct {
	node  *yaml.Node
	name  *yaml.Node
	style *yaml.Node
	args  *yaml.Node
	value *yaml.Node
}

// readEntry splits a mapping into its fields and reports unknown keys.
func (b *builder) readEntry(node *yaml.Node) (*entry, bool) {
	if node.Kind != yaml.MappingNode {
		b.errs.AddErrorWithSuggestion(attrErrors.ErrorTypeStructural,
			"Attribute entry must be a mapping",
			b.location(node),
			"Write the entry as 'name: <identifier>'")
		return nil, false
	}

	e := &entry{node: node}
	for _, pair := range mappingPairs(node) {
		switch pair.key.Value {
		case keyName:
			e.name = pair.value
		case keyStyle:
			e.style = pair.value
		case keyArgs:
			e.args = pair.value
		case keyValue:
			e.value = pair.value
		default:
			b.errs.AddErrorWithSuggestion(attrErrors.ErrorTypeStructural,
				fmt.Sprintf("Unknown attribute field %q", pair.key.Value),
				b.location(pair.key),
				attrErrors.SuggestFieldName(pair.key.Value, entryFields))
		}
	}

	if e.name == nil || e.name.Kind != yaml.ScalarNode || e.name.Value == "" {
		b.errs.AddErrorWithSuggestion(attrErrors.ErrorTypeStructural,
			"Attribute entry is missing 'name'",
			b.location(node),
			"Add 'name: <identifier>' to the entry")
		return nil, false
	}

	return e, true
}

// buildRoot builds a top-level attribute. Roots may carry a style but never a value.
func (b *builder) buildRoot(item *yaml.Node) *ast.Node {
	e, ok := b.readEntry(item)
	if !ok {
		return nil
	}

	if e.value != nil {
		b.errs.AddErrorWithSuggestion(attrErrors.ErrorTypeStructural,
			fmt.Sprintf("Top-level attribute %q cannot carry a value", e.name.Value),
			b.location(e.value),
			"Nest the value under an argument, e.g. args: [{name: ..., value: ...}]")
		return nil
	}

	style := ast.StyleOuter
	if e.style != nil {
		s, ok := ast.ParseStyle(e.style.Value)
		if !ok || e.style.Kind != yaml.ScalarNode {
			b.errs.AddErrorWithSuggestion(attrErrors.ErrorTypeStructural,
				fmt.Sprintf("Unknown attribute style %q", e.style.Value),
				b.location(e.style),
				attrErrors.SuggestStyle())
			return nil
		}
		style = s
	}

	node := b.buildNode(e, 1)
	if node == nil {
		return nil
	}
	node.Style = style
	return node
}

// buildNode builds a nested attribute at the given depth.
func (b *builder) buildNode(e *entry, depth int) *ast.Node {
	if depth > b.maxDepth {
		b.errs.AddError(attrErrors.ErrorTypeStructural,
			fmt.Sprintf("Attribute %q exceeds maximum nesting depth %d", e.name.Value, b.maxDepth),
			b.location(e.node))
		return nil
	}

	node := &ast.Node{
		Name:     e.name.Value,
		Location: b.location(e.node),
	}

	if e.args == nil || isNull(e.args) {
		return node
	}
	if e.args.Kind != yaml.SequenceNode {
		b.errs.AddError(attrErrors.ErrorTypeStructural,
			fmt.Sprintf("'args' of %q must be a list", e.name.Value),
			b.location(e.args))
		return nil
	}

	failed := false
	for _, item := range e.args.Content {
		arg := b.buildArg(item, depth+1)
		if arg == nil {
			failed = true
			continue
		}
		node.Args = append(node.Args, arg)
	}
	if failed {
		return nil
	}

	return node
}

// buildArg builds one argument: a name-value when 'value' is present,
// otherwise a nested attribute.
func (b *builder) buildArg(item *yaml.Node, depth int) ast.Arg {
	e, ok := b.readEntry(item)
	if !ok {
		return nil
	}

	if e.style != nil {
		b.errs.AddError(attrErrors.ErrorTypeStructural,
			fmt.Sprintf("'style' is only valid on top-level attributes, found on %q", e.name.Value),
			b.location(e.style))
		return nil
	}

	if e.value == nil {
		if node := b.buildNode(e, depth); node != nil {
			return node
		}
		return nil
	}

	if e.args != nil {
		b.errs.AddErrorWithSuggestion(attrErrors.ErrorTypeStructural,
			fmt.Sprintf("Argument %q has both 'value' and 'args'", e.name.Value),
			b.location(e.value),
			"Keep 'value' for a name-value argument or 'args' for a nested attribute")
		return nil
	}

	value, ok := b.buildLiteral(e.name.Value, e.value)
	if !ok {
		return nil
	}

	return &ast.NameValue{
		Name:     e.name.Value,
		Value:    value,
		Location: b.location(e.node),
	}
}

// buildLiteral converts a scalar node into a literal according to its resolved tag.
func (b *builder) buildLiteral(name string, node *yaml.Node) (ast.Literal, bool) {
	if node.Kind != yaml.ScalarNode || isNull(node) {
		b.errs.AddErrorWithSuggestion(attrErrors.ErrorTypeStructural,
			fmt.Sprintf("Value of %q must be a string, number, or boolean", name),
			b.location(node),
			"Quote the value to keep it as a string")
		return ast.Literal{}, false
	}

	var (
		lit ast.Literal
		err error
	)
	switch node.ShortTag() {
	case "!!int":
		var i int64
		if err = node.Decode(&i); err == nil {
			lit = ast.Int(i)
			break
		}
		// above int64: keep it if it fits uint64
		var u uint64
		if node.Decode(&u) == nil {
			lit, err = ast.Uint(u), nil
		}
	case "!!float":
		var f float64
		if err = node.Decode(&f); err == nil {
			lit = ast.Float(f)
		}
	case "!!bool":
		var v bool
		if err = node.Decode(&v); err == nil {
			lit = ast.Bool(v)
		}
	default:
		lit = ast.String(node.Value)
	}

	if err != nil {
		b.errs.AddError(attrErrors.ErrorTypeStructural,
			fmt.Sprintf("Invalid value %q for %q: %v", node.Value, name, err),
			b.location(node))
		return ast.Literal{}, false
	}

	return lit, true
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
