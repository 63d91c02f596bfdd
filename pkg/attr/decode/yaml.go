package decode

import (
	"gopkg.in/yaml.v3"
)

// Entry keys understood by the builder.
const (
	keyAttributes = "attributes"
	keyName       = "name"
	keyStyle      = "style"
	keyArgs       = "args"
	keyValue      = "value"
)

var (
	documentFields = []string{keyAttributes}
	entryFields    = []string{keyName, keyStyle, keyArgs, keyValue}
)

// parseYAMLBytes parses YAML into its node tree. Working on yaml.Node instead
// of decoding into structs keeps line numbers and scalar tags.
func parseYAMLBytes(data []byte) (*yaml.Node, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	return &node, nil
}

// mappingPair is one key/value of a YAML mapping.
type mappingPair struct {
	key   *yaml.Node
	value *yaml.Node
}

// mappingPairs returns the key/value pairs of a mapping node in order.
func mappingPairs(node *yaml.Node) []mappingPair {
	pairs := make([]mappingPair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		pairs = append(pairs, mappingPair{key: node.Content[i], value: node.Content[i+1]})
	}
	return pairs
}
