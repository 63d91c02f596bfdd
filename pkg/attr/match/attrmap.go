package match

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"

	"mercator-hq/attrq/pkg/attr/ast"
)

// AttributeMap is an insertion-ordered map from dotted path to the literals
// found at that path. Keys keep the order in which they were first seen and
// each value slice keeps the order literals were appended.
//
// The zero value is ready to use.
type AttributeMap struct {
	keys   []string
	values map[string][]ast.Literal
}

// NewAttributeMap creates an empty map.
func NewAttributeMap() *AttributeMap {
	return &AttributeMap{values: make(map[string][]ast.Literal)}
}

// touch inserts key with an empty value slice if it is not present.
func (m *AttributeMap) touch(key string) {
	if m.values == nil {
		m.values = make(map[string][]ast.Literal)
	}
	if _, ok := m.values[key]; ok {
		return
	}
	m.keys = append(m.keys, key)
	m.values[key] = []ast.Literal{}
}

// add appends value under key, inserting the key first if needed.
func (m *AttributeMap) add(key string, value ast.Literal) {
	m.touch(key)
	m.values[key] = append(m.values[key], value)
}

// Len returns the number of distinct keys.
func (m *AttributeMap) Len() int {
	return len(m.keys)
}

// Keys returns the keys in first-seen order.
func (m *AttributeMap) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Has returns true if key was seen, with or without values.
func (m *AttributeMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Get returns a copy of the literals recorded under key.
// ok is false for an unknown key; a known key may map to an empty slice.
func (m *AttributeMap) Get(key string) (values []ast.Literal, ok bool) {
	stored, ok := m.values[key]
	if !ok {
		return nil, false
	}
	values = make([]ast.Literal, len(stored))
	copy(values, stored)
	return values, true
}

// All iterates keys in first-seen order with a copy of their literals.
func (m *AttributeMap) All() iter.Seq2[string, []ast.Literal] {
	return func(yield func(string, []ast.Literal) bool) {
		for _, key := range m.keys {
			if !yield(key, slices.Clone(m.values[key])) {
				return
			}
		}
	}
}

// MarshalJSON encodes the map as a JSON object with keys in first-seen order.
func (m *AttributeMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
