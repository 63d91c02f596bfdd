package match

import (
	"encoding/json"
	"reflect"
	"sort"
	"testing"

	"mercator-hq/attrq/pkg/attr/ast"
)

func flattenFixture() []*ast.Node {
	greeting := func() *ast.Node {
		return ast.NewNode("level0",
			ast.NewNameValue("level1", ast.String("hi")),
			ast.NewNode("level1_1", ast.NewNameValue("level2", ast.String("bye"))),
		)
	}

	return []*ast.Node{
		ast.NewNode("level9"),
		ast.NewNode("level0", ast.NewNode("level8")),
		greeting(),
		greeting(),
		ast.NewNode("gen0",
			ast.NewNameValue("gen1", ast.String("amoeba")),
			ast.NewNameValue("gen1_1", ast.String("monad")),
			ast.NewNode("gen1_2", ast.NewNameValue("gen2", ast.String("monoid"))),
		),
	}
}

func TestGetAttributeMap(t *testing.T) {
	m := GetAttributeMap(flattenFixture(), ".")

	wantKeys := []string{
		"level9",
		"level0.level8",
		"level0.level1",
		"level0.level1_1.level2",
		"gen0.gen1",
		"gen0.gen1_1",
		"gen0.gen1_2.gen2",
	}
	if got := m.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Fatalf("Keys() = %q, want %q", got, wantKeys)
	}

	wantValues := map[string][]ast.Literal{
		"level9":                 {},
		"level0.level8":          {},
		"level0.level1":          {ast.String("hi"), ast.String("hi")},
		"level0.level1_1.level2": {ast.String("bye"), ast.String("bye")},
		"gen0.gen1":              {ast.String("amoeba")},
		"gen0.gen1_1":            {ast.String("monad")},
		"gen0.gen1_2.gen2":       {ast.String("monoid")},
	}
	for key, want := range wantValues {
		got, ok := m.Get(key)
		if !ok {
			t.Errorf("Get(%q) missing", key)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Get(%q) = %v, want %v", key, got, want)
		}
	}

	if _, ok := m.Get("level0"); ok {
		t.Error("Get(level0) should be absent: level0 always has arguments")
	}
}

func TestGetAttributeMap_Separator(t *testing.T) {
	m := GetAttributeMap(valueFixture(), "::")

	if !m.Has("level0::level1_1::level2") {
		t.Errorf("Keys() = %q, want level0::level1_1::level2", m.Keys())
	}
}

func TestGetAttributeMap_DuplicatesInOneTree(t *testing.T) {
	attrs := []*ast.Node{
		ast.NewNode("level0",
			ast.NewNameValue("level1", ast.String("hi")),
			ast.NewNameValue("level1", ast.String("hi")),
			ast.NewNode("level1_1", ast.NewNameValue("level2", ast.String("bye"))),
		),
	}

	m := GetAttributeMap(attrs, ".")
	got, _ := m.Get("level0.level1")
	if want := []ast.Literal{ast.String("hi"), ast.String("hi")}; !reflect.DeepEqual(got, want) {
		t.Errorf("Get(level0.level1) = %v, want %v", got, want)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestGetAttributeMap_MarkerThenValue(t *testing.T) {
	attrs := []*ast.Node{
		ast.NewNode("a", ast.NewNode("b")),
		ast.NewNode("a", ast.NewNameValue("b", ast.Int(1))),
	}

	got, ok := GetAttributeMap(attrs, ".").Get("a.b")
	if !ok || !reflect.DeepEqual(got, []ast.Literal{ast.Int(1)}) {
		t.Errorf("Get(a.b) = %v, %v, want [1], true", got, ok)
	}
}

func TestGetAttributeMap_SkipsInner(t *testing.T) {
	attrs := []*ast.Node{ast.NewInnerNode("hidden"), ast.NewNode("shown")}

	m := GetAttributeMap(attrs, ".")
	if m.Has("hidden") || !m.Has("shown") {
		t.Errorf("Keys() = %q, want [shown]", m.Keys())
	}
}

func TestGetAttributeMap_Empty(t *testing.T) {
	m := GetAttributeMap(nil, ".")
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
	if _, ok := m.Get("anything"); ok {
		t.Error("Get on empty map should report absent")
	}
}

// Existence agrees with flattened keys produced by bare markers.
func TestGetAttributeMap_AgreesWithContains(t *testing.T) {
	attrs := existenceFixture()
	m := GetAttributeMap(attrs, ".")

	for key, values := range m.All() {
		path := ast.ParsePath(key, ".")
		contains := ContainsAttribute(attrs, path)
		if len(values) == 0 && !contains {
			t.Errorf("ContainsAttribute(%q) = false for marker key", key)
		}
		if len(values) > 0 && contains {
			t.Errorf("ContainsAttribute(%q) = true for value key", key)
		}
	}
}

func TestAttributeMap_AllYieldsCopies(t *testing.T) {
	m := GetAttributeMap(flattenFixture(), ".")

	for _, values := range m.All() {
		for i := range values {
			values[i] = ast.String("overwritten")
		}
	}

	got, _ := m.Get("level0.level1")
	if want := []ast.Literal{ast.String("hi"), ast.String("hi")}; !reflect.DeepEqual(got, want) {
		t.Errorf("Get(level0.level1) after mutating All() = %v, want %v", got, want)
	}
}

func TestGetAttributeMap_PermutationKeepsKeySet(t *testing.T) {
	attrs := flattenFixture()
	reversed := make([]*ast.Node, len(attrs))
	for i, n := range attrs {
		reversed[len(attrs)-1-i] = n
	}

	a := GetAttributeMap(attrs, ".").Keys()
	b := GetAttributeMap(reversed, ".").Keys()
	sort.Strings(a)
	sort.Strings(b)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("key sets differ: %q vs %q", a, b)
	}
}

func TestAttributeMap_MarshalJSON(t *testing.T) {
	m := GetAttributeMap([]*ast.Node{
		ast.NewNode("z", ast.NewNameValue("n", ast.Int(1))),
		ast.NewNode("a"),
	}, ".")

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("json.Marshal() failed: %v", err)
	}
	if want := `{"z.n":[1],"a":[]}`; string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}
}

func TestAttributeMap_GetReturnsCopy(t *testing.T) {
	m := GetAttributeMap(valueFixture(), ".")

	got, _ := m.Get("level0.level1")
	got[0] = ast.String("changed")

	again, _ := m.Get("level0.level1")
	if again[0] != ast.String("hi") {
		t.Errorf("Get() exposed internal storage: %v", again)
	}
}

func TestAttributeMap_ZeroValue(t *testing.T) {
	var m AttributeMap
	m.add("k", ast.Bool(true))

	if got, ok := m.Get("k"); !ok || len(got) != 1 {
		t.Errorf("Get(k) = %v, %v, want [true], true", got, ok)
	}
}

func BenchmarkGetAttributeMap(b *testing.B) {
	attrs := flattenFixture()

	for i := 0; i < b.N; i++ {
		GetAttributeMap(attrs, ".")
	}
}
