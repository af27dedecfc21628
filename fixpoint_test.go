package lensmap_test

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/reoring/lensmap"
	"github.com/reoring/lensmap/codec"
)

type node struct {
	Value int
	Child *node
}

var (
	valueLens = lensmap.PureLens(
		func(n node) int { return n.Value },
		func(n node, v int) node {
			n.Value = v
			return n
		},
	)
	childLens = lensmap.PureLens(
		func(n node) *node { return n.Child },
		func(n node, c *node) node {
			n.Child = c
			return n
		},
	)
)

// nodeAdapter defines the node adapter in terms of itself. child picks how
// the optional child is lifted.
func nodeAdapter(child func(self lensmap.Adapter[node, any]) lensmap.Transformer[*node, any]) (lensmap.Adapter[node, any], *int) {
	builds := new(int)
	a := lensmap.Fix(func(self lensmap.Adapter[node, any]) lensmap.Adapter[node, any] {
		*builds++
		return lensmap.Object[node, any](codec.Object()).
			Field("value", lensmap.Through(valueLens, codec.Int())).
			Field("child", lensmap.Through(childLens, child(self))).
			MustBuild()
	})
	return a, builds
}

func nullableChild(self lensmap.Adapter[node, any]) lensmap.Transformer[*node, any] {
	return lensmap.Nullable[node, any](lensmap.Lift(self, node{}), nil, lensmap.IsNil)
}

func optionalChild(self lensmap.Adapter[node, any]) lensmap.Transformer[*node, any] {
	return lensmap.Optional[node, any](lensmap.Lift(self, node{}), nil)
}

func chain(values ...int) *node {
	var head *node
	for i := len(values) - 1; i >= 0; i-- {
		head = &node{Value: values[i], Child: head}
	}
	return head
}

func TestFix_ConstructionTerminates(t *testing.T) {
	_, builds := nodeAdapter(nullableChild)
	if *builds != 1 {
		t.Fatalf("expected a single eager build, got %d", *builds)
	}
}

func TestFix_EncodeDecodeThreeDeep(t *testing.T) {
	a, builds := nodeAdapter(nullableChild)
	in := *chain(1, 2, 3)

	rep, err := a.Encode(in)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	want := map[string]any{
		"value": 1,
		"child": map[string]any{
			"value": 2,
			"child": map[string]any{
				"value": 3,
				"child": nil,
			},
		},
	}
	if !reflect.DeepEqual(rep, want) {
		t.Fatalf("unexpected representation:\n%s", spew.Sdump(rep))
	}
	// The root plus one lazy resolution per nested level that was reached.
	if *builds != 3 {
		t.Fatalf("expected 3 builds after encode, got %d", *builds)
	}

	out, err := a.Decode(node{}, rep)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch:\n%s", spew.Sdump(out))
	}
}

func TestFix_OptionalChildDecodesWhenLeafOmitsChild(t *testing.T) {
	a, _ := nodeAdapter(optionalChild)

	rep := map[string]any{
		"value": 1,
		"child": map[string]any{
			"value": 2,
			"child": map[string]any{"value": 3},
		},
	}
	out, err := a.Decode(node{}, rep)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !reflect.DeepEqual(out, *chain(1, 2, 3)) {
		t.Fatalf("unexpected model:\n%s", spew.Sdump(out))
	}

	// Optional cannot turn an explicit null back into an absent child.
	rep["child"] = nil
	if _, err := a.Decode(node{}, rep); err == nil {
		t.Fatalf("expected a decode failure for null child with Optional")
	}
}

func TestFix_DeepChainFromJSON(t *testing.T) {
	a, _ := nodeAdapter(nullableChild)
	doc := lensmap.Compose[node, any, []byte](lensmap.Lift(a, node{}), codec.JSON(codec.JSONOpt{}))

	values := make([]int, 200)
	for i := range values {
		values[i] = i
	}
	in := *chain(values...)

	data, err := doc.Transform(in)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	out, err := doc.ReverseTransform(data)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch")
	}
}

func TestLazy_SupplierCalledPerInvocation(t *testing.T) {
	calls := 0
	inner := pointAdapter(t, &mapDict{})
	l := lensmap.NewLazy(func() lensmap.Adapter[point, any] {
		calls++
		return inner
	})
	if calls != 0 {
		t.Fatalf("supplier forced at construction")
	}
	rep, err := l.Encode(point{X: 1, Y: "a"})
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if _, err := l.Decode(point{}, rep); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if _, err := l.ReverseTransform(rep); err != nil {
		t.Fatalf("reverse err: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected one supplier call per invocation, got %d", calls)
	}
}
