package layout

import (
	"math"
	"testing"
)

// testNode is a minimal property-map Node for engine tests.
type testNode struct {
	id       string
	typ      string
	props    map[string]any
	children []*testNode
}

func newTestNode(typ, id string, props map[string]any, children ...*testNode) *testNode {
	if props == nil {
		props = map[string]any{}
	}
	return &testNode{id: id, typ: typ, props: props, children: children}
}

func (n *testNode) ID() string   { return n.id }
func (n *testNode) Type() string { return n.typ }

func (n *testNode) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *testNode) Number(name string) (float64, bool) {
	switch v := n.props[name].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func (n *testNode) String(name string) (string, bool) {
	s, ok := n.props[name].(string)
	return s, ok
}

func (n *testNode) SetNumber(name string, value float64) {
	n.props[name] = value
}

// frame reads back the geometry written by apply.
func (n *testNode) frame() Rect {
	get := func(name string) float64 {
		v, _ := n.Number(name)
		return v
	}
	return Rect{X: get(PropX), Y: get(PropY), Width: get(PropWidth), Height: get(PropHeight)}
}

// fixedBox is a leaf with a preferred size, measured through a test-only
// "box" measurer that returns zero.
func fixedBox(id string, w, h float64) *testNode {
	return newTestNode("box", id, map[string]any{
		PropPreferredWidth:  w,
		PropPreferredHeight: h,
	})
}

func newTestEngine(opts ...Option) *Engine {
	opts = append([]Option{WithMeasurer("box", func(Measurement) Size { return Size{} })}, opts...)
	return New(opts...)
}

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func assertRect(t *testing.T, label string, got, want Rect) {
	t.Helper()
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) ||
		!approx(got.Width, want.Width) || !approx(got.Height, want.Height) {
		t.Errorf("%s frame = %+v, want %+v", label, got, want)
	}
}
