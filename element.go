package flow

import (
	"encoding/json"
	"maps"
)

var _ Node = (*Element)(nil)

// Element is a property-map node. It implements Node and owns its children
// directly. Layout reads its declared properties and writes x, y, width and
// height (and clip, for clipped passes) back into the same map.
type Element struct {
	// Tree structure (single source of truth)
	children []*Element
	parent   *Element

	id    string
	typ   string
	props map[string]any
}

// New creates an Element of the given type tag.
func New(typ string, opts ...Option) *Element {
	e := &Element{
		typ:   typ,
		props: map[string]any{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID returns the element's identifier.
func (e *Element) ID() string { return e.id }

// Type returns the element's type tag.
func (e *Element) Type() string { return e.typ }

// Children returns the children as layout nodes.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

// Number returns a numeric property. Integers, floats, json.Number and
// booleans (as 1 or 0) are numeric; strings are not.
func (e *Element) Number(name string) (float64, bool) {
	switch v := e.props[name].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// String returns a string property.
func (e *Element) String(name string) (string, bool) {
	s, ok := e.props[name].(string)
	return s, ok
}

// SetNumber writes a numeric property.
func (e *Element) SetNumber(name string, value float64) {
	if e.props == nil {
		e.props = map[string]any{}
	}
	e.props[name] = value
}

// Prop returns the raw value of a property.
func (e *Element) Prop(name string) (any, bool) {
	v, ok := e.props[name]
	return v, ok
}

// SetProp sets a property. A nil value removes it.
func (e *Element) SetProp(name string, value any) {
	if value == nil {
		delete(e.props, name)
		return
	}
	if e.props == nil {
		e.props = map[string]any{}
	}
	e.props[name] = value
}

// Props returns a copy of the property map.
func (e *Element) Props() map[string]any {
	return maps.Clone(e.props)
}

// Text returns the text property.
func (e *Element) Text() string {
	s, _ := e.String(PropText)
	return s
}

// Frame returns the geometry written by the last layout pass. The zero Rect
// is returned for elements that were never positioned.
func (e *Element) Frame() Rect {
	get := func(name string) float64 {
		v, _ := e.Number(name)
		return v
	}
	return Rect{X: get(PropX), Y: get(PropY), Width: get(PropWidth), Height: get(PropHeight)}
}

// Positioned reports whether a layout pass has written geometry onto e.
func (e *Element) Positioned() bool {
	_, ok := e.Number(PropWidth)
	return ok
}

// Clipped reports the clip flag written by a clipped layout pass.
func (e *Element) Clipped() bool {
	v, _ := e.Number(PropClip)
	return v != 0
}
