package layout

// Node is the accessor the engine uses to read a tree of UI nodes and to write
// computed geometry back. The property storage behind it belongs to the caller.
type Node interface {
	// ID returns an identifier that is unique within one tree snapshot.
	// It is the sole cache key: two nodes sharing an id share one entry.
	ID() string

	// Type returns the node's type tag (see the Type* constants).
	Type() string

	// Children returns the ordered children. Order is layout order.
	Children() []Node

	// Number returns a numeric property.
	Number(name string) (float64, bool)

	// String returns a string property.
	String(name string) (string, bool)

	// SetNumber is the geometry sink: apply writes x, y, width and height
	// (and clip, for the clipped variant) through it.
	SetNumber(name string, value float64)
}

// LayoutInfo holds everything the engine resolved for one node during one
// call. It is created during measurement, updated during positioning and read
// by apply.
type LayoutInfo struct {
	// ContentSize is the intrinsic size including the node's own padding.
	// It is fixed after measurement for non-flexible nodes.
	ContentSize Size

	// Frame is the absolute rectangle assigned during positioning.
	Frame Rect

	Padding   EdgeInsets
	Justify   Justify
	Align     Align
	AlignSelf Align

	FlexGrow   float64
	FlexShrink float64
	FlexBasis  float64

	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64

	// ParentType is written by the parent stack while it positions its
	// children. Spacer measurement reads it.
	ParentType string

	Spacing      float64
	EqualSpacing bool
	Clip         bool

	Measured   bool
	Positioned bool
}

// IsFlexible reports whether the node takes a share of leftover main-axis space.
func (li LayoutInfo) IsFlexible() bool {
	return li.FlexGrow > 0
}

// FlexItem pairs a flexible child's index with its grow weight.
type FlexItem struct {
	Index int
	Grow  float64
}
