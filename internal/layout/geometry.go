package layout

import "math"

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// NewSize creates a Size, clamping negative dimensions to zero.
func NewSize(width, height float64) Size {
	return Size{Width: nonNegative(width), Height: nonNegative(height)}
}

// Shrink returns the size reduced by the given insets, never below zero.
func (s Size) Shrink(e EdgeInsets) Size {
	return NewSize(s.Width-e.Horizontal(), s.Height-e.Vertical())
}

// Grow returns the size enlarged by the given insets.
func (s Size) Grow(e EdgeInsets) Size {
	return NewSize(s.Width+e.Horizontal(), s.Height+e.Vertical())
}

// Rect is an absolute rectangle in the root container's space.
// X and Y are the top-left corner; y grows downward.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectOf returns a Rect at the origin with the given size.
func RectOf(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset returns a new Rect inset by the given EdgeInsets.
// Width and height never go below zero.
func (r Rect) Inset(e EdgeInsets) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  nonNegative(r.Width - e.Left - e.Right),
		Height: nonNegative(r.Height - e.Top - e.Bottom),
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// EdgeInsets represents values for four sides of a box.
type EdgeInsets struct {
	Top, Right, Bottom, Left float64
}

// InsetsAll creates EdgeInsets with the same value on all sides.
func InsetsAll(n float64) EdgeInsets {
	return EdgeInsets{Top: n, Right: n, Bottom: n, Left: n}
}

// InsetsSymmetric creates EdgeInsets with vertical (top/bottom) and horizontal (left/right) values.
func InsetsSymmetric(v, h float64) EdgeInsets {
	return EdgeInsets{Top: v, Right: h, Bottom: v, Left: h}
}

// InsetsTRBL creates EdgeInsets following CSS order: Top, Right, Bottom, Left.
func InsetsTRBL(t, r, b, l float64) EdgeInsets {
	return EdgeInsets{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// IsZero returns true if all edge values are zero.
func (e EdgeInsets) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

// ratio returns num/den, or 0 when the division is undefined or not finite.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	q := num / den
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}
	return q
}
