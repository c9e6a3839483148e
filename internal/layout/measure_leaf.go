package layout

// Measurement is what a MeasureFunc sees of the node being measured.
type Measurement struct {
	Node      Node
	Available Size
	Padding   EdgeInsets

	// ParentType is the parent's type tag if the parent has already
	// positioned this node during the current call, else "".
	ParentType string

	Estimator Estimator

	// TextDefaults supplies font parameters for nodes that declare none.
	TextDefaults TextStyle
}

// Number reads a numeric property with string fallback.
func (m Measurement) Number(name string, fallback float64) float64 {
	return NumberOr(m.Node, name, fallback)
}

// TextStyle resolves the node's font parameters.
func (m Measurement) TextStyle() TextStyle {
	d := m.TextDefaults.withDefaults()
	return TextStyle{
		FontSize:   m.Number(PropFontSize, d.FontSize),
		LineHeight: m.Number(PropLineHeight, d.LineHeight),
	}.withDefaults()
}

// MeasureFunc computes the intrinsic content size of a leaf node, including
// its padding. Preferred sizes and min/max clamps are applied afterwards by
// the engine.
type MeasureFunc func(m Measurement) Size

// defaultButtonInsets pad a button that declares no padding of its own.
var defaultButtonInsets = InsetsSymmetric(8, 16)

// DefaultMeasurers returns the built-in leaf strategies keyed by type tag.
func DefaultMeasurers() map[string]MeasureFunc {
	return map[string]MeasureFunc{
		TypeText:    MeasureText,
		TypeButton:  MeasureButton,
		TypeImage:   MeasureImage,
		TypeDivider: MeasureDivider,
		TypeSpacer:  MeasureSpacer,
	}
}

// MeasureText sizes a text run with the estimator, bounded by the available
// width minus padding.
func MeasureText(m Measurement) Size {
	maxWidth := m.Available.Width - m.Padding.Horizontal()
	text := StringProp(m.Node, PropText)
	if maxWidth <= 0 {
		// Estimators read a zero bound as unbounded; keep the line height only.
		s := m.Estimator.MeasureText(text, m.TextStyle(), 0)
		return NewSize(0, s.Height).Grow(m.Padding)
	}
	return m.Estimator.MeasureText(text, m.TextStyle(), maxWidth).Grow(m.Padding)
}

// MeasureButton sizes a button like text, with default insets when the node
// declares no padding.
func MeasureButton(m Measurement) Size {
	if !hasPadding(m.Node) {
		m.Padding = defaultButtonInsets
	}
	return MeasureText(m)
}

// MeasureImage uses the preferred dimensions, deriving a missing one from
// aspect_ratio (width / height) when declared.
func MeasureImage(m Measurement) Size {
	w, hasW := NumberProp(m.Node, PropPreferredWidth)
	h, hasH := NumberProp(m.Node, PropPreferredHeight)
	ar := m.Number(PropAspectRatio, 0)
	switch {
	case hasW && !hasH && ar > 0:
		h = ratio(w, ar)
	case hasH && !hasW && ar > 0:
		w = h * ar
	}
	return NewSize(w, h)
}

// MeasureDivider spans the available width (or height when vertical) with the
// declared thickness.
func MeasureDivider(m Measurement) Size {
	thickness := m.Number(PropThickness, 1)
	if normalizeKeyword(StringProp(m.Node, PropOrientation)) == "vertical" {
		return NewSize(thickness, m.Available.Height)
	}
	return NewSize(m.Available.Width, thickness)
}

// MeasureSpacer extends along its parent's main axis by the declared size.
// Before the parent has positioned it the parent type is unknown and the
// spacer measures as zero on both axes.
func MeasureSpacer(m Measurement) Size {
	extent := m.Number(PropSize, 0)
	dir, ok := stackDirection(m.ParentType)
	if !ok {
		return Size{}
	}
	if dir == Column {
		return NewSize(0, extent)
	}
	return NewSize(extent, 0)
}

func hasPadding(n Node) bool {
	for _, name := range []string{PropPadding, PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft} {
		if _, ok := n.Number(name); ok {
			return true
		}
		if _, ok := n.String(name); ok {
			return true
		}
	}
	return false
}
