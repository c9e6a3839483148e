package layout

import (
	"math"
	"strconv"
	"strings"
)

// Property names read by the engine.
const (
	PropPadding         = "padding"
	PropPaddingTop      = "padding_top"
	PropPaddingRight    = "padding_right"
	PropPaddingBottom   = "padding_bottom"
	PropPaddingLeft     = "padding_left"
	PropSpacing         = "spacing"
	PropEqualSpacing    = "equal_spacing"
	PropJustify         = "justify"
	PropAlign           = "align"
	PropAlignSelf       = "align_self"
	PropFlexGrow        = "flex_grow"
	PropFlexShrink      = "flex_shrink"
	PropFlexBasis       = "flex_basis"
	PropPreferredWidth  = "preferred_width"
	PropPreferredHeight = "preferred_height"
	PropMinWidth        = "min_width"
	PropMaxWidth        = "max_width"
	PropMinHeight       = "min_height"
	PropMaxHeight       = "max_height"
	PropText            = "text"
	PropFontSize        = "font_size"
	PropLineHeight      = "line_height"
	PropAspectRatio     = "aspect_ratio"
	PropThickness       = "thickness"
	PropOrientation     = "orientation"
	PropSize            = "size"
	PropScrollX         = "scroll_x"
	PropScrollY         = "scroll_y"
	PropClip            = "clip"
)

// Geometry written back by apply.
const (
	PropX      = "x"
	PropY      = "y"
	PropWidth  = "width"
	PropHeight = "height"
)

// NumberProp reads a numeric property, falling back to parsing its string
// form. The second result is false when the property is absent. A present
// but unparsable value yields (0, true).
func NumberProp(n Node, name string) (float64, bool) {
	if v, ok := n.Number(name); ok {
		return finite(v), true
	}
	s, ok := n.String(name)
	if !ok {
		return 0, false
	}
	return ParseNumber(s), true
}

// NumberOr reads a numeric property or returns fallback when it is absent.
func NumberOr(n Node, name string, fallback float64) float64 {
	if v, ok := NumberProp(n, name); ok {
		return v
	}
	return fallback
}

// StringProp reads a string property, returning "" when absent.
func StringProp(n Node, name string) string {
	s, _ := n.String(name)
	return s
}

// BoolProp reads a flag: any non-zero number, or a string strconv.ParseBool
// accepts as true.
func BoolProp(n Node, name string) bool {
	if v, ok := n.Number(name); ok {
		return v != 0
	}
	s, ok := n.String(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

// ParseNumber parses a float, returning 0 for anything unparsable or not finite.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return finite(v)
}

// ParseEdgeInsets parses a one-component (uniform) or four-component
// (top right bottom left) string. Components may be separated by commas
// and/or whitespace. Unparsable components are 0; any other component count
// yields zero insets.
func ParseEdgeInsets(s string) EdgeInsets {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	switch len(fields) {
	case 1:
		return InsetsAll(ParseNumber(fields[0]))
	case 4:
		return InsetsTRBL(
			ParseNumber(fields[0]),
			ParseNumber(fields[1]),
			ParseNumber(fields[2]),
			ParseNumber(fields[3]),
		)
	default:
		return EdgeInsets{}
	}
}

// PaddingProp resolves a node's padding: the padding property (number or
// string) with per-side overrides applied on top. Negative sides are 0.
func PaddingProp(n Node) EdgeInsets {
	var e EdgeInsets
	if v, ok := n.Number(PropPadding); ok {
		e = InsetsAll(finite(v))
	} else if s, ok := n.String(PropPadding); ok {
		e = ParseEdgeInsets(s)
	}
	if v, ok := NumberProp(n, PropPaddingTop); ok {
		e.Top = v
	}
	if v, ok := NumberProp(n, PropPaddingRight); ok {
		e.Right = v
	}
	if v, ok := NumberProp(n, PropPaddingBottom); ok {
		e.Bottom = v
	}
	if v, ok := NumberProp(n, PropPaddingLeft); ok {
		e.Left = v
	}
	return EdgeInsets{
		Top:    nonNegative(e.Top),
		Right:  nonNegative(e.Right),
		Bottom: nonNegative(e.Bottom),
		Left:   nonNegative(e.Left),
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
