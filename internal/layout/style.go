package layout

import "strings"

// Type tags understood by the engine. Unrecognized tags measure as zero.
const (
	TypeStackVertical   = "stack-vertical"
	TypeStackHorizontal = "stack-horizontal"
	TypeOverlay         = "overlay"
	TypeScroll          = "scroll"
	TypeText            = "text"
	TypeButton          = "button"
	TypeImage           = "image"
	TypeSpacer          = "spacer"
	TypeDivider         = "divider"
)

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// stackDirection maps a stack type tag to its main axis.
func stackDirection(typ string) (Direction, bool) {
	switch typ {
	case TypeStackVertical:
		return Column, true
	case TypeStackHorizontal:
		return Row, true
	default:
		return Row, false
	}
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// distributes reports whether the policy spreads leftover space between
// children itself, in which case explicit spacing is ignored.
func (j Justify) distributes() bool {
	return j == JustifySpaceBetween || j == JustifySpaceAround || j == JustifySpaceEvenly
}

func (j Justify) String() string {
	switch j {
	case JustifyEnd:
		return "end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	default:
		return "start"
	}
}

// ParseJustify converts a property string to a Justify. Unknown values are start.
func ParseJustify(s string) Justify {
	switch normalizeKeyword(s) {
	case "end", "trailing", "bottom", "right":
		return JustifyEnd
	case "center", "middle":
		return JustifyCenter
	case "space-between":
		return JustifySpaceBetween
	case "space-around":
		return JustifySpaceAround
	case "space-evenly":
		return JustifySpaceEvenly
	default:
		return JustifyStart
	}
}

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignAuto    Align = iota // Inherit the container's alignment (AlignSelf only)
	AlignStart                // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	case AlignStretch:
		return "stretch"
	default:
		return "auto"
	}
}

// ParseAlign converts a property string to an Align. Unknown values are AlignAuto.
func ParseAlign(s string) Align {
	switch normalizeKeyword(s) {
	case "start", "leading", "top", "left":
		return AlignStart
	case "end", "trailing", "bottom", "right":
		return AlignEnd
	case "center", "middle":
		return AlignCenter
	case "stretch", "fill":
		return AlignStretch
	default:
		return AlignAuto
	}
}

// effectiveAlign returns the child's override when set, else the container's.
func effectiveAlign(container, self Align) Align {
	if self != AlignAuto {
		return self
	}
	return container
}

func normalizeKeyword(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "_", "-")
}
