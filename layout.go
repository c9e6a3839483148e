// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flow

import (
	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-flow/internal/layout"
)

// Node is the interface a tree must implement to be laid out.
type Node = layout.Node

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignAuto    = layout.AlignAuto
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Type tags understood by the engine.
const (
	TypeStackVertical   = layout.TypeStackVertical
	TypeStackHorizontal = layout.TypeStackHorizontal
	TypeOverlay         = layout.TypeOverlay
	TypeScroll          = layout.TypeScroll
	TypeText            = layout.TypeText
	TypeButton          = layout.TypeButton
	TypeImage           = layout.TypeImage
	TypeSpacer          = layout.TypeSpacer
	TypeDivider         = layout.TypeDivider
)

// Property names read and written by the engine.
const (
	PropPadding         = layout.PropPadding
	PropPaddingTop      = layout.PropPaddingTop
	PropPaddingRight    = layout.PropPaddingRight
	PropPaddingBottom   = layout.PropPaddingBottom
	PropPaddingLeft     = layout.PropPaddingLeft
	PropSpacing         = layout.PropSpacing
	PropEqualSpacing    = layout.PropEqualSpacing
	PropJustify         = layout.PropJustify
	PropAlign           = layout.PropAlign
	PropAlignSelf       = layout.PropAlignSelf
	PropFlexGrow        = layout.PropFlexGrow
	PropFlexShrink      = layout.PropFlexShrink
	PropFlexBasis       = layout.PropFlexBasis
	PropPreferredWidth  = layout.PropPreferredWidth
	PropPreferredHeight = layout.PropPreferredHeight
	PropMinWidth        = layout.PropMinWidth
	PropMaxWidth        = layout.PropMaxWidth
	PropMinHeight       = layout.PropMinHeight
	PropMaxHeight       = layout.PropMaxHeight
	PropText            = layout.PropText
	PropFontSize        = layout.PropFontSize
	PropLineHeight      = layout.PropLineHeight
	PropAspectRatio     = layout.PropAspectRatio
	PropThickness       = layout.PropThickness
	PropOrientation     = layout.PropOrientation
	PropSize            = layout.PropSize
	PropScrollX         = layout.PropScrollX
	PropScrollY         = layout.PropScrollY
	PropClip            = layout.PropClip
	PropX               = layout.PropX
	PropY               = layout.PropY
	PropWidth           = layout.PropWidth
	PropHeight          = layout.PropHeight
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Size represents a width/height pair.
type Size = layout.Size

// EdgeInsets represents padding on four sides (top, right, bottom, left).
type EdgeInsets = layout.EdgeInsets

// LayoutInfo holds the cached layout state of one node.
type LayoutInfo = layout.LayoutInfo

// Engine computes layouts and owns the per-call cache.
type Engine = layout.Engine

// EngineOption configures an Engine.
type EngineOption = layout.Option

// Estimator estimates the intrinsic size of a text run.
type Estimator = layout.Estimator

// TextStyle carries the font parameters a text estimate depends on.
type TextStyle = layout.TextStyle

// CellEstimator estimates text by display cell count.
type CellEstimator = layout.CellEstimator

// Measurement is the input handed to a leaf measurement strategy.
type Measurement = layout.Measurement

// MeasureFunc measures one leaf type.
type MeasureFunc = layout.MeasureFunc

// NewEngine creates an Engine with the built-in measurers.
func NewEngine(opts ...EngineOption) *Engine {
	return layout.New(opts...)
}

// WithEstimator replaces the engine's text size estimator.
func WithEstimator(est Estimator) EngineOption {
	return layout.WithEstimator(est)
}

// WithTextDefaults sets the font parameters for text nodes that declare none.
func WithTextDefaults(style TextStyle) EngineOption {
	return layout.WithTextDefaults(style)
}

// WithMeasurer registers a measurement strategy for a leaf type tag.
func WithMeasurer(typ string, fn MeasureFunc) EngineOption {
	return layout.WithMeasurer(typ, fn)
}

// WithLogger sets the logger that receives debug-level pass tracing.
func WithLogger(l *log.Logger) EngineOption {
	return layout.WithLogger(l)
}

// Default text metrics used when neither node nor engine declares any.
const (
	DefaultFontSize   = layout.DefaultFontSize
	DefaultLineHeight = layout.DefaultLineHeight
	DefaultCharWidth  = layout.DefaultCharWidth
)

// NewCellEstimator returns a CellEstimator with the default char width.
func NewCellEstimator() CellEstimator {
	return layout.NewCellEstimator()
}

// ComputeLayout lays out root inside a container of the given size with a
// fresh engine.
func ComputeLayout(root Node, container Size) {
	layout.ComputeLayout(root, container)
}

// ComputeLayoutClipped is ComputeLayout that also writes each node's clip flag.
func ComputeLayoutClipped(root Node, container Size) {
	layout.New().ComputeLayoutClipped(root, container)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// NewSize creates a Size, clamping negative values to zero.
func NewSize(width, height float64) Size {
	return layout.NewSize(width, height)
}

// InsetsAll creates EdgeInsets with the same value on all sides.
func InsetsAll(n float64) EdgeInsets {
	return layout.InsetsAll(n)
}

// InsetsSymmetric creates EdgeInsets with vertical (top/bottom) and horizontal (left/right) values.
func InsetsSymmetric(v, h float64) EdgeInsets {
	return layout.InsetsSymmetric(v, h)
}

// InsetsTRBL creates EdgeInsets following CSS order: Top, Right, Bottom, Left.
func InsetsTRBL(t, r, b, l float64) EdgeInsets {
	return layout.InsetsTRBL(t, r, b, l)
}

// ParseJustify parses a justify keyword, defaulting to JustifyStart.
func ParseJustify(s string) Justify {
	return layout.ParseJustify(s)
}

// ParseAlign parses an align keyword, defaulting to AlignAuto.
func ParseAlign(s string) Align {
	return layout.ParseAlign(s)
}
