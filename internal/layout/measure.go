package layout

import "math"

// resolve reads the node's layout properties into its cache entry and returns
// a copy. Measured sizes, frames and the parent type already in the entry are
// preserved.
func (e *Engine) resolve(n Node) LayoutInfo {
	info := e.cache.entry(n.ID())

	info.Padding = PaddingProp(n)
	info.Justify = ParseJustify(StringProp(n, PropJustify))
	info.Align = ParseAlign(StringProp(n, PropAlign))
	if info.Align == AlignAuto {
		info.Align = AlignStretch
	}
	info.AlignSelf = ParseAlign(StringProp(n, PropAlignSelf))

	info.FlexGrow = NumberOr(n, PropFlexGrow, 0)
	info.FlexShrink = NumberOr(n, PropFlexShrink, 1)
	info.FlexBasis = NumberOr(n, PropFlexBasis, 0)

	info.MinWidth = NumberOr(n, PropMinWidth, 0)
	info.MaxWidth = NumberOr(n, PropMaxWidth, math.Inf(1))
	info.MinHeight = NumberOr(n, PropMinHeight, 0)
	info.MaxHeight = NumberOr(n, PropMaxHeight, math.Inf(1))

	info.Spacing = nonNegative(NumberOr(n, PropSpacing, 0))
	info.EqualSpacing = BoolProp(n, PropEqualSpacing)
	info.Clip = n.Type() == TypeScroll || BoolProp(n, PropClip)

	return *info
}

// measure computes the node's intrinsic content size bounded by available and
// records it in the cache. The node's declared properties are not modified.
func (e *Engine) measure(n Node, available Size) Size {
	info := e.resolve(n)
	typ := n.Type()

	var size Size
	switch typ {
	case TypeStackVertical, TypeStackHorizontal:
		dir, _ := stackDirection(typ)
		size = e.finish(n, info, e.measureStack(n, info, available, dir))
	case TypeOverlay:
		size = e.finish(n, info, e.measureOverlay(n, info, available))
	case TypeScroll:
		size = e.measureScroll(n, available)
	default:
		if fn, ok := e.measurers[typ]; ok {
			size = e.finish(n, info, fn(Measurement{
				Node:         n,
				Available:    available,
				Padding:      info.Padding,
				ParentType:   info.ParentType,
				Estimator:    e.estimator,
				TextDefaults: e.textDefaults,
			}))
		}
	}

	stored := e.cache.entry(n.ID())
	stored.ContentSize = size
	stored.Measured = true
	e.logger.Debug("measure", "id", n.ID(), "type", typ,
		"width", size.Width, "height", size.Height)
	return size
}

// finish applies preferred sizes, then min/max clamps, then non-negativity.
func (e *Engine) finish(n Node, info LayoutInfo, s Size) Size {
	if w, ok := NumberProp(n, PropPreferredWidth); ok {
		s.Width = w
	}
	if h, ok := NumberProp(n, PropPreferredHeight); ok {
		s.Height = h
	}
	s.Width = clamp(s.Width, info.MinWidth, info.MaxWidth)
	s.Height = clamp(s.Height, info.MinHeight, info.MaxHeight)
	return NewSize(s.Width, s.Height)
}

// measureStack sums fixed children along the main axis and takes their
// maximum across it. Flexible children are sized from leftover space while
// positioning, so they are not measured here.
func (e *Engine) measureStack(n Node, info LayoutInfo, available Size, dir Direction) Size {
	childAvailable := available.Shrink(info.Padding)
	children := n.Children()

	var mainSum, crossMax float64
	for _, child := range children {
		ci := e.resolve(child)
		if ci.IsFlexible() {
			continue
		}
		s := e.measure(child, childAvailable)
		mainSum += basisMain(ci, s, dir)
		crossMax = max(crossMax, crossOf(s, dir))
	}

	if !info.EqualSpacing && len(children) > 1 {
		mainSum += info.Spacing * float64(len(children)-1)
	}

	return sizeOn(dir, mainSum, crossMax).Grow(info.Padding)
}

// measureOverlay returns the bounding box of all children, each measured
// against the same content-available size.
func (e *Engine) measureOverlay(n Node, info LayoutInfo, available Size) Size {
	childAvailable := available.Shrink(info.Padding)
	var bounds Size
	for _, child := range n.Children() {
		s := e.measure(child, childAvailable)
		bounds.Width = max(bounds.Width, s.Width)
		bounds.Height = max(bounds.Height, s.Height)
	}
	return bounds.Grow(info.Padding)
}

// measureScroll passes the full available size to its content and reports the
// available size itself: a viewport's size is imposed from outside.
func (e *Engine) measureScroll(n Node, available Size) Size {
	for _, child := range n.Children() {
		e.measure(child, available)
	}
	return available
}

// basisMain is the main-axis size a fixed child occupies: its flex basis when
// set, else its measured size.
func basisMain(ci LayoutInfo, measured Size, dir Direction) float64 {
	if ci.FlexBasis > 0 {
		return ci.FlexBasis
	}
	return mainOf(measured, dir)
}
