package layout

// position records frame for the node and places its children inside the
// frame inset by the node's padding. Leaves end the recursion.
func (e *Engine) position(n Node, frame Rect) {
	stored := e.cache.entry(n.ID())
	stored.Frame = frame
	stored.Positioned = true
	info := *stored

	content := frame.Inset(info.Padding)
	e.logger.Debug("position", "id", n.ID(), "type", n.Type(),
		"x", frame.X, "y", frame.Y, "width", frame.Width, "height", frame.Height)

	switch typ := n.Type(); typ {
	case TypeStackVertical, TypeStackHorizontal:
		dir, _ := stackDirection(typ)
		e.positionStack(n, info, content, dir)
	case TypeOverlay:
		e.positionOverlay(n, info, content)
	case TypeScroll:
		e.positionScroll(n, content)
	}
}

// positionOverlay places every child over the same content rect, aligned on
// both axes by the child's effective alignment.
func (e *Engine) positionOverlay(n Node, info LayoutInfo, content Rect) {
	for _, child := range n.Children() {
		ci, _ := e.cache.Get(child.ID())
		align := effectiveAlign(info.Align, ci.AlignSelf)

		size := ci.ContentSize
		if align == AlignStretch {
			size = content.Size()
		}
		x := content.X + alignOffset(align, content.Width, size.Width)
		y := content.Y + alignOffset(align, content.Height, size.Height)
		e.position(child, NewRect(x, y, size.Width, size.Height))
	}
}

// positionScroll places content at its measured size, shifted by the scroll
// offsets.
func (e *Engine) positionScroll(n Node, content Rect) {
	dx := NumberOr(n, PropScrollX, 0)
	dy := NumberOr(n, PropScrollY, 0)
	for _, child := range n.Children() {
		ci, _ := e.cache.Get(child.ID())
		frame := RectOf(ci.ContentSize)
		frame.X = content.X
		frame.Y = content.Y
		e.position(child, frame.Translate(-dx, -dy))
	}
}
