package layout

// flexSlot holds intermediate placement state for one child of a stack.
// It is allocated per positioning call, not stored in the cache.
type flexSlot struct {
	mainSize  float64
	crossSize float64
	mainPos   float64
	crossPos  float64
}

// positionStack arranges a stack's children within its content rect along
// dir and recurses into each child. One algorithm serves both axes.
func (e *Engine) positionStack(n Node, info LayoutInfo, content Rect, dir Direction) {
	children := n.Children()
	if len(children) == 0 {
		return
	}

	contentMain := mainOf(content.Size(), dir)
	contentCross := crossOf(content.Size(), dir)

	// Phase 1: tell every child who its parent is, collect the fixed sizes
	// measured earlier and the flexible weights.
	slots := make([]flexSlot, len(children))
	infos := make([]LayoutInfo, len(children))
	var items []FlexItem
	fixedMain := 0.0

	for i, child := range children {
		e.cache.entry(child.ID()).ParentType = n.Type()
		infos[i] = e.resolve(child)
		if infos[i].IsFlexible() {
			items = append(items, FlexItem{Index: i, Grow: infos[i].FlexGrow})
			continue
		}
		slots[i].mainSize = basisMain(infos[i], infos[i].ContentSize, dir)
		slots[i].crossSize = crossOf(infos[i].ContentSize, dir)
		fixedMain += slots[i].mainSize
	}

	// Phase 2: spacing, then leftover space for the flexible children.
	gap, totalSpacing := resolveSpacing(info, len(children), contentMain-fixedMain, len(items) > 0)
	available := nonNegative(contentMain - fixedMain - totalSpacing)
	flexMain := e.distributeFlex(children, infos, items, slots, available, contentCross, dir)

	// Phase 3: justify along the main axis.
	remaining := nonNegative(contentMain - fixedMain - totalSpacing - flexMain)
	lead, between := justifyGaps(info.Justify, remaining, len(children))
	between += gap

	// Phase 4: cross-axis sizing and alignment.
	offset := lead
	for i := range slots {
		align := effectiveAlign(info.Align, infos[i].AlignSelf)
		if align == AlignStretch {
			slots[i].crossSize = contentCross
		}
		slots[i].mainPos = offset
		slots[i].crossPos = alignOffset(align, contentCross, slots[i].crossSize)
		offset += slots[i].mainSize + between
	}

	// Phase 5: convert to rects and recurse.
	for i, child := range children {
		e.position(child, slotRect(content, dir, slots[i]))
	}
}

// distributeFlex splits available among the flexible children in proportion
// to their grow weights, clamps each share against the child's own min/max
// main size, and returns the total handed out. Clamping does not redistribute
// the difference to siblings.
//
// Each flexible child is measured here, against its share and the container's
// cross size, so its subtree is resolved before it is positioned.
func (e *Engine) distributeFlex(children []Node, infos []LayoutInfo, items []FlexItem, slots []flexSlot, available, contentCross float64, dir Direction) float64 {
	totalGrow := 0.0
	for _, it := range items {
		totalGrow += it.Grow
	}

	distributed := 0.0
	for _, it := range items {
		child := children[it.Index]
		minMain, maxMain := mainConstraints(infos[it.Index], dir)
		share := nonNegative(clamp(available*ratio(it.Grow, totalGrow), minMain, maxMain))

		measured := e.measure(child, sizeOn(dir, share, contentCross))
		cross := crossOf(measured, dir)
		e.cache.entry(child.ID()).ContentSize = sizeOn(dir, share, cross)

		slots[it.Index].mainSize = share
		slots[it.Index].crossSize = cross
		distributed += share

		e.logger.Debug("flex", "id", child.ID(), "grow", it.Grow, "main", share)
	}
	return distributed
}

// resolveSpacing returns the gap inserted between adjacent children and the
// total main-axis space those gaps take. Distributing justify policies supply
// their own gaps, so spacing is zero for them.
func resolveSpacing(info LayoutInfo, count int, free float64, hasFlex bool) (gap, total float64) {
	if count < 2 || info.Justify.distributes() {
		return 0, 0
	}
	between := float64(count - 1)
	if info.EqualSpacing {
		if hasFlex {
			return 0, 0
		}
		gap = ratio(nonNegative(free), between)
		return gap, gap * between
	}
	return info.Spacing, info.Spacing * between
}

// justifyGaps returns the leading offset and the extra space between
// children for the policy, given the remaining free space.
func justifyGaps(justify Justify, remaining float64, count int) (lead, between float64) {
	if remaining <= 0 || count == 0 {
		return 0, 0
	}

	switch justify {
	case JustifyEnd:
		return remaining, 0
	case JustifyCenter:
		return remaining / 2, 0
	case JustifySpaceBetween:
		return 0, ratio(remaining, float64(count-1))
	case JustifySpaceAround:
		return ratio(remaining, float64(2*count)), ratio(remaining, float64(count))
	case JustifySpaceEvenly:
		g := ratio(remaining, float64(count+1))
		return g, g
	default: // JustifyStart
		return 0, 0
	}
}

// alignOffset returns the offset for positioning a child on the cross axis.
func alignOffset(align Align, crossSize, itemSize float64) float64 {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

// mainConstraints returns the child's min/max size along dir.
func mainConstraints(info LayoutInfo, dir Direction) (float64, float64) {
	if dir == Row {
		return info.MinWidth, info.MaxWidth
	}
	return info.MinHeight, info.MaxHeight
}

func mainOf(s Size, dir Direction) float64 {
	if dir == Row {
		return s.Width
	}
	return s.Height
}

func crossOf(s Size, dir Direction) float64 {
	if dir == Row {
		return s.Height
	}
	return s.Width
}

func sizeOn(dir Direction, main, cross float64) Size {
	if dir == Row {
		return NewSize(main, cross)
	}
	return NewSize(cross, main)
}

func slotRect(content Rect, dir Direction, s flexSlot) Rect {
	if dir == Row {
		return Rect{
			X:      content.X + s.mainPos,
			Y:      content.Y + s.crossPos,
			Width:  s.mainSize,
			Height: s.crossSize,
		}
	}
	return Rect{
		X:      content.X + s.crossPos,
		Y:      content.Y + s.mainPos,
		Width:  s.crossSize,
		Height: s.mainSize,
	}
}
