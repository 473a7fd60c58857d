package layout

import "math"

// flexItem holds intermediate calculation state for an in-flow child.
// Sizes exclude margins.
type flexItem struct {
	id    int
	style Style

	mainMargin  int
	crossMargin int
	minMain     int
	maxMain     int // negative when unbounded

	explicit bool // main size set by the style; never shrunk
	size     int  // main-axis border-box size
	cross    int  // cross-axis border-box size
	mainPos  int  // offset of the margin box along the main axis
	crossPos int  // offset of the margin box along the cross axis
	frozen   bool
}

// layoutChildren arranges the in-flow children of a node within its content
// rect. Children are partitioned into fixed (explicit main size),
// content-sized (measured) and flexible (grow > 0 with an auto main size,
// starting from zero).
func (c *calc) layoutChildren(id int, style Style, children []int, content Rect, clip Rect, clipped bool) {
	items := make([]flexItem, 0, len(children))
	for _, ch := range children {
		cs := c.tree.Style(ch)
		if !cs.inFlow() {
			continue
		}
		items = append(items, flexItem{id: ch, style: cs})
	}
	if len(items) == 0 {
		return
	}

	isRow := style.Direction == Row
	mainSize, crossSize := content.Width, content.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: hypothetical main sizes.
	for i := range items {
		it := &items[i]
		s := it.style
		mainVal := s.Width
		if isRow {
			it.mainMargin, it.crossMargin = s.Margin.Horizontal(), s.Margin.Vertical()
			it.minMain = s.MinWidth.Resolve(mainSize, 0)
			it.maxMain = resolveMax(s.MaxWidth, mainSize)
		} else {
			mainVal = s.Height
			it.mainMargin, it.crossMargin = s.Margin.Vertical(), s.Margin.Horizontal()
			it.minMain = s.MinHeight.Resolve(mainSize, 0)
			it.maxMain = resolveMax(s.MaxHeight, mainSize)
		}

		var base int
		switch {
		case !mainVal.IsAuto():
			base = mainVal.Resolve(mainSize, 0)
			it.explicit = true
		case s.FlexGrow > 0:
			base = 0
		case isRow:
			base = c.intrinsic(it.id, max(0, mainSize-it.mainMargin)).Width
		default:
			width := c.crossSize(it, alignOf(style, s), isRow, crossSize)
			base = c.intrinsic(it.id, width).Height
		}
		it.size = clampSize(max(0, base), it.minMain, it.maxMain)
	}

	// Phase 2: resolve flexible lengths.
	gaps := style.Gap * (len(items) - 1)
	free := mainSize - gaps - outerMain(items)
	if free > 0 {
		growItems(items, free)
	} else if free < 0 {
		shrinkItems(items, -free)
	}

	// Phase 3: justify along the main axis.
	free = mainSize - gaps - outerMain(items)
	offset := justifyOffset(style.JustifyContent, free, len(items))
	spacing := justifySpacing(style.JustifyContent, free, len(items))
	for i := range items {
		items[i].mainPos = offset
		offset += items[i].size + items[i].mainMargin + style.Gap + spacing
	}

	// Phase 4: cross sizes and alignment.
	for i := range items {
		it := &items[i]
		align := alignOf(style, it.style)
		it.cross = c.crossSize(it, align, isRow, crossSize)
		it.crossPos = alignOffset(align, crossSize, it.cross+it.crossMargin)
	}

	// Phase 5: convert to rects and recurse.
	for i := range items {
		it := &items[i]
		m := it.style.Margin
		var r Rect
		if isRow {
			r = Rect{
				X:      content.X + it.mainPos + m.Left,
				Y:      content.Y + it.crossPos + m.Top,
				Width:  it.size,
				Height: it.cross,
			}
		} else {
			r = Rect{
				X:      content.X + it.crossPos + m.Left,
				Y:      content.Y + it.mainPos + m.Top,
				Width:  it.cross,
				Height: it.size,
			}
		}
		if style.Overflow == OverflowHidden {
			r = r.Intersect(content)
		}
		c.node(it.id, r, clip, clipped)
	}
}

// crossSize returns an item's cross-axis border-box size. Row items need
// their main size resolved first.
func (c *calc) crossSize(it *flexItem, align Align, isRow bool, crossSize int) int {
	s := it.style
	crossVal, minVal, maxVal := s.Width, s.MinWidth, s.MaxWidth
	if isRow {
		crossVal, minVal, maxVal = s.Height, s.MinHeight, s.MaxHeight
	}
	avail := max(0, crossSize-it.crossMargin)

	var v int
	switch {
	case !crossVal.IsAuto():
		v = crossVal.Resolve(crossSize, 0)
	case align == AlignStretch:
		v = avail
	case isRow:
		v = c.intrinsic(it.id, it.size).Height
	default:
		v = c.intrinsic(it.id, avail).Width
	}
	return clampSize(max(0, v), minVal.Resolve(crossSize, 0), resolveMax(maxVal, crossSize))
}

func alignOf(parent, child Style) Align {
	if child.AlignSelf != nil {
		return *child.AlignSelf
	}
	return parent.AlignItems
}

func outerMain(items []flexItem) int {
	total := 0
	for i := range items {
		total += items[i].size + items[i].mainMargin
	}
	return total
}

// growItems hands free cells to items with a grow factor. Items that hit
// their max are frozen there and the rest is redistributed.
func growItems(items []flexItem, free int) {
	for free > 0 {
		var active []int
		var weights []float64
		for i := range items {
			if !items[i].frozen && items[i].style.FlexGrow > 0 {
				active = append(active, i)
				weights = append(weights, items[i].style.FlexGrow)
			}
		}
		if len(active) == 0 {
			return
		}

		shares := distribute(free, weights)
		violated := false
		for k, i := range active {
			it := &items[i]
			target := it.size + shares[k]
			if clamped := clampSize(target, it.minMain, it.maxMain); clamped != target {
				free -= clamped - it.size
				it.size = clamped
				it.frozen = true
				violated = true
			}
		}
		if violated {
			continue
		}
		for k, i := range active {
			items[i].size += shares[k]
		}
		return
	}
}

// shrinkItems removes deficit cells from auto-sized items with a shrink
// factor. Items that reach their min (or zero) are frozen there and the rest
// is taken from the others. Explicit sizes are kept; whatever cannot be
// removed overflows.
func shrinkItems(items []flexItem, deficit int) {
	for deficit > 0 {
		var active []int
		var weights []float64
		for i := range items {
			it := &items[i]
			if !it.frozen && !it.explicit && it.style.FlexShrink > 0 && it.size > max(0, it.minMain) {
				active = append(active, i)
				weights = append(weights, it.style.FlexShrink)
			}
		}
		if len(active) == 0 {
			return
		}

		cuts := distribute(deficit, weights)
		violated := false
		for k, i := range active {
			it := &items[i]
			floor := max(0, it.minMain)
			if it.size-cuts[k] < floor {
				deficit -= it.size - floor
				it.size = floor
				it.frozen = true
				violated = true
			}
		}
		if violated {
			continue
		}
		for k, i := range active {
			items[i].size -= cuts[k]
		}
		return
	}
}

// distribute splits total cells by weight. Shares are floored and the
// leftover cells go one at a time to the earliest entries, so three equal
// weights over 100 cells give [34, 33, 33].
func distribute(total int, weights []float64) []int {
	shares := make([]int, len(weights))
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 || total <= 0 {
		return shares
	}

	given := 0
	for i, w := range weights {
		shares[i] = int(math.Floor(float64(total) * w / sum))
		given += shares[i]
	}
	for i := len(shares) - 1; given > total && i >= 0; i-- {
		if shares[i] > 0 {
			shares[i]--
			given--
		}
	}
	for i := 0; given < total; i = (i + 1) % len(shares) {
		shares[i]++
		given++
	}
	return shares
}

// justifyOffset returns the initial offset for positioning children based
// on the justify mode and available free space.
func justifyOffset(justify Justify, free, count int) int {
	if free <= 0 || count == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return free
	case JustifyCenter:
		return free / 2
	case JustifySpaceAround:
		return free / (count * 2)
	case JustifySpaceEvenly:
		return free / (count + 1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra spacing between children based on the
// justify mode and available free space.
func justifySpacing(justify Justify, free, count int) int {
	if free <= 0 || count <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return free / (count - 1)
	case JustifySpaceAround:
		return free / count
	case JustifySpaceEvenly:
		return free / (count + 1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}

// alignOffset returns the offset of an item's margin box on the cross axis.
// An item larger than the line starts at zero.
func alignOffset(align Align, crossSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return max(0, crossSize-itemSize)
	case AlignCenter:
		return max(0, (crossSize-itemSize)/2)
	default: // AlignStart, AlignStretch
		return 0
	}
}
