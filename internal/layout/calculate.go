package layout

// calc holds per-call state. Nothing survives between Compute calls.
type calc struct {
	tree  Tree
	boxes []Box
	sizes map[sizeKey]Size
}

type sizeKey struct {
	id       int
	maxWidth int
}

// Compute lays out the subtree rooted at root within avail and returns the
// geometry of every node. It is a pure function of the tree and avail: the
// same inputs always produce the same boxes.
//
// An auto-sized root fills avail. When avail.Height is Unbounded, an
// auto-height root takes its content height instead.
func Compute(tree Tree, root int, avail Size) *Geometry {
	geo := &Geometry{Root: root, Boxes: make([]Box, tree.Len())}
	if root < 0 || root >= tree.Len() {
		return geo
	}
	style := tree.Style(root)
	if style.Display == DisplayNone {
		return geo
	}

	c := &calc{tree: tree, boxes: geo.Boxes, sizes: make(map[sizeKey]Size)}

	availW := max(0, avail.Width)
	width := style.Width.Resolve(availW, availW)
	width = clampSize(width, style.MinWidth.Resolve(availW, 0), resolveMax(style.MaxWidth, availW))

	var height int
	if avail.Height < 0 {
		height = c.intrinsic(root, width).Height
		if style.Height.Unit == UnitFixed {
			height = style.Height.Resolve(0, height)
		}
	} else {
		height = style.Height.Resolve(avail.Height, avail.Height)
		height = clampSize(height, style.MinHeight.Resolve(avail.Height, 0), resolveMax(style.MaxHeight, avail.Height))
	}

	c.node(root, Rect{Width: max(0, width), Height: max(0, height)}, Rect{}, false)
	return geo
}

// node records the box of id at rect and lays out its children.
func (c *calc) node(id int, rect Rect, clip Rect, clipped bool) {
	style := c.tree.Style(id)
	rect.Width = max(0, rect.Width)
	rect.Height = max(0, rect.Height)
	border := style.BorderEdges()
	content := rect.Inset(border).Inset(style.Padding)

	c.boxes[id] = Box{
		Rect:    rect,
		Content: content,
		Padding: style.Padding,
		Border:  border,
		Margin:  style.Margin,
		Clip:    clip,
		Clipped: clipped,
		Valid:   true,
	}

	if style.Overflow == OverflowHidden {
		if clipped {
			clip = content.Intersect(clip)
		} else {
			clip = content
		}
		clipped = true
	}

	children := c.tree.Children(id)
	if len(children) == 0 {
		return
	}
	c.layoutChildren(id, style, children, content, clip, clipped)
	c.layoutAbsolute(children, rect.Inset(border), clip, clipped)
}

// intrinsic returns the natural border-box size of id when it may use at
// most maxWidth columns.
func (c *calc) intrinsic(id, maxWidth int) Size {
	key := sizeKey{id: id, maxWidth: maxWidth}
	if s, ok := c.sizes[key]; ok {
		return s
	}

	style := c.tree.Style(id)
	insets := style.Insets()
	outerW := maxWidth
	if !style.Width.IsAuto() {
		outerW = max(0, style.Width.Resolve(maxWidth, maxWidth))
	}
	inner := max(0, outerW-insets.Horizontal())

	var w, h int
	children := c.tree.Children(id)
	if len(children) == 0 {
		w, h = c.tree.Measure(id, inner)
	} else {
		n := 0
		for _, ch := range children {
			cs := c.tree.Style(ch)
			if !cs.inFlow() {
				continue
			}
			n++
			m := cs.Margin
			sz := c.intrinsic(ch, max(0, inner-m.Horizontal()))
			cw, chh := sz.Width+m.Horizontal(), sz.Height+m.Vertical()
			if style.Direction == Row {
				w += cw
				h = max(h, chh)
			} else {
				w = max(w, cw)
				h += chh
			}
		}
		if n > 1 {
			if style.Direction == Row {
				w += style.Gap * (n - 1)
			} else {
				h += style.Gap * (n - 1)
			}
		}
	}

	w += insets.Horizontal()
	h += insets.Vertical()
	if !style.Width.IsAuto() {
		w = outerW
	}
	if style.Height.Unit == UnitFixed {
		h = style.Height.Resolve(0, h)
	}
	w = clampSize(w, style.MinWidth.Resolve(maxWidth, 0), resolveMax(style.MaxWidth, maxWidth))
	if style.MinHeight.Unit == UnitFixed {
		h = max(h, style.MinHeight.Resolve(0, 0))
	}
	if style.MaxHeight.Unit == UnitFixed {
		h = min(h, style.MaxHeight.Resolve(0, h))
	}

	s := Size{Width: max(0, w), Height: max(0, h)}
	c.sizes[key] = s
	return s
}

// layoutAbsolute places absolutely positioned children against the padding
// box pb using their offsets. They never affect in-flow siblings.
func (c *calc) layoutAbsolute(children []int, pb Rect, clip Rect, clipped bool) {
	for _, ch := range children {
		s := c.tree.Style(ch)
		if s.Display == DisplayNone || s.Position != PositionAbsolute {
			continue
		}
		m := s.Margin
		left, hasLeft := resolveOffset(s.Offset.Left, pb.Width)
		right, hasRight := resolveOffset(s.Offset.Right, pb.Width)
		top, hasTop := resolveOffset(s.Offset.Top, pb.Height)
		bottom, hasBottom := resolveOffset(s.Offset.Bottom, pb.Height)

		var w int
		switch {
		case !s.Width.IsAuto():
			w = s.Width.Resolve(pb.Width, 0)
		case hasLeft && hasRight:
			w = pb.Width - left - right - m.Horizontal()
		default:
			w = c.intrinsic(ch, max(0, pb.Width-left-m.Horizontal())).Width
		}
		w = clampSize(w, s.MinWidth.Resolve(pb.Width, 0), resolveMax(s.MaxWidth, pb.Width))

		var h int
		switch {
		case !s.Height.IsAuto():
			h = s.Height.Resolve(pb.Height, 0)
		case hasTop && hasBottom:
			h = pb.Height - top - bottom - m.Vertical()
		default:
			h = c.intrinsic(ch, max(0, w)).Height
		}
		h = clampSize(h, s.MinHeight.Resolve(pb.Height, 0), resolveMax(s.MaxHeight, pb.Height))

		x := pb.X + m.Left
		switch {
		case hasLeft:
			x += left
		case hasRight:
			x = pb.Right() - right - m.Right - w
		}
		y := pb.Y + m.Top
		switch {
		case hasTop:
			y += top
		case hasBottom:
			y = pb.Bottom() - bottom - m.Bottom - h
		}

		c.node(ch, Rect{X: x, Y: y, Width: w, Height: h}, clip, clipped)
	}
}

func resolveOffset(v Value, available int) (int, bool) {
	if v.IsAuto() {
		return 0, false
	}
	return v.Resolve(available, 0), true
}

// resolveMax resolves a max constraint; auto means unbounded.
func resolveMax(v Value, available int) int {
	if v.IsAuto() {
		return -1
	}
	return v.Resolve(available, available)
}

// clampSize restricts v to [minVal, maxVal]. A negative maxVal means no
// maximum. If minVal > maxVal, minVal wins (matches CSS behavior).
func clampSize(v, minVal, maxVal int) int {
	if maxVal >= 0 && v > maxVal {
		v = maxVal
	}
	if v < minVal {
		v = minVal
	}
	return v
}
