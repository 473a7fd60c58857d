package layout

// testTree is a minimal arena for exercising Compute.
type testTree struct {
	nodes []testNode
}

type testNode struct {
	style    Style
	children []int
	// natural leaf size; width is capped at the offered width and height
	// grows to keep the area (a crude stand-in for wrapped text)
	w, h int
}

func newTestTree() *testTree {
	return &testTree{}
}

func (t *testTree) add(style Style, children ...int) int {
	t.nodes = append(t.nodes, testNode{style: style, children: children})
	return len(t.nodes) - 1
}

func (t *testTree) leaf(style Style, w, h int) int {
	t.nodes = append(t.nodes, testNode{style: style, w: w, h: h})
	return len(t.nodes) - 1
}

func (t *testTree) Len() int              { return len(t.nodes) }
func (t *testTree) Children(id int) []int { return t.nodes[id].children }
func (t *testTree) Style(id int) Style    { return t.nodes[id].style }

func (t *testTree) Measure(id int, maxWidth int) (int, int) {
	n := t.nodes[id]
	if n.w == 0 || maxWidth <= 0 {
		return 0, 0
	}
	if n.w <= maxWidth {
		return n.w, n.h
	}
	lines := (n.w + maxWidth - 1) / maxWidth
	return maxWidth, n.h * lines
}

// styled returns DefaultStyle modified by fn.
func styled(fn func(s *Style)) Style {
	s := DefaultStyle()
	fn(&s)
	return s
}

func fixed(w, h int) Style {
	return styled(func(s *Style) {
		s.Width = Fixed(w)
		s.Height = Fixed(h)
	})
}

func grow(n float64) Style {
	return styled(func(s *Style) { s.FlexGrow = n })
}
