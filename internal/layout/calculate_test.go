package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widths(geo *Geometry, ids ...int) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = geo.Box(id).Rect.Width
	}
	return out
}

func xs(geo *Geometry, ids ...int) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = geo.Box(id).Rect.X
	}
	return out
}

func TestCompute_EqualGrowRemainderGoesFirst(t *testing.T) {
	tree := newTestTree()
	a := tree.add(grow(1))
	b := tree.add(grow(1))
	c := tree.add(grow(1))
	root := tree.add(fixed(100, 10), a, b, c)

	geo := Compute(tree, root, Size{Width: 100, Height: 10})

	assert.Equal(t, []int{34, 33, 33}, widths(geo, a, b, c))
	assert.Equal(t, []int{0, 34, 67}, xs(geo, a, b, c))
	assert.Equal(t, 10, geo.Box(b).Rect.Height, "auto cross size stretches")
}

func TestCompute_PaddingShrinksContent(t *testing.T) {
	tree := newTestTree()
	root := tree.add(styled(func(s *Style) {
		s.Width = Fixed(10)
		s.Height = Fixed(10)
		s.Padding = EdgeAll(2)
	}))

	geo := Compute(tree, root, Size{Width: 80, Height: 24})
	box := geo.Box(root)

	assert.Equal(t, Rect{X: 0, Y: 0, Width: 10, Height: 10}, box.Rect)
	assert.Equal(t, Rect{X: 2, Y: 2, Width: 6, Height: 6}, box.Content)
}

func TestCompute_Border(t *testing.T) {
	tree := newTestTree()
	root := tree.add(styled(func(s *Style) {
		s.Width = Fixed(10)
		s.Height = Fixed(5)
		s.Border = true
		s.Padding = EdgeSymmetric(0, 1)
	}))

	box := Compute(tree, root, Size{Width: 80, Height: 24}).Box(root)

	assert.Equal(t, EdgeAll(1), box.Border)
	assert.Equal(t, Rect{X: 1, Y: 1, Width: 8, Height: 3}, box.Inner())
	assert.Equal(t, Rect{X: 2, Y: 1, Width: 6, Height: 3}, box.Content)
}

func TestCompute_Justify(t *testing.T) {
	type tc struct {
		justify Justify
		want    []int
	}

	tests := map[string]tc{
		"start":         {justify: JustifyStart, want: []int{0, 10, 20}},
		"end":           {justify: JustifyEnd, want: []int{70, 80, 90}},
		"center":        {justify: JustifyCenter, want: []int{35, 45, 55}},
		"space between": {justify: JustifySpaceBetween, want: []int{0, 45, 90}},
		"space around":  {justify: JustifySpaceAround, want: []int{11, 44, 77}},
		"space evenly":  {justify: JustifySpaceEvenly, want: []int{17, 44, 71}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree()
			a := tree.add(fixed(10, 2))
			b := tree.add(fixed(10, 2))
			c := tree.add(fixed(10, 2))
			root := tree.add(styled(func(s *Style) {
				s.Width = Fixed(100)
				s.Height = Fixed(10)
				s.JustifyContent = tt.justify
			}), a, b, c)

			geo := Compute(tree, root, Size{Width: 100, Height: 10})
			assert.Equal(t, tt.want, xs(geo, a, b, c))
		})
	}
}

func TestCompute_Align(t *testing.T) {
	type tc struct {
		align      Align
		child      Style
		wantY      int
		wantHeight int
	}

	tests := map[string]tc{
		"start":            {align: AlignStart, child: fixed(5, 4), wantY: 0, wantHeight: 4},
		"end":              {align: AlignEnd, child: fixed(5, 4), wantY: 6, wantHeight: 4},
		"center":           {align: AlignCenter, child: fixed(5, 4), wantY: 3, wantHeight: 4},
		"stretch explicit": {align: AlignStretch, child: fixed(5, 4), wantY: 0, wantHeight: 4},
		"stretch auto": {
			align:      AlignStretch,
			child:      styled(func(s *Style) { s.Width = Fixed(5) }),
			wantY:      0,
			wantHeight: 10,
		},
		"align self overrides": {
			align: AlignStart,
			child: styled(func(s *Style) {
				s.Width = Fixed(5)
				s.Height = Fixed(4)
				end := AlignEnd
				s.AlignSelf = &end
			}),
			wantY:      6,
			wantHeight: 4,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree()
			child := tree.add(tt.child)
			root := tree.add(styled(func(s *Style) {
				s.Width = Fixed(20)
				s.Height = Fixed(10)
				s.AlignItems = tt.align
			}), child)

			box := Compute(tree, root, Size{Width: 20, Height: 10}).Box(child)
			assert.Equal(t, tt.wantY, box.Rect.Y)
			assert.Equal(t, tt.wantHeight, box.Rect.Height)
		})
	}
}

func TestCompute_FlexDistribution(t *testing.T) {
	type tc struct {
		children []Style
		natural  []int // leaf widths; 0 adds an empty node
		want     []int
	}

	tests := map[string]tc{
		"unequal weights remainder first": {
			children: []Style{grow(1), grow(2)},
			want:     []int{4, 6},
		},
		"grow after fixed": {
			children: []Style{fixed(3, 1), grow(1)},
			want:     []int{3, 7},
		},
		"max freezes and redistributes": {
			children: []Style{
				styled(func(s *Style) {
					s.FlexGrow = 1
					s.MaxWidth = Fixed(2)
				}),
				grow(1),
				grow(1),
			},
			want: []int{2, 4, 4},
		},
		"shrink evenly": {
			children: []Style{DefaultStyle(), DefaultStyle()},
			natural:  []int{8, 6},
			want:     []int{6, 4},
		},
		"shrink respects min": {
			children: []Style{
				DefaultStyle(),
				styled(func(s *Style) { s.MinWidth = Fixed(6) }),
			},
			natural: []int{8, 6},
			want:    []int{4, 6},
		},
		"zero shrink keeps content size": {
			children: []Style{
				styled(func(s *Style) { s.FlexShrink = 0 }),
				DefaultStyle(),
			},
			natural: []int{8, 6},
			want:    []int{8, 2},
		},
		"explicit widths are not shrunk": {
			children: []Style{fixed(8, 1), fixed(6, 1)},
			want:     []int{8, 6},
		},
		"content item absorbs the deficit": {
			children: []Style{fixed(8, 1), DefaultStyle()},
			natural:  []int{0, 6},
			want:     []int{8, 2},
		},
		"explicit width overflows": {
			children: []Style{styled(func(s *Style) { s.Width = Fixed(12) })},
			want:     []int{12},
		},
		"percent of parent": {
			children: []Style{styled(func(s *Style) { s.Width = Percent(50) }), grow(1)},
			want:     []int{5, 5},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree()
			ids := make([]int, len(tt.children))
			for i, s := range tt.children {
				if i < len(tt.natural) && tt.natural[i] > 0 {
					ids[i] = tree.leaf(s, tt.natural[i], 1)
					continue
				}
				ids[i] = tree.add(s)
			}
			root := tree.add(fixed(10, 1), ids...)

			geo := Compute(tree, root, Size{Width: 10, Height: 1})
			assert.Equal(t, tt.want, widths(geo, ids...))
		})
	}
}

func TestCompute_GapAndMargin(t *testing.T) {
	tree := newTestTree()
	a := tree.add(fixed(10, 1))
	b := tree.add(styled(func(s *Style) {
		s.Width = Fixed(10)
		s.Height = Fixed(1)
		s.Margin = EdgeAll(1)
	}))
	c := tree.add(fixed(10, 1))
	root := tree.add(styled(func(s *Style) {
		s.Width = Fixed(100)
		s.Height = Fixed(5)
		s.Gap = 2
		s.AlignItems = AlignStart
	}), a, b, c)

	geo := Compute(tree, root, Size{Width: 100, Height: 5})

	assert.Equal(t, []int{0, 13, 26}, xs(geo, a, b, c))
	assert.Equal(t, 1, geo.Box(b).Rect.Y)
	assert.Equal(t, EdgeAll(1), geo.Box(b).Margin)
}

func TestCompute_ColumnContentSized(t *testing.T) {
	tree := newTestTree()
	text := tree.leaf(DefaultStyle(), 5, 2)
	fill := tree.add(grow(1))
	root := tree.add(styled(func(s *Style) {
		s.Direction = Column
		s.Width = Fixed(20)
		s.Height = Fixed(10)
	}), text, fill)

	geo := Compute(tree, root, Size{Width: 20, Height: 10})

	assert.Equal(t, Rect{X: 0, Y: 0, Width: 20, Height: 2}, geo.Box(text).Rect)
	assert.Equal(t, Rect{X: 0, Y: 2, Width: 20, Height: 8}, geo.Box(fill).Rect)
}

func TestCompute_IntrinsicContainer(t *testing.T) {
	tree := newTestTree()
	a := tree.leaf(DefaultStyle(), 3, 1)
	b := tree.leaf(DefaultStyle(), 4, 1)
	row := tree.add(styled(func(s *Style) { s.Gap = 1 }), a, b)
	root := tree.add(styled(func(s *Style) {
		s.Direction = Column
		s.AlignItems = AlignStart
	}), row)

	geo := Compute(tree, root, Size{Width: 40, Height: 10})

	assert.Equal(t, Rect{X: 0, Y: 0, Width: 8, Height: 1}, geo.Box(row).Rect)
	assert.Equal(t, []int{0, 4}, xs(geo, a, b))
}

func TestCompute_EmptyAutoContainer(t *testing.T) {
	tree := newTestTree()
	empty := tree.add(DefaultStyle())
	root := tree.add(styled(func(s *Style) { s.AlignItems = AlignStart }), empty)

	box := Compute(tree, root, Size{Width: 20, Height: 10}).Box(empty)

	assert.True(t, box.Valid)
	assert.Equal(t, 0, box.Rect.Width)
	assert.Equal(t, 0, box.Rect.Height)
}

func TestCompute_UnboundedHeight(t *testing.T) {
	tree := newTestTree()
	a := tree.leaf(DefaultStyle(), 5, 2)
	b := tree.leaf(DefaultStyle(), 50, 1)
	root := tree.add(styled(func(s *Style) { s.Direction = Column }), a, b)

	geo := Compute(tree, root, Size{Width: 30, Height: Unbounded})

	assert.Equal(t, Rect{X: 0, Y: 0, Width: 30, Height: 4}, geo.Bounds())
	assert.Equal(t, 2, geo.Box(b).Rect.Y)
	assert.Equal(t, 2, geo.Box(b).Rect.Height, "wide leaf wraps onto two lines")
}

func TestCompute_DisplayNone(t *testing.T) {
	tree := newTestTree()
	a := tree.add(fixed(10, 1))
	inner := tree.add(fixed(2, 1))
	hidden := tree.add(styled(func(s *Style) {
		s.Width = Fixed(10)
		s.Display = DisplayNone
	}), inner)
	c := tree.add(fixed(10, 1))
	root := tree.add(fixed(30, 5), a, hidden, c)

	geo := Compute(tree, root, Size{Width: 30, Height: 5})

	assert.False(t, geo.Box(hidden).Valid)
	assert.False(t, geo.Box(inner).Valid)
	assert.Equal(t, []int{0, 10}, xs(geo, a, c))
}

func TestCompute_Absolute(t *testing.T) {
	tree := newTestTree()
	flow := tree.leaf(DefaultStyle(), 3, 1)
	topLeft := tree.add(styled(func(s *Style) {
		s.Position = PositionAbsolute
		s.Offset = Offsets{Left: Fixed(2), Top: Fixed(1)}
		s.Width = Fixed(5)
		s.Height = Fixed(3)
	}))
	bottomRight := tree.add(styled(func(s *Style) {
		s.Position = PositionAbsolute
		s.Offset = Offsets{Right: Fixed(0), Bottom: Fixed(0)}
		s.Width = Fixed(4)
		s.Height = Fixed(2)
	}))
	banner := tree.leaf(styled(func(s *Style) {
		s.Position = PositionAbsolute
		s.Offset = Offsets{Left: Fixed(0), Right: Fixed(0), Top: Fixed(0)}
	}), 5, 1)
	root := tree.add(styled(func(s *Style) {
		s.Width = Fixed(20)
		s.Height = Fixed(10)
		s.Border = true
		s.AlignItems = AlignStart
	}), flow, topLeft, bottomRight, banner)

	geo := Compute(tree, root, Size{Width: 20, Height: 10})

	assert.Equal(t, Rect{X: 1, Y: 1, Width: 3, Height: 1}, geo.Box(flow).Rect, "absolute siblings leave the flow alone")
	assert.Equal(t, Rect{X: 3, Y: 2, Width: 5, Height: 3}, geo.Box(topLeft).Rect)
	assert.Equal(t, Rect{X: 15, Y: 7, Width: 4, Height: 2}, geo.Box(bottomRight).Rect)
	assert.Equal(t, Rect{X: 1, Y: 1, Width: 18, Height: 1}, geo.Box(banner).Rect)
}

func TestCompute_OverflowHidden(t *testing.T) {
	type tc struct {
		overflow    Overflow
		wantWidth   int
		wantClipped bool
	}

	tests := map[string]tc{
		"visible overflows": {overflow: OverflowVisible, wantWidth: 20, wantClipped: false},
		"hidden clamps":     {overflow: OverflowHidden, wantWidth: 10, wantClipped: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree()
			grandchild := tree.add(fixed(4, 1))
			child := tree.add(styled(func(s *Style) {
				s.Width = Fixed(20)
				s.Height = Fixed(3)
			}), grandchild)
			root := tree.add(styled(func(s *Style) {
				s.Width = Fixed(10)
				s.Height = Fixed(5)
				s.Overflow = tt.overflow
			}), child)

			geo := Compute(tree, root, Size{Width: 10, Height: 5})

			assert.Equal(t, tt.wantWidth, geo.Box(child).Rect.Width)
			assert.Equal(t, tt.wantClipped, geo.Box(child).Clipped)
			assert.Equal(t, tt.wantClipped, geo.Box(grandchild).Clipped, "clip reaches every descendant")
			if tt.wantClipped {
				assert.Equal(t, Rect{Width: 10, Height: 5}, geo.Box(grandchild).Clip)
			}
		})
	}
}

func TestCompute_NegativeSpaceClampsToZero(t *testing.T) {
	tree := newTestTree()
	squeezed := tree.add(styled(func(s *Style) {
		s.Width = Fixed(3)
		s.Margin = Edges{Left: 10}
	}))
	filler := tree.add(grow(1))
	root := tree.add(styled(func(s *Style) {
		s.Width = Fixed(3)
		s.Height = Fixed(2)
		s.Padding = EdgeAll(2)
	}), squeezed, filler)

	geo := Compute(tree, root, Size{Width: 3, Height: 2})

	content := geo.Box(root).Content
	assert.Equal(t, 0, content.Width)
	assert.Equal(t, 0, content.Height)
	for _, id := range []int{squeezed, filler} {
		r := geo.Box(id).Rect
		assert.GreaterOrEqual(t, r.Width, 0)
		assert.GreaterOrEqual(t, r.Height, 0)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	build := func() (*testTree, int) {
		tree := newTestTree()
		title := tree.leaf(DefaultStyle(), 12, 1)
		body := tree.leaf(grow(1), 60, 1)
		side := tree.add(styled(func(s *Style) {
			s.Width = Percent(30)
			s.Border = true
		}), tree.leaf(DefaultStyle(), 7, 1))
		main := tree.add(styled(func(s *Style) {
			s.Direction = Column
			s.FlexGrow = 1
			s.Gap = 1
		}), title, body)
		root := tree.add(styled(func(s *Style) { s.Padding = EdgeAll(1) }), side, main)
		return tree, root
	}

	for _, size := range []Size{{80, 24}, {33, 7}, {1, 1}, {0, 0}} {
		t1, r1 := build()
		t2, r2 := build()
		first := Compute(t1, r1, size)
		second := Compute(t2, r2, size)
		require.Equal(t, first, second, "size %v", size)
		assert.Equal(t, first, Compute(t1, r1, size), "recomputing the same tree must not change it")
	}
}

func TestCompute_InvalidRoot(t *testing.T) {
	tree := newTestTree()
	tree.add(DefaultStyle())

	geo := Compute(tree, 5, Size{Width: 10, Height: 10})
	assert.False(t, geo.Box(5).Valid)
	assert.False(t, geo.Box(0).Valid)
}

func TestDistribute(t *testing.T) {
	type tc struct {
		total   int
		weights []float64
		want    []int
	}

	tests := map[string]tc{
		"equal thirds":   {total: 100, weights: []float64{1, 1, 1}, want: []int{34, 33, 33}},
		"two remainders": {total: 11, weights: []float64{1, 1, 1}, want: []int{4, 4, 3}},
		"weighted":       {total: 10, weights: []float64{1, 2}, want: []int{4, 6}},
		"exact":          {total: 9, weights: []float64{1, 2}, want: []int{3, 6}},
		"zero total":     {total: 0, weights: []float64{1, 1}, want: []int{0, 0}},
		"zero weights":   {total: 5, weights: []float64{0, 0}, want: []int{0, 0}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, distribute(tt.total, tt.weights))
		})
	}
}
