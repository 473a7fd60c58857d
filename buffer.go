package tui

import (
	"strings"

	"github.com/grindlemire/tuicore/internal/width"
)

// Buffer is a 2D grid of cells that one serialization pass paints into.
type Buffer struct {
	cells  []Glyph
	width  int
	height int
}

// NewBuffer creates a grid of the given size filled with blank cells.
func NewBuffer(w, h int) *Buffer {
	w, h = max(0, w), max(0, h)
	cells := make([]Glyph, w*h)
	for i := range cells {
		cells[i] = blankCell
	}
	return &Buffer{cells: cells, width: w, height: h}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// At returns the cell at (x, y), or an empty Glyph out of bounds.
func (b *Buffer) At(x, y int) Glyph {
	i := b.idx(x, y)
	if i < 0 {
		return Glyph{}
	}
	return b.cells[i]
}

func (b *Buffer) set(x, y int, c Glyph) {
	if i := b.idx(x, y); i >= 0 {
		b.cells[i] = c
	}
}

// SetCluster writes one grapheme cluster of display width w at (x, y).
// A default background keeps the background already in the cell. Wide
// clusters that overlap a half of another wide cluster clear it, and a wide
// cluster that does not fit before the right edge becomes a space.
func (b *Buffer) SetCluster(x, y int, cluster string, w int, style Style) {
	if b.idx(x, y) < 0 || w <= 0 {
		return
	}
	style = style.over(b.At(x, y).Style)

	b.clearWide(x, y)
	if w == 2 {
		if x+1 >= b.width {
			b.set(x, y, Glyph{Text: " ", Style: style, Width: 1})
			return
		}
		b.clearWide(x+1, y)
		b.set(x, y, Glyph{Text: cluster, Style: style, Width: 2})
		b.set(x+1, y, Glyph{Style: style})
		return
	}
	b.set(x, y, Glyph{Text: cluster, Style: style, Width: 1})
}

// clearWide blanks a wide cluster that covers (x, y).
func (b *Buffer) clearWide(x, y int) {
	c := b.At(x, y)
	switch {
	case c.IsContinuation() && c.Text == "" && b.idx(x, y) >= 0:
		if x > 0 {
			prev := b.At(x-1, y)
			b.set(x-1, y, Glyph{Text: " ", Style: prev.Style, Width: 1})
		}
		b.set(x, y, Glyph{Text: " ", Style: c.Style, Width: 1})
	case c.Width == 2:
		b.set(x+1, y, Glyph{Text: " ", Style: c.Style, Width: 1})
	}
}

// SetString writes s starting at (x, y) and returns the columns used.
// Clusters that would cross clip are dropped, as are clusters left of it.
func (b *Buffer) SetString(x, y int, s string, style Style, clip Rect) int {
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}
	col := x
	for cluster, w := range width.Clusters(s) {
		if w == 0 {
			continue
		}
		if col >= clip.Right() {
			break
		}
		if col >= clip.X && col+w <= clip.Right() {
			b.SetCluster(col, y, cluster, w, style)
		}
		col += w
	}
	return col - x
}

// Fill paints rect with spaces in style, clipped to clip.
func (b *Buffer) Fill(rect Rect, style Style, clip Rect) {
	rect = rect.Intersect(clip).Intersect(b.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.clearWide(x, y)
			b.set(x, y, Glyph{Text: " ", Style: style, Width: 1})
		}
	}
}

// Line serializes row y. Styles change only where the rendition changes
// and a row that ends styled ends with a reset. Trailing blank cells are
// dropped.
func (b *Buffer) Line(y int, caps Capabilities) string {
	if y < 0 || y >= b.height {
		return ""
	}
	row := b.cells[y*b.width : (y+1)*b.width]
	end := len(row)
	for end > 0 && row[end-1].IsBlank() {
		end--
	}

	e := newEscBuilder(end * 2)
	cur := Style{}
	for _, c := range row[:end] {
		if c.IsContinuation() {
			continue
		}
		e.Transition(cur, c.Style, caps)
		cur = c.Style
		e.WriteString(c.Text)
	}
	if !effectiveStyle(cur, caps).IsDefault() {
		e.ResetStyle()
	}
	return e.String()
}

// String returns the buffer content as plain text, one line per row, for
// tests and debugging.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			sb.WriteString(b.At(x, y).Text)
		}
	}
	return sb.String()
}
