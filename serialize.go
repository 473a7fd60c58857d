package tui

import (
	"github.com/grindlemire/tuicore/internal/layout"
	"github.com/grindlemire/tuicore/internal/width"
)

// Serialize paints the laid-out subtree at root and returns one line per
// row of the root's border box. Lines carry SGR sequences for the
// capability tier in caps and never end inside a styled span. A root
// without geometry serializes to no lines.
func Serialize(t *Tree, root NodeID, geo *Geometry, caps Capabilities) []string {
	rootBox := geo.Box(int(root))
	if !rootBox.Valid {
		return nil
	}
	bounds := rootBox.Rect
	p := &painter{
		tree: t,
		geo:  geo,
		caps: caps,
		buf:  NewBuffer(bounds.Right(), bounds.Bottom()),
	}
	p.paint(int(root), Style{})

	lines := make([]string, 0, bounds.Height)
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		lines = append(lines, p.buf.Line(y, caps))
	}
	return lines
}

type painter struct {
	tree *Tree
	geo  *Geometry
	caps Capabilities
	buf  *Buffer
}

// paint draws id and then its subtree. In-flow children paint before
// absolutely positioned ones so overlays land on top.
func (p *painter) paint(id int, inherited Style) {
	box := p.geo.Box(id)
	if !box.Valid {
		return
	}
	n := &p.tree.nodes[id]
	clip := box.Visible(p.buf.Rect())
	style := n.style.inherit(inherited)

	switch n.kind {
	case KindText:
		p.text(n, box, style, clip)
		return
	case KindSpacer:
		return
	}

	if !n.style.Bg.IsDefault() {
		p.buf.Fill(box.Rect, Style{Bg: n.style.Bg}, clip)
	}
	drawBorder(p.buf, box.Rect, n.border, n.borderStyle.inherit(Style{Fg: style.Fg}), p.caps.Unicode, clip)

	children := p.tree.Children(id)
	for _, ch := range children {
		if p.tree.nodes[ch].layout.Position != layout.PositionAbsolute {
			p.paint(ch, style)
		}
	}
	for _, ch := range children {
		if p.tree.nodes[ch].layout.Position == layout.PositionAbsolute {
			p.paint(ch, style)
		}
	}
}

// text paints the lines of a text leaf inside its content box. Lines that
// do not fit the box height are dropped.
func (p *painter) text(n *node, box GeometryBox, style Style, clip Rect) {
	content := box.Content
	clip = clip.Intersect(content)
	if clip.IsEmpty() {
		return
	}
	for i, line := range p.tree.lines(n, content.Width) {
		y := content.Y + i
		if y >= content.Bottom() {
			break
		}
		x := content.X
		switch n.align {
		case TextAlignCenter:
			x += max(0, (content.Width-width.String(line))/2)
		case TextAlignRight:
			x += max(0, content.Width-width.String(line))
		}
		p.buf.SetString(x, y, line, style, clip)
	}
}
