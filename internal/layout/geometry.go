package layout

// Unbounded as an available height lets the root grow to its content
// height. Static regions are laid out this way.
const Unbounded = -1

// Size is a width/height pair in cells.
type Size struct {
	Width, Height int
}

// Tree is the read-only view of a node arena that the engine lays out.
// Node ids are indices in [0, Len()).
type Tree interface {
	Len() int
	Children(id int) []int
	Style(id int) Style
	// Measure returns the natural content size of a leaf when it may use
	// at most maxWidth columns. Containers are never measured.
	Measure(id int, maxWidth int) (w, h int)
}

// Box is the computed geometry of one node, in absolute cells.
type Box struct {
	// Rect is the border box: the space allocated by the parent after
	// applying this node's margin.
	Rect Rect
	// Content is Rect minus border and padding: where children go.
	Content Rect

	Padding Edges
	Border  Edges
	Margin  Edges

	// Clip is the region the node may paint in when Clipped is set. It is
	// the intersection of the content boxes of every ancestor with
	// Overflow hidden.
	Clip    Rect
	Clipped bool

	// Valid is false for nodes that got no geometry (Display none, or
	// outside the laid-out subtree).
	Valid bool
}

// Inner returns the padding box: Rect minus the border.
func (b Box) Inner() Rect {
	return b.Rect.Inset(b.Border)
}

// Visible returns the part of r the node may paint in.
func (b Box) Visible(r Rect) Rect {
	if !b.Clipped {
		return r
	}
	return r.Intersect(b.Clip)
}

// Geometry holds one Box per node id.
type Geometry struct {
	Root  int
	Boxes []Box
}

// Box returns the geometry of id. Unknown ids return an invalid Box.
func (g *Geometry) Box(id int) Box {
	if g == nil || id < 0 || id >= len(g.Boxes) {
		return Box{}
	}
	return g.Boxes[id]
}

// Bounds returns the root's border box.
func (g *Geometry) Bounds() Rect {
	return g.Box(g.Root).Rect
}
