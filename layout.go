// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tui

import "github.com/grindlemire/tuicore/internal/layout"

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Overflow controls whether children may paint outside a box.
type Overflow = layout.Overflow

const (
	OverflowVisible = layout.OverflowVisible
	OverflowHidden  = layout.OverflowHidden
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// LayoutStyle holds the layout properties for a node.
type LayoutStyle = layout.Style

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Offsets positions an absolutely placed node inside its parent.
type Offsets = layout.Offsets

// Size represents a width/height pair.
type Size = layout.Size

// Geometry is the computed layout of a Tree.
type Geometry = layout.Geometry

// GeometryBox is the computed geometry of one node.
type GeometryBox = layout.Box

// HeightCache remembers measured item heights across passes.
type HeightCache = layout.HeightCache

// Unbounded as an available height lays a root out at its content height.
const Unbounded = layout.Unbounded

// Fixed creates a Value with a fixed character count.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// DefaultLayoutStyle returns a Style with default values.
func DefaultLayoutStyle() LayoutStyle {
	return layout.DefaultStyle()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// NewHeightCache creates an empty height cache.
func NewHeightCache() *HeightCache {
	return layout.NewHeightCache()
}

// Compute lays out the subtree of t rooted at root within avail.
func Compute(t *Tree, root NodeID, avail Size) *Geometry {
	return layout.Compute(t, int(root), avail)
}
