package tui

import "github.com/grindlemire/tuicore/internal/layout"

// NodeOption configures a node while its builder runs.
type NodeOption func(*node)

// Children sets the children of a box, static region or fragment.
func Children(ids ...NodeID) NodeOption {
	return func(n *node) {
		n.children = append(n.children, ids...)
	}
}

// --- Dimension Options ---

// WithWidth sets the width.
func WithWidth(v Value) NodeOption {
	return func(n *node) {
		n.layout.Width = v
	}
}

// WithHeight sets the height.
func WithHeight(v Value) NodeOption {
	return func(n *node) {
		n.layout.Height = v
	}
}

// WithSize sets both width and height in terminal cells.
func WithSize(width, height int) NodeOption {
	return func(n *node) {
		n.layout.Width = Fixed(width)
		n.layout.Height = Fixed(height)
	}
}

// WithMinWidth sets the minimum width in terminal cells.
func WithMinWidth(cells int) NodeOption {
	return func(n *node) {
		n.layout.MinWidth = Fixed(cells)
	}
}

// WithMinHeight sets the minimum height in terminal cells.
func WithMinHeight(cells int) NodeOption {
	return func(n *node) {
		n.layout.MinHeight = Fixed(cells)
	}
}

// WithMaxWidth sets the maximum width in terminal cells.
func WithMaxWidth(cells int) NodeOption {
	return func(n *node) {
		n.layout.MaxWidth = Fixed(cells)
	}
}

// WithMaxHeight sets the maximum height in terminal cells.
func WithMaxHeight(cells int) NodeOption {
	return func(n *node) {
		n.layout.MaxHeight = Fixed(cells)
	}
}

// --- Flex Container Options ---

// WithDirection sets the main axis direction for laying out children.
func WithDirection(d Direction) NodeOption {
	return func(n *node) {
		n.layout.Direction = d
	}
}

// WithJustify sets how children are distributed along the main axis.
func WithJustify(j Justify) NodeOption {
	return func(n *node) {
		n.layout.JustifyContent = j
	}
}

// WithAlign sets how children are aligned on the cross axis.
func WithAlign(a Align) NodeOption {
	return func(n *node) {
		n.layout.AlignItems = a
	}
}

// WithGap sets the space between children along the main axis.
func WithGap(cells int) NodeOption {
	return func(n *node) {
		n.layout.Gap = cells
	}
}

// --- Flex Item Options ---

// WithGrow sets the flex grow factor.
func WithGrow(factor float64) NodeOption {
	return func(n *node) {
		n.layout.FlexGrow = factor
	}
}

// WithShrink sets the flex shrink factor.
func WithShrink(factor float64) NodeOption {
	return func(n *node) {
		n.layout.FlexShrink = factor
	}
}

// WithAlignSelf overrides the parent's alignment for this node.
func WithAlignSelf(a Align) NodeOption {
	return func(n *node) {
		n.layout.AlignSelf = &a
	}
}

// --- Spacing Options ---

// WithPadding sets uniform padding on all sides.
func WithPadding(cells int) NodeOption {
	return func(n *node) {
		n.layout.Padding = EdgeAll(cells)
	}
}

// WithPaddingEdges sets padding per side.
func WithPaddingEdges(e Edges) NodeOption {
	return func(n *node) {
		n.layout.Padding = e
	}
}

// WithMargin sets uniform margin on all sides.
func WithMargin(cells int) NodeOption {
	return func(n *node) {
		n.layout.Margin = EdgeAll(cells)
	}
}

// WithMarginEdges sets margin per side.
func WithMarginEdges(e Edges) NodeOption {
	return func(n *node) {
		n.layout.Margin = e
	}
}

// --- Placement Options ---

// WithPosition takes the node out of the flow and places it against its
// parent's padding box. Auto offsets are unset; with both sides of an axis
// unset the node sits at the start of that axis.
func WithPosition(o Offsets) NodeOption {
	return func(n *node) {
		n.layout.Position = layout.PositionAbsolute
		n.layout.Offset = o
	}
}

// WithOverflow sets whether children may paint outside the content box.
func WithOverflow(o Overflow) NodeOption {
	return func(n *node) {
		n.layout.Overflow = o
	}
}

// WithHidden removes the node and its subtree from layout and painting.
func WithHidden(hidden bool) NodeOption {
	return func(n *node) {
		if hidden {
			n.layout.Display = layout.DisplayNone
		} else {
			n.layout.Display = layout.DisplayFlex
		}
	}
}

// --- Visual Options ---

// WithStyle sets the text style. On a box, a background color fills the
// whole border box.
func WithStyle(s Style) NodeOption {
	return func(n *node) {
		n.style = s
	}
}

// WithBackground sets the background color.
func WithBackground(c Color) NodeOption {
	return func(n *node) {
		n.style.Bg = c
	}
}

// WithBorder draws a border of the given style. The border takes one cell
// on each side.
func WithBorder(b BorderStyle) NodeOption {
	return func(n *node) {
		n.border = b
		n.layout.Border = b != BorderNone
	}
}

// WithBorderStyle sets the colors and attributes of the border.
func WithBorderStyle(s Style) NodeOption {
	return func(n *node) {
		n.borderStyle = s
	}
}

// WithTextAlign sets the horizontal alignment of text lines.
func WithTextAlign(a TextAlign) NodeOption {
	return func(n *node) {
		n.align = a
	}
}

// WithTruncate cuts text lines at the box width with an ellipsis instead of
// wrapping them.
func WithTruncate() NodeOption {
	return func(n *node) {
		n.mode = TextTruncate
	}
}
