package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Position selects between in-flow and absolute placement.
type Position uint8

const (
	PositionRelative Position = iota // Placed by the parent's flex flow
	PositionAbsolute                 // Placed against the parent's padding box
)

// Overflow controls whether children may paint outside the content box.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
)

// Display controls whether a node takes part in layout at all.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone         // No geometry for the node or its subtree
)

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Flex container properties
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Gap            int // Space between children (main axis only)

	// Flex item properties
	FlexGrow   float64 // How much to grow relative to siblings
	FlexShrink float64 // How much to shrink relative to siblings (default 1)
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)

	// Spacing
	Padding Edges
	Margin  Edges
	Border  bool // One-cell border inset on every side

	Position Position
	Offset   Offsets // Absolute placement; auto sides are unset
	Overflow Overflow
	Display  Display
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(), // No maximum
		MaxHeight:  Auto(), // No maximum
		Direction:  Row,
		AlignItems: AlignStretch,
		FlexShrink: 1.0,
	}
}

// BorderEdges returns the cells the border takes on each side.
func (s Style) BorderEdges() Edges {
	if s.Border {
		return EdgeAll(1)
	}
	return Edges{}
}

// Insets returns border plus padding.
func (s Style) Insets() Edges {
	return s.BorderEdges().Add(s.Padding)
}

func (s Style) inFlow() bool {
	return s.Display != DisplayNone && s.Position != PositionAbsolute
}
