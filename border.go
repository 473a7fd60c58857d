package tui

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters.
	BorderSingle
	// BorderDouble uses double-line box-drawing characters.
	BorderDouble
	// BorderRounded uses single lines with rounded corners.
	BorderRounded
	// BorderThick uses heavy box-drawing characters.
	BorderThick
)

var borderNames = map[string]BorderStyle{
	"none":    BorderNone,
	"single":  BorderSingle,
	"double":  BorderDouble,
	"rounded": BorderRounded,
	"thick":   BorderThick,
}

// ParseBorderStyle maps a border name to its style.
func ParseBorderStyle(name string) (BorderStyle, bool) {
	b, ok := borderNames[name]
	return b, ok
}

// BorderChars holds the glyphs used to draw a box border.
type BorderChars struct {
	TopLeft     string
	Top         string
	TopRight    string
	Left        string
	Right       string
	BottomLeft  string
	Bottom      string
	BottomRight string
}

var borderTables = map[BorderStyle]BorderChars{
	BorderSingle:  {"┌", "─", "┐", "│", "│", "└", "─", "┘"},
	BorderDouble:  {"╔", "═", "╗", "║", "║", "╚", "═", "╝"},
	BorderRounded: {"╭", "─", "╮", "│", "│", "╰", "─", "╯"},
	BorderThick:   {"┏", "━", "┓", "┃", "┃", "┗", "━", "┛"},
}

var asciiBorders = map[BorderStyle]BorderChars{
	BorderSingle:  {"+", "-", "+", "|", "|", "+", "-", "+"},
	BorderDouble:  {"#", "=", "#", "#", "#", "#", "=", "#"},
	BorderRounded: {".", "-", ".", "|", "|", "'", "-", "'"},
	BorderThick:   {"+", "=", "+", "|", "|", "+", "=", "+"},
}

// Chars returns the glyphs for this border style. Without unicode the
// ASCII table is used.
func (b BorderStyle) Chars(unicode bool) BorderChars {
	table := borderTables
	if !unicode {
		table = asciiBorders
	}
	if c, ok := table[b]; ok {
		return c
	}
	return BorderChars{" ", " ", " ", " ", " ", " ", " ", " "}
}

// drawBorder draws a one-cell border around rect. Glyph positions come from
// the full rect; only cells inside clip are painted.
func drawBorder(buf *Buffer, rect Rect, border BorderStyle, style Style, unicode bool, clip Rect) {
	if border == BorderNone || rect.Width < 1 || rect.Height < 1 {
		return
	}
	chars := border.Chars(unicode)
	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1

	put := func(x, y int, glyph string) {
		if clip.Contains(x, y) {
			buf.SetCluster(x, y, glyph, 1, style)
		}
	}

	for x := left + 1; x < right; x++ {
		put(x, top, chars.Top)
		put(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		put(left, y, chars.Left)
		put(right, y, chars.Right)
	}
	put(left, top, chars.TopLeft)
	put(right, top, chars.TopRight)
	put(left, bottom, chars.BottomLeft)
	put(right, bottom, chars.BottomRight)
}
