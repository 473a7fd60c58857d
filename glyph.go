package tui

// Glyph is a single character cell in the terminal buffer.
// Wide clusters (CJK, emoji) occupy two cells; the first cell holds the
// cluster and the second is marked as a continuation.
type Glyph struct {
	Text  string // grapheme cluster ("" for continuation cells)
	Style Style
	Width uint8 // display width (1 or 2; 0 for continuation)
}

// blankCell is a default-styled space.
var blankCell = Glyph{Text: " ", Width: 1}

// IsContinuation returns true if this cell is a continuation of a wide character.
func (c Glyph) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Glyph) Equal(other Glyph) bool {
	return c == other
}

// IsBlank reports whether the cell is a space with default styling.
func (c Glyph) IsBlank() bool {
	return c.Text == " " && c.Style.IsDefault()
}
