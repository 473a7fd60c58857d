package tui

import (
	"fmt"
	"strings"
)

// Attr represents text attributes as a bitfield for efficient comparison and storage.
type Attr uint8

const (
	// AttrNone represents no text attributes.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << (iota - 1)
	// AttrDim makes text dimmed/faint.
	AttrDim
	// AttrItalic makes text italic.
	AttrItalic
	// AttrUnderline underlines the text.
	AttrUnderline
	// AttrBlink makes text blink (rarely supported).
	AttrBlink
	// AttrReverse swaps foreground and background colors.
	AttrReverse
	// AttrStrikethrough draws a line through the text.
	AttrStrikethrough
)

// attrNames is in SGR order.
var attrNames = []struct {
	attr Attr
	name string
	sgr  byte
}{
	{AttrBold, "bold", '1'},
	{AttrDim, "dim", '2'},
	{AttrItalic, "italic", '3'},
	{AttrUnderline, "underline", '4'},
	{AttrBlink, "blink", '5'},
	{AttrReverse, "reverse", '7'},
	{AttrStrikethrough, "strikethrough", '9'},
}

// Style combines text attributes with foreground and background colors.
// Zero value represents default styling (no attributes, default colors).
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns a new Style with default colors and no attributes.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a new Style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a new Style with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Bold returns a new Style with the bold attribute set.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns a new Style with the dim attribute set.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Italic returns a new Style with the italic attribute set.
func (s Style) Italic() Style {
	s.Attrs |= AttrItalic
	return s
}

// Underline returns a new Style with the underline attribute set.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Reverse returns a new Style with the reverse attribute set.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s == other
}

// IsDefault reports whether s is the terminal's default rendition.
func (s Style) IsDefault() bool {
	return s == Style{}
}

// HasAttr returns true if the style has the given attribute(s) set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}

// over returns s painted over a cell styled base: a default background in
// s lets the base background show through.
func (s Style) over(base Style) Style {
	if s.Bg.IsDefault() {
		s.Bg = base.Bg
	}
	return s
}

// inherit fills what s leaves unset from an enclosing box's style: the
// foreground color and attributes. Backgrounds come from the cells below.
func (s Style) inherit(parent Style) Style {
	if s.Fg.IsDefault() {
		s.Fg = parent.Fg
	}
	s.Attrs |= parent.Attrs
	return s
}

// ParseStyle parses a space-separated style description such as
// "bold underline fg=#5fafd7 bg=236". Attribute names are those of the
// Attr constants; colors take any form ParseColor accepts.
func ParseStyle(desc string) (Style, error) {
	var s Style
	for _, field := range strings.Fields(desc) {
		key, val, ok := strings.Cut(field, "=")
		if ok {
			c, err := ParseColor(val)
			if err != nil {
				return Style{}, fmt.Errorf("style %q: %w", desc, err)
			}
			switch key {
			case "fg":
				s.Fg = c
			case "bg":
				s.Bg = c
			default:
				return Style{}, fmt.Errorf("style %q: unknown key %q", desc, key)
			}
			continue
		}
		found := false
		for _, a := range attrNames {
			if a.name == key {
				s.Attrs |= a.attr
				found = true
				break
			}
		}
		if !found {
			return Style{}, fmt.Errorf("style %q: unknown attribute %q", desc, key)
		}
	}
	return s, nil
}
