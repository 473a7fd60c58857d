package tui

import "strconv"

// escBuilder builds control sequences and styled text into a reusable
// buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{
		buf: make([]byte, 0, capacity),
	}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

func (e *escBuilder) String() string {
	return string(e.buf)
}

// Len returns the current length of the buffer.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo moves the cursor to the specified position.
// x and y are 0-indexed; ANSI sequences use 1-indexed positions.
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// MoveUp moves the cursor up by n rows.
func (e *escBuilder) MoveUp(n int) {
	if n <= 0 {
		return
	}
	e.writeCSI()
	if n > 1 {
		e.writeInt(n)
	}
	e.buf = append(e.buf, 'A')
}

// CarriageReturn moves the cursor to column zero.
func (e *escBuilder) CarriageReturn() {
	e.buf = append(e.buf, '\r')
}

// Newline moves to the start of the next row, scrolling if needed. Raw
// mode turns off output post-processing, so the carriage return is
// explicit.
func (e *escBuilder) Newline() {
	e.buf = append(e.buf, '\r', '\n')
}

// ClearToEndOfScreen clears from cursor to end of screen (ESC[J).
func (e *escBuilder) ClearToEndOfScreen() {
	e.writeCSI()
	e.buf = append(e.buf, 'J')
}

// ClearToEndOfLine clears from the cursor to the end of the row.
func (e *escBuilder) ClearToEndOfLine() {
	e.writeCSI()
	e.buf = append(e.buf, 'K')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, "?25l"...)
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, "?25h"...)
}

// EnterAltScreen switches to the alternate screen buffer.
func (e *escBuilder) EnterAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, "?1049h"...)
}

// ExitAltScreen switches back to the main screen buffer.
func (e *escBuilder) ExitAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, "?1049l"...)
}

// BeginSyncUpdate starts a synchronized update block.
// The terminal buffers all output until EndSyncUpdate and then displays
// it at once. Terminals that don't support it ignore the sequence.
func (e *escBuilder) BeginSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, "?2026h"...)
}

// EndSyncUpdate ends a synchronized update block.
func (e *escBuilder) EndSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, "?2026l"...)
}

// ResetStyle resets all text attributes to default.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// Transition emits the SGR sequence that changes the current rendition
// from one style to another. Nothing is written when the two styles render
// the same on this terminal. Colors are downsampled to caps first.
func (e *escBuilder) Transition(from, to Style, caps Capabilities) {
	from, to = effectiveStyle(from, caps), effectiveStyle(to, caps)
	if from == to {
		return
	}
	if to.IsDefault() {
		e.ResetStyle()
		return
	}

	// Attributes cannot be turned off one by one portably, so any removed
	// attribute starts from a reset.
	e.writeCSI()
	start := len(e.buf)
	if from.Attrs&^to.Attrs != 0 {
		e.buf = append(e.buf, '0')
		from = Style{}
	}
	for _, a := range attrNames {
		if to.HasAttr(a.attr) && !from.HasAttr(a.attr) {
			e.sep(start)
			e.buf = append(e.buf, a.sgr)
		}
	}
	if to.Fg != from.Fg {
		e.sep(start)
		e.appendColor(to.Fg, true)
	}
	if to.Bg != from.Bg {
		e.sep(start)
		e.appendColor(to.Bg, false)
	}
	e.buf = append(e.buf, 'm')
}

// sep writes a parameter separator unless the sequence is still empty.
func (e *escBuilder) sep(start int) {
	if len(e.buf) > start {
		e.buf = append(e.buf, ';')
	}
}

// effectiveStyle maps the colors of s to what caps can display.
func effectiveStyle(s Style, caps Capabilities) Style {
	s.Fg = caps.EffectiveColor(s.Fg)
	s.Bg = caps.EffectiveColor(s.Bg)
	return s
}

// appendColor appends one color parameter. The color must already be
// downsampled.
func (e *escBuilder) appendColor(c Color, fg bool) {
	switch c.Type() {
	case ColorDefault:
		if fg {
			e.writeInt(39)
		} else {
			e.writeInt(49)
		}
	case ColorANSI:
		idx := int(c.ANSI())
		switch {
		case idx < 8 && fg:
			e.writeInt(30 + idx)
		case idx < 8:
			e.writeInt(40 + idx)
		case idx < 16 && fg:
			e.writeInt(90 + idx - 8)
		case idx < 16:
			e.writeInt(100 + idx - 8)
		default:
			e.writeInt(base(fg))
			e.buf = append(e.buf, ";5;"...)
			e.writeInt(idx)
		}
	case ColorRGB:
		r, g, b := c.RGB()
		e.writeInt(base(fg))
		e.buf = append(e.buf, ";2;"...)
		e.writeInt(int(r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(b))
	}
}

// base is the extended color SGR parameter: 38 for foreground, 48 for
// background.
func base(fg bool) int {
	if fg {
		return 38
	}
	return 48
}

// WriteString appends a string to the buffer.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}
