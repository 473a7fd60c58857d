package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/grindlemire/tuicore/internal/width"
)

// Mode selects how frames are placed on the terminal.
type Mode uint8

const (
	// ModeInline redraws the viewport below the cursor and lets scrollback
	// lines scroll into the terminal's history.
	ModeInline Mode = iota
	// ModeFullscreen draws on the alternate screen. There is no history, so
	// scrollback lines are not shown.
	ModeFullscreen
)

func (m Mode) String() string {
	if m == ModeFullscreen {
		return "fullscreen"
	}
	return "inline"
}

// Output is what one render pass produced: lines to append to the
// scrollback and the rows of the live viewport. The two are kept apart
// until Compose.
type Output struct {
	Scrollback []string
	Viewport   []string
}

// ComposeState is what the terminal shows after a composed frame.
type ComposeState struct {
	// Rows is the height of the viewport last drawn. In inline mode the
	// cursor rests on its last row.
	Rows int
}

// Compose produces the bytes that replace the previous frame with this
// output, wrapped in a synchronized update.
func (o Output) Compose(prev ComposeState, mode Mode) (string, ComposeState) {
	e := newEscBuilder(256)
	e.BeginSyncUpdate()

	switch mode {
	case ModeFullscreen:
		e.MoveTo(0, 0)
		e.ClearToEndOfScreen()
	default:
		e.CarriageReturn()
		e.MoveUp(prev.Rows - 1)
		e.ClearToEndOfScreen()
		for _, line := range o.Scrollback {
			e.WriteString(line)
			e.Newline()
		}
	}

	for i, row := range o.Viewport {
		if i > 0 {
			e.Newline()
		}
		e.WriteString(row)
	}
	e.EndSyncUpdate()
	return e.String(), ComposeState{Rows: len(o.Viewport)}
}

// startSequence prepares the terminal for the first frame.
func startSequence(mode Mode) string {
	e := newEscBuilder(16)
	if mode == ModeFullscreen {
		e.EnterAltScreen()
	}
	e.HideCursor()
	return e.String()
}

// endSequence leaves the terminal usable after the last frame: below the
// viewport in inline mode, back on the main screen otherwise.
func endSequence(mode Mode, state ComposeState) string {
	e := newEscBuilder(16)
	if mode == ModeFullscreen {
		e.ExitAltScreen()
	} else if state.Rows > 0 {
		e.Newline()
	}
	e.ShowCursor()
	return e.String()
}

// scrollbackLines turns arbitrary text into plain lines for the scrollback.
// Escape sequences and control characters are removed so printed text can
// never move the cursor, and lines are wrapped to the terminal width.
func scrollbackLines(text string, caps Capabilities) []string {
	text = ansi.Strip(text)
	text = strings.TrimSuffix(text, "\n")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n':
			b.WriteRune(r)
		case r == '\t':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
		default:
			b.WriteRune(r)
		}
	}
	text = b.String()
	if !caps.Unicode {
		text = width.ASCII(text)
	}
	return width.Wrap(text, max(1, caps.Width))
}
