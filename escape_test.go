package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	trueColor = Capabilities{Width: 80, Height: 24, Unicode: true, Colors: ColorTrue}
	color256  = Capabilities{Width: 80, Height: 24, Unicode: true, Colors: Color256}
	noColor   = Capabilities{Width: 80, Height: 24, Unicode: true, Colors: ColorNone}
)

func TestEscBuilder_Transition(t *testing.T) {
	type tc struct {
		from, to Style
		caps     Capabilities
		want     string
	}

	tests := map[string]tc{
		"same style writes nothing": {
			from: Style{Fg: Red},
			to:   Style{Fg: Red},
			caps: trueColor,
			want: "",
		},
		"add bold": {
			to:   Style{Attrs: AttrBold},
			caps: trueColor,
			want: "\x1b[1m",
		},
		"basic foreground": {
			to:   Style{Fg: Red},
			caps: trueColor,
			want: "\x1b[31m",
		},
		"bright foreground and background": {
			to:   Style{Fg: BrightRed, Bg: BrightBlue},
			caps: trueColor,
			want: "\x1b[91;104m",
		},
		"palette color": {
			to:   Style{Fg: ANSIColor(208)},
			caps: color256,
			want: "\x1b[38;5;208m",
		},
		"rgb background": {
			to:   Style{Bg: RGBColor(1, 2, 3)},
			caps: trueColor,
			want: "\x1b[48;2;1;2;3m",
		},
		"rgb downsampled": {
			to:   Style{Fg: RGBColor(95, 135, 175)},
			caps: color256,
			want: "\x1b[38;5;67m",
		},
		"back to default is a reset": {
			from: Style{Fg: Red, Attrs: AttrBold},
			to:   Style{},
			caps: trueColor,
			want: "\x1b[0m",
		},
		"removed attribute resets first": {
			from: Style{Fg: Red, Attrs: AttrBold | AttrItalic},
			to:   Style{Fg: Red, Attrs: AttrItalic},
			caps: trueColor,
			want: "\x1b[0;3;31m",
		},
		"only the change is written": {
			from: Style{Fg: Red, Attrs: AttrBold},
			to:   Style{Fg: Green, Attrs: AttrBold},
			caps: trueColor,
			want: "\x1b[32m",
		},
		"foreground back to default": {
			from: Style{Fg: Red, Attrs: AttrBold},
			to:   Style{Attrs: AttrBold},
			caps: trueColor,
			want: "\x1b[39m",
		},
		"colors invisible without color": {
			from: Style{},
			to:   Style{Fg: Red, Bg: Blue},
			caps: noColor,
			want: "",
		},
		"attributes survive without color": {
			to:   Style{Fg: Red, Attrs: AttrUnderline},
			caps: noColor,
			want: "\x1b[4m",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newEscBuilder(32)
			e.Transition(tt.from, tt.to, tt.caps)
			assert.Equal(t, tt.want, e.String())
		})
	}
}

func TestEscBuilder_Cursor(t *testing.T) {
	type tc struct {
		write func(e *escBuilder)
		want  string
	}

	tests := map[string]tc{
		"move to origin":  {write: func(e *escBuilder) { e.MoveTo(0, 0) }, want: "\x1b[1;1H"},
		"move to":         {write: func(e *escBuilder) { e.MoveTo(4, 9) }, want: "\x1b[10;5H"},
		"move up one":     {write: func(e *escBuilder) { e.MoveUp(1) }, want: "\x1b[A"},
		"move up many":    {write: func(e *escBuilder) { e.MoveUp(3) }, want: "\x1b[3A"},
		"move up zero":    {write: func(e *escBuilder) { e.MoveUp(0) }, want: ""},
		"newline":         {write: func(e *escBuilder) { e.Newline() }, want: "\r\n"},
		"clear screen":    {write: func(e *escBuilder) { e.ClearToEndOfScreen() }, want: "\x1b[J"},
		"clear line":      {write: func(e *escBuilder) { e.ClearToEndOfLine() }, want: "\x1b[K"},
		"hide cursor":     {write: func(e *escBuilder) { e.HideCursor() }, want: "\x1b[?25l"},
		"show cursor":     {write: func(e *escBuilder) { e.ShowCursor() }, want: "\x1b[?25h"},
		"alt screen":      {write: func(e *escBuilder) { e.EnterAltScreen() }, want: "\x1b[?1049h"},
		"main screen":     {write: func(e *escBuilder) { e.ExitAltScreen() }, want: "\x1b[?1049l"},
		"sync begin":      {write: func(e *escBuilder) { e.BeginSyncUpdate() }, want: "\x1b[?2026h"},
		"sync end":        {write: func(e *escBuilder) { e.EndSyncUpdate() }, want: "\x1b[?2026l"},
		"carriage return": {write: func(e *escBuilder) { e.CarriageReturn() }, want: "\r"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newEscBuilder(16)
			tt.write(e)
			assert.Equal(t, tt.want, e.String())
		})
	}
}

func TestEscBuilder_Reset(t *testing.T) {
	e := newEscBuilder(16)
	e.WriteString("abc")
	assert.Equal(t, 3, e.Len())
	e.Reset()
	assert.Equal(t, 0, e.Len())
	assert.Equal(t, "", e.String())
}
