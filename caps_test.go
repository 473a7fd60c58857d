package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestCapsFromEnv(t *testing.T) {
	type tc struct {
		env     map[string]string
		colors  ColorCapability
		unicode bool
	}

	tests := map[string]tc{
		"empty environment": {
			env:     nil,
			colors:  Color16,
			unicode: true,
		},
		"xterm-256color": {
			env:     map[string]string{"TERM": "xterm-256color", "LANG": "en_US.UTF-8"},
			colors:  Color256,
			unicode: true,
		},
		"COLORTERM truecolor": {
			env:     map[string]string{"TERM": "xterm", "COLORTERM": "truecolor"},
			colors:  ColorTrue,
			unicode: true,
		},
		"COLORTERM 24bit": {
			env:     map[string]string{"COLORTERM": "24bit"},
			colors:  ColorTrue,
			unicode: true,
		},
		"kitty": {
			env:     map[string]string{"TERM": "xterm-kitty", "KITTY_WINDOW_ID": "1"},
			colors:  ColorTrue,
			unicode: true,
		},
		"windows terminal": {
			env:     map[string]string{"WT_SESSION": "abc"},
			colors:  ColorTrue,
			unicode: true,
		},
		"dumb terminal": {
			env:     map[string]string{"TERM": "dumb", "LANG": "en_US.UTF-8"},
			colors:  ColorNone,
			unicode: false,
		},
		"linux console": {
			env:     map[string]string{"TERM": "linux"},
			colors:  Color16,
			unicode: false,
		},
		"C locale": {
			env:     map[string]string{"TERM": "xterm", "LANG": "C"},
			colors:  Color16,
			unicode: false,
		},
		"LC_ALL wins over LANG": {
			env:     map[string]string{"LC_ALL": "POSIX", "LANG": "en_US.UTF-8"},
			colors:  Color16,
			unicode: false,
		},
		"utf8 spelled without dash": {
			env:     map[string]string{"LC_CTYPE": "de_DE.utf8"},
			colors:  Color16,
			unicode: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			caps := capsFromEnv(fakeEnv(tt.env))
			assert.Equal(t, tt.colors, caps.Colors)
			assert.Equal(t, tt.unicode, caps.Unicode)
			assert.Equal(t, defaultWidth, caps.Width)
			assert.Equal(t, defaultHeight, caps.Height)
		})
	}
}

func TestColorsFromProfile(t *testing.T) {
	assert.Equal(t, ColorTrue, colorsFromProfile(termenv.TrueColor))
	assert.Equal(t, Color256, colorsFromProfile(termenv.ANSI256))
	assert.Equal(t, Color16, colorsFromProfile(termenv.ANSI))
	assert.Equal(t, ColorNone, colorsFromProfile(termenv.Ascii))
}

func TestTerminalSize_Fallback(t *testing.T) {
	type tc struct {
		columns, lines string
		w, h           int
	}

	tests := map[string]tc{
		"defaults":        {w: 80, h: 24},
		"from env":        {columns: "120", lines: "40", w: 120, h: 40},
		"garbage ignored": {columns: "wide", lines: "-3", w: 80, h: 24},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("COLUMNS", tt.columns)
			t.Setenv("LINES", tt.lines)
			// An fd that is not a terminal forces the fallback path.
			w, h := TerminalSize(^uintptr(0))
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
		})
	}
}

func TestDetectCapabilities_UsesGivenFile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("COLUMNS", "90")
	t.Setenv("LINES", "30")

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	caps := DetectCapabilities(f)
	assert.Equal(t, ColorNone, caps.Colors)
	assert.Equal(t, 90, caps.Width, "a plain file has no size, so the env fallback applies")
	assert.Equal(t, 30, caps.Height)
}

func TestCapabilities_SupportsColor(t *testing.T) {
	type tc struct {
		tier  ColorCapability
		color Color
		want  bool
	}

	tests := map[string]tc{
		"default everywhere":    {tier: ColorNone, color: DefaultColor(), want: true},
		"basic on none":         {tier: ColorNone, color: Red, want: false},
		"basic on 16":           {tier: Color16, color: BrightCyan, want: true},
		"palette on 16":         {tier: Color16, color: ANSIColor(208), want: false},
		"palette on 256":        {tier: Color256, color: ANSIColor(208), want: true},
		"rgb on 256":            {tier: Color256, color: RGBColor(1, 2, 3), want: false},
		"rgb on true color":     {tier: ColorTrue, color: RGBColor(1, 2, 3), want: true},
		"palette on true color": {tier: ColorTrue, color: ANSIColor(100), want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			caps := Capabilities{Colors: tt.tier}
			assert.Equal(t, tt.want, caps.SupportsColor(tt.color))
		})
	}
}

func TestCapabilities_EffectiveColor(t *testing.T) {
	type tc struct {
		tier  ColorCapability
		color Color
		want  Color
	}

	tests := map[string]tc{
		"true color passes rgb": {
			tier:  ColorTrue,
			color: RGBColor(95, 135, 175),
			want:  RGBColor(95, 135, 175),
		},
		"256 downsamples rgb": {
			tier:  Color256,
			color: RGBColor(95, 135, 175),
			want:  ANSIColor(67),
		},
		"16 downsamples palette": {
			tier:  Color16,
			color: ANSIColor(196),
			want:  BrightRed,
		},
		"none drops color": {
			tier:  ColorNone,
			color: RGBColor(255, 0, 0),
			want:  DefaultColor(),
		},
		"default unchanged": {
			tier:  ColorNone,
			color: DefaultColor(),
			want:  DefaultColor(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			caps := Capabilities{Colors: tt.tier}
			assert.Equal(t, tt.want, caps.EffectiveColor(tt.color))
		})
	}
}

func TestCapabilities_String(t *testing.T) {
	caps := Capabilities{Width: 100, Height: 30, Unicode: true, Colors: Color256}
	assert.Equal(t, "100x30, 256-color, unicode", caps.String())

	caps.Unicode = false
	caps.Colors = ColorNone
	assert.Equal(t, "100x30, no-color, ascii", caps.String())
}
