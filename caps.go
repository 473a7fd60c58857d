package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorCapability describes the level of color support in a terminal.
type ColorCapability int

const (
	// ColorNone indicates a monochrome terminal with no color support.
	ColorNone ColorCapability = iota
	// Color16 indicates basic 16-color support (ANSI standard colors).
	Color16
	// Color256 indicates ANSI 256 palette support.
	Color256
	// ColorTrue indicates 24-bit true color (RGB) support.
	ColorTrue
)

func (c ColorCapability) String() string {
	switch c {
	case ColorNone:
		return "no-color"
	case Color16:
		return "16-color"
	case Color256:
		return "256-color"
	case ColorTrue:
		return "true-color"
	default:
		return "ColorCapability(" + strconv.Itoa(int(c)) + ")"
	}
}

// Capabilities is a snapshot of what the output device can do. A render
// pass reads exactly one snapshot for all of its layout and serialization.
type Capabilities struct {
	// Width and Height are the terminal size in cells.
	Width, Height int
	// Unicode is false when only ASCII can be displayed.
	Unicode bool
	// Colors indicates the level of color support.
	Colors ColorCapability
}

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// DetectCapabilities inspects the terminal behind f and the environment.
// Returns conservative defaults when detection fails.
func DetectCapabilities(f *os.File) Capabilities {
	caps := capsFromEnv(os.Getenv)
	// termenv reports Ascii both for NO_COLOR and for a non-terminal f.
	// Only the former should win over the environment heuristics.
	if p := termenv.NewOutput(f).EnvColorProfile(); p != termenv.Ascii {
		caps.Colors = max(caps.Colors, colorsFromProfile(p))
	} else if os.Getenv("NO_COLOR") != "" {
		caps.Colors = ColorNone
	}
	caps.Width, caps.Height = TerminalSize(f.Fd())
	return caps
}

// TerminalSize returns the size of the terminal behind fd, falling back to
// $COLUMNS/$LINES and then 80x24.
func TerminalSize(fd uintptr) (width, height int) {
	if w, h, err := term.GetSize(int(fd)); err == nil && w > 0 && h > 0 {
		return w, h
	}
	width, height = defaultWidth, defaultHeight
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		width = n
	}
	if n, err := strconv.Atoi(os.Getenv("LINES")); err == nil && n > 0 {
		height = n
	}
	return width, height
}

// capsFromEnv applies the environment heuristics that need no terminal:
// Unicode support from TERM and the locale, and a color tier for
// terminals known to support true color.
func capsFromEnv(getenv func(string) string) Capabilities {
	caps := Capabilities{
		Width:   defaultWidth,
		Height:  defaultHeight,
		Colors:  Color16,
		Unicode: unicodeFromEnv(getenv),
	}

	colorterm := strings.ToLower(getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		caps.Colors = ColorTrue
		return caps
	}

	// Terminal emulators known to support true color.
	for _, key := range []string{"WT_SESSION", "ITERM_SESSION_ID", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "VTE_VERSION"} {
		if getenv(key) != "" {
			caps.Colors = ColorTrue
			return caps
		}
	}

	t := strings.ToLower(getenv("TERM"))
	switch {
	case t == "dumb":
		caps.Colors = ColorNone
	case strings.Contains(t, "256color"):
		caps.Colors = Color256
	case strings.Contains(t, "truecolor"):
		caps.Colors = ColorTrue
	}
	return caps
}

// unicodeFromEnv reports whether the terminal is expected to render UTF-8.
// The first locale variable that is set decides; with no locale at all a
// modern terminal is assumed.
func unicodeFromEnv(getenv func(string) string) bool {
	if t := getenv("TERM"); t == "dumb" || t == "linux" {
		return false
	}
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := getenv(key)
		if v == "" {
			continue
		}
		v = strings.ToLower(v)
		return strings.Contains(v, "utf-8") || strings.Contains(v, "utf8")
	}
	return true
}

func colorsFromProfile(p termenv.Profile) ColorCapability {
	switch p {
	case termenv.TrueColor:
		return ColorTrue
	case termenv.ANSI256:
		return Color256
	case termenv.ANSI:
		return Color16
	default:
		return ColorNone
	}
}

// SupportsColor returns true if the terminal can show color without
// downsampling.
func (c Capabilities) SupportsColor(color Color) bool {
	switch color.Type() {
	case ColorDefault:
		return true
	case ColorANSI:
		if color.ANSI() < 16 {
			return c.Colors >= Color16
		}
		return c.Colors >= Color256
	case ColorRGB:
		return c.Colors >= ColorTrue
	}
	return false
}

// EffectiveColor returns the color to emit given the terminal's color tier.
// Colors the tier cannot show are mapped to the nearest palette entry, or
// to the default color on a monochrome terminal.
func (c Capabilities) EffectiveColor(color Color) Color {
	if c.SupportsColor(color) {
		return color
	}
	switch c.Colors {
	case Color256:
		return color.ToANSI()
	case Color16:
		return color.To16()
	default:
		return DefaultColor()
	}
}

// String returns a human-readable description of the capabilities.
func (c Capabilities) String() string {
	charset := "ascii"
	if c.Unicode {
		charset = "unicode"
	}
	return strconv.Itoa(c.Width) + "x" + strconv.Itoa(c.Height) + ", " + c.Colors.String() + ", " + charset
}
