package tui

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
)

// Color represents a terminal color with support for default, ANSI 256, and true color.
// Zero value represents the terminal default color.
type Color struct {
	typ ColorType
	// For ANSI: r holds the palette index (0-255)
	// For RGB: r, g, b hold the color components
	r, g, b uint8
}

// DefaultColor returns a Color representing the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color (24-bit RGB) Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses "#RRGGBB" or "#RGB".
func HexColor(hex string) (Color, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: expected #RGB or #RRGGBB", hex)
	}
	r, g, b := c.RGB255()
	return RGBColor(r, g, b), nil
}

// namedColors maps the names accepted by ParseColor to the 16 basic colors.
var namedColors = map[string]Color{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright-black":   BrightBlack,
	"gray":           BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
}

// ParseColor accepts "default", a basic color name, a palette index
// ("208") or a hex color ("#ff8700").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "default" {
		return DefaultColor(), nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return HexColor(s)
	}
	if idx, err := strconv.Atoi(s); err == nil && idx >= 0 && idx <= 255 {
		return ANSIColor(uint8(idx)), nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the ANSI palette index.
// Panics if the color is not an ANSI color.
func (c Color) ANSI() uint8 {
	if c.typ != ColorANSI {
		panic("Color.ANSI() called on non-ANSI color")
	}
	return c.r
}

// RGB returns the red, green, and blue components.
// Panics if the color is not an RGB color.
func (c Color) RGB() (r, g, b uint8) {
	if c.typ != ColorRGB {
		panic("Color.RGB() called on non-RGB color")
	}
	return c.r, c.g, c.b
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}

func (c Color) String() string {
	switch c.typ {
	case ColorANSI:
		return fmt.Sprintf("ansi(%d)", c.r)
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return "default"
	}
}

// ToANSI maps a color to the nearest entry of the 256-color palette,
// measured in CIE L*a*b* space. Default and ANSI colors are unchanged.
func (c Color) ToANSI() Color {
	if c.typ != ColorRGB {
		return c
	}
	return ANSIColor(nearest(c.toColorful(), palette[:]))
}

// To16 maps a color to the nearest of the 16 basic colors.
func (c Color) To16() Color {
	switch c.typ {
	case ColorDefault:
		return c
	case ColorANSI:
		if c.r < 16 {
			return c
		}
	}
	return ANSIColor(nearest(c.toColorful(), palette[:16]))
}

func (c Color) toColorful() colorful.Color {
	r, g, b := c.ToRGBValues()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// nearest returns the index of the closest palette entry. Ties go to the
// lower index.
func nearest(c colorful.Color, entries []colorful.Color) uint8 {
	best, bestDist := 0, -1.0
	for i, p := range entries {
		d := c.DistanceLab(p)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

// Standard ANSI colors (basic 8 colors).
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)
)

// Bright ANSI colors (high-intensity variants).
var (
	BrightBlack   = ANSIColor(8)
	BrightRed     = ANSIColor(9)
	BrightGreen   = ANSIColor(10)
	BrightYellow  = ANSIColor(11)
	BrightBlue    = ANSIColor(12)
	BrightMagenta = ANSIColor(13)
	BrightCyan    = ANSIColor(14)
	BrightWhite   = ANSIColor(15)
)

// ansi16RGB maps ANSI colors 0-15 to approximate RGB values.
// These are typical terminal color values; actual values vary by terminal.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0},       // 0: Black
	{205, 49, 49},   // 1: Red
	{13, 188, 121},  // 2: Green
	{229, 229, 16},  // 3: Yellow
	{36, 114, 200},  // 4: Blue
	{188, 63, 188},  // 5: Magenta
	{17, 168, 205},  // 6: Cyan
	{229, 229, 229}, // 7: White
	{102, 102, 102}, // 8: Bright Black (Gray)
	{241, 76, 76},   // 9: Bright Red
	{35, 209, 139},  // 10: Bright Green
	{245, 245, 67},  // 11: Bright Yellow
	{59, 142, 234},  // 12: Bright Blue
	{214, 112, 214}, // 13: Bright Magenta
	{41, 184, 219},  // 14: Bright Cyan
	{255, 255, 255}, // 15: Bright White
}

// palette holds the 256-color palette in colorful form for nearest-match
// lookups.
var palette [256]colorful.Color

func init() {
	for i := range palette {
		palette[i] = ANSIColor(uint8(i)).toColorful()
	}
}

// ToRGBValues returns the red, green, and blue components of any color.
// For ANSI colors, it approximates the RGB values.
// For default colors, it returns (0, 0, 0).
func (c Color) ToRGBValues() (r, g, b uint8) {
	switch c.typ {
	case ColorRGB:
		return c.r, c.g, c.b
	case ColorANSI:
		idx := c.r
		switch {
		case idx < 16:
			rgb := ansi16RGB[idx]
			return rgb[0], rgb[1], rgb[2]
		case idx < 232:
			// 6x6x6 color cube: index = 16 + 36*r + 6*g + b
			idx -= 16
			return cubeLevel(idx / 36), cubeLevel((idx % 36) / 6), cubeLevel(idx % 6)
		default:
			gray := 8 + (idx-232)*10
			return gray, gray, gray
		}
	}
	return 0, 0, 0
}

// cubeLevel converts a 0-5 cube coordinate to its channel value.
func cubeLevel(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return 55 + v*40
}
