package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyle_Builders(t *testing.T) {
	s := NewStyle().Bold().Underline().Foreground(Red).Background(Blue)

	assert.True(t, s.HasAttr(AttrBold))
	assert.True(t, s.HasAttr(AttrBold|AttrUnderline))
	assert.False(t, s.HasAttr(AttrItalic))
	assert.Equal(t, Red, s.Fg)
	assert.Equal(t, Blue, s.Bg)
	assert.False(t, s.IsDefault())
	assert.True(t, NewStyle().IsDefault())
	assert.True(t, s.Equal(Style{Fg: Red, Bg: Blue, Attrs: AttrBold | AttrUnderline}))
}

func TestStyle_Over(t *testing.T) {
	base := Style{Bg: Blue}

	got := Style{Fg: Red}.over(base)
	assert.Equal(t, Style{Fg: Red, Bg: Blue}, got, "default background shows through")

	got = Style{Fg: Red, Bg: Green}.over(base)
	assert.Equal(t, Style{Fg: Red, Bg: Green}, got)
}

func TestStyle_Inherit(t *testing.T) {
	parent := Style{Fg: Cyan, Bg: Blue, Attrs: AttrBold}

	got := Style{}.inherit(parent)
	assert.Equal(t, Style{Fg: Cyan, Attrs: AttrBold}, got, "background is not inherited")

	got = Style{Fg: Red, Attrs: AttrItalic}.inherit(parent)
	assert.Equal(t, Style{Fg: Red, Attrs: AttrBold | AttrItalic}, got)
}

func TestParseStyle(t *testing.T) {
	type tc struct {
		input   string
		want    Style
		wantErr bool
	}

	tests := map[string]tc{
		"empty": {
			input: "",
			want:  Style{},
		},
		"attributes": {
			input: "bold underline",
			want:  Style{Attrs: AttrBold | AttrUnderline},
		},
		"colors": {
			input: "fg=#5fafd7 bg=236",
			want:  Style{Fg: RGBColor(0x5f, 0xaf, 0xd7), Bg: ANSIColor(236)},
		},
		"mixed": {
			input: "dim fg=red strikethrough",
			want:  Style{Fg: Red, Attrs: AttrDim | AttrStrikethrough},
		},
		"unknown attribute": {
			input:   "blinking",
			wantErr: true,
		},
		"unknown key": {
			input:   "color=red",
			wantErr: true,
		},
		"bad color": {
			input:   "fg=#12",
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseStyle(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
