package tui

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// Config is the user-editable configuration file:
//
//	mode = "inline"      # or "fullscreen"
//	frame_rate = 60
//	queue_size = 256
//	colors = "auto"      # or "none", "16", "256", "true"
//	ascii = false        # force the ASCII fallback
//	border = "rounded"
//
//	[theme]
//	title = "bold fg=#5fafd7"
//	muted = "dim"
type Config struct {
	Mode      string            `toml:"mode"`
	FrameRate int               `toml:"frame_rate"`
	QueueSize int               `toml:"queue_size"`
	Colors    string            `toml:"colors"`
	ASCII     bool              `toml:"ascii"`
	Border    string            `toml:"border"`
	Theme     map[string]string `toml:"theme"`

	styles map[string]Style
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Mode:      "inline",
		FrameRate: defaultFrameRate,
		QueueSize: defaultQueueSize,
		Colors:    "auto",
		Border:    "rounded",
	}
}

// LoadConfig reads and validates a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML over the defaults. Unknown keys are errors so
// typos do not go unnoticed.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Mode {
	case "inline", "fullscreen":
	default:
		return fmt.Errorf("mode %q: want inline or fullscreen", c.Mode)
	}
	switch c.Colors {
	case "auto", "none", "16", "256", "true":
	default:
		return fmt.Errorf("colors %q: want auto, none, 16, 256 or true", c.Colors)
	}
	if _, ok := ParseBorderStyle(c.Border); !ok {
		return fmt.Errorf("border %q: unknown style", c.Border)
	}

	c.styles = make(map[string]Style, len(c.Theme))
	names := make([]string, 0, len(c.Theme))
	for name := range c.Theme {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s, err := ParseStyle(c.Theme[name])
		if err != nil {
			return fmt.Errorf("theme.%s: %w", name, err)
		}
		c.styles[name] = s
	}
	return nil
}

// Options converts the file settings into renderer and loop options.
func (c Config) Options() ([]Option, error) {
	opts := []Option{WithFrameRate(c.FrameRate), WithQueueSize(c.QueueSize)}
	if c.Mode == "fullscreen" {
		opts = append(opts, WithFullscreen())
	} else {
		opts = append(opts, WithInline())
	}
	// Run the options once so bad values surface here rather than later.
	if _, err := buildOptions(opts); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return opts, nil
}

// Apply overrides detected capabilities with the file settings.
func (c Config) Apply(caps Capabilities) Capabilities {
	switch c.Colors {
	case "none":
		caps.Colors = ColorNone
	case "16":
		caps.Colors = Color16
	case "256":
		caps.Colors = Color256
	case "true":
		caps.Colors = ColorTrue
	}
	if c.ASCII {
		caps.Unicode = false
	}
	return caps
}

// Style returns the theme style called name, or the default style.
func (c Config) Style(name string) Style {
	return c.styles[name]
}

// BorderStyle returns the configured border.
func (c Config) BorderStyle() BorderStyle {
	b, _ := ParseBorderStyle(c.Border)
	return b
}
