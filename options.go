package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/grindlemire/tuicore/internal/debug"
)

const (
	defaultFrameRate = 60
	defaultQueueSize = 256
)

// options is shared by Renderer and Loop; each reads the fields it needs.
type options struct {
	frameDuration time.Duration
	mode          Mode
	logger        *slog.Logger
	onError       func(error)
	queueSize     int
}

func defaultOptions() options {
	return options{
		frameDuration: time.Second / defaultFrameRate,
		mode:          ModeInline,
		queueSize:     defaultQueueSize,
	}
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return options{}, err
		}
	}
	if o.logger == nil {
		o.logger = debug.Logger()
	}
	return o, nil
}

// Option is a functional option for configuring a Renderer or Loop.
type Option func(*options) error

// WithFrameRate sets the maximum number of passes per second.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) Option {
	return func(o *options) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		o.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithInline draws frames below the cursor and keeps terminal history.
// This is the default.
func WithInline() Option {
	return func(o *options) error {
		o.mode = ModeInline
		return nil
	}
}

// WithFullscreen draws frames on the alternate screen.
func WithFullscreen() Option {
	return func(o *options) error {
		o.mode = ModeFullscreen
		return nil
	}
}

// WithMode selects inline or fullscreen output.
func WithMode(m Mode) Option {
	return func(o *options) error {
		o.mode = m
		return nil
	}
}

// WithLogger sets the logger. By default the debug log is used, which
// discards everything unless TUI_DEBUG names a file.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		o.logger = l
		return nil
	}
}

// WithQueueSize sets the capacity of the commit queue.
// Default is 256. Must be at least 1.
func WithQueueSize(size int) Option {
	return func(o *options) error {
		if size < 1 {
			return fmt.Errorf("queue size must be at least 1")
		}
		o.queueSize = size
		return nil
	}
}

// WithErrorHandler sets a function that receives every failed pass.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) error {
		o.onError = fn
		return nil
	}
}
