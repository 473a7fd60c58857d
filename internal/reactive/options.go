package reactive

import (
	"log/slog"

	"github.com/grindlemire/tuicore/internal/debug"
)

// defaultMaxFlushRounds bounds how many times effects may re-trigger each
// other in a single flush before the flush is abandoned with ErrRunaway.
const defaultMaxFlushRounds = 100

// GraphOption configures a Graph.
type GraphOption func(*Graph)

// WithLogger sets the logger used for flush and error diagnostics.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithErrorHandler sets a callback for structural errors raised by effects
// during a flush. Errors are always logged; the handler is optional.
func WithErrorHandler(fn func(error)) GraphOption {
	return func(g *Graph) {
		g.onError = fn
	}
}

// WithMaxFlushRounds overrides the re-trigger limit of a single flush.
func WithMaxFlushRounds(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.maxRounds = n
		}
	}
}

func defaultLogger() *slog.Logger {
	return debug.Logger()
}

// Option configures a single cell or computation.
type Option func(*nodeConfig)

type nodeConfig struct {
	name string
}

// WithName labels a node for error reports and debug logs.
func WithName(name string) Option {
	return func(c *nodeConfig) {
		c.name = name
	}
}

func buildConfig(opts []Option) nodeConfig {
	var c nodeConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
