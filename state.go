// state.go re-exports the reactive graph from internal/reactive.
//
// Cells hold state, memos derive values from cells and other memos, and
// effects run side effects when what they read changes. Every node belongs
// to a Scope and is disposed with it:
//
//	g := tui.NewGraph()
//	first := tui.NewCell(g.Root(), "Ada")
//	last := tui.NewCell(g.Root(), "Lovelace")
//	full := tui.NewMemo(g.Root(), func() string {
//	    return first.Get() + " " + last.Get()
//	})
//	g.Batch(func() {
//	    first.Set("Grace")
//	    last.Set("Hopper")
//	}) // effects reading full run once here
//
// The graph is single threaded. Writes from other goroutines go through
// Loop.Commit.
package tui

import (
	"log/slog"

	"github.com/grindlemire/tuicore/internal/reactive"
)

// Graph owns a reactive graph and its run stack.
type Graph = reactive.Graph

// Scope owns cells and computations; disposing it disposes them.
type Scope = reactive.Scope

// Cell is a mutable reactive value.
type Cell[T any] = reactive.Cell[T]

// Memo is a lazily recomputed derived value.
type Memo[T any] = reactive.Memo[T]

// Effect re-runs a side effect when what it read changes.
type Effect = reactive.Effect

// Tracker records what a function read and reports the first change.
type Tracker = reactive.Tracker

// GraphError is a structural graph error with the node and run stack.
type GraphError = reactive.GraphError

// GraphOption configures a Graph.
type GraphOption = reactive.GraphOption

// NodeConfig configures a single cell or computation.
type NodeConfig = reactive.Option

// GraphStats counts graph activity.
type GraphStats = reactive.Stats

// Structural graph errors; match them with errors.Is.
var (
	ErrCycle           = reactive.ErrCycle
	ErrWriteDuringRead = reactive.ErrWriteDuringRead
	ErrDisposed        = reactive.ErrDisposed
	ErrRunaway         = reactive.ErrRunaway
)

// NewGraph creates an empty graph.
func NewGraph(opts ...GraphOption) *Graph {
	return reactive.NewGraph(opts...)
}

// WithGraphLogger sets the graph's diagnostics logger.
func WithGraphLogger(l *slog.Logger) GraphOption {
	return reactive.WithLogger(l)
}

// WithGraphErrorHandler receives structural errors raised by effects.
func WithGraphErrorHandler(fn func(error)) GraphOption {
	return reactive.WithErrorHandler(fn)
}

// WithMaxFlushRounds bounds how often effects may re-trigger each other.
func WithMaxFlushRounds(n int) GraphOption {
	return reactive.WithMaxFlushRounds(n)
}

// Named labels a node for error reports.
func Named(name string) NodeConfig {
	return reactive.WithName(name)
}

// NewCell creates a cell in s. Writes of an equal value are ignored.
func NewCell[T comparable](s *Scope, initial T, opts ...NodeConfig) *Cell[T] {
	return reactive.NewCell(s, initial, opts...)
}

// NewCellFunc creates a cell with a custom equality. A nil equal treats
// every write as a change.
func NewCellFunc[T any](s *Scope, initial T, equal func(a, b T) bool, opts ...NodeConfig) *Cell[T] {
	return reactive.NewCellFunc(s, initial, equal, opts...)
}

// NewMemo creates a derived value in s.
func NewMemo[T comparable](s *Scope, fn func() T, opts ...NodeConfig) *Memo[T] {
	return reactive.NewMemo(s, fn, opts...)
}

// NewMemoFunc creates a derived value with a custom equality.
func NewMemoFunc[T any](s *Scope, fn func() T, equal func(a, b T) bool, opts ...NodeConfig) *Memo[T] {
	return reactive.NewMemoFunc(s, fn, equal, opts...)
}

// NewEffect creates an effect in s and runs it once.
func NewEffect(s *Scope, fn func(), opts ...NodeConfig) *Effect {
	return reactive.NewEffect(s, fn, opts...)
}

// NewTracker creates a tracker in s.
func NewTracker(s *Scope, onInvalidate func(), opts ...NodeConfig) *Tracker {
	return reactive.NewTracker(s, onInvalidate, opts...)
}

// Catch runs fn and returns a structural graph error it raised.
func Catch(fn func()) error {
	return reactive.Catch(fn)
}
