package reactive

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCycle reports a computation that (transitively) read its own output.
	ErrCycle = errors.New("reactive: dependency cycle")
	// ErrWriteDuringRead reports a write to a cell that a running computation
	// already read during the same run.
	ErrWriteDuringRead = errors.New("reactive: write to a cell read by the running computation")
	// ErrDisposed reports use of a node whose scope was disposed.
	ErrDisposed = errors.New("reactive: node used after its scope was disposed")
	// ErrRunaway reports effects that kept re-triggering each other past the
	// flush round limit.
	ErrRunaway = errors.New("reactive: effects did not settle")
)

// GraphError is a structural graph error. Err is one of the sentinel errors
// above; Node names the implicated cell or computation and Path lists the
// run stack (outermost first) when the error was raised.
type GraphError struct {
	Err  error
	Node string
	Path []string
}

func (e *GraphError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Node != "" {
		fmt.Fprintf(&b, " at %s", e.Node)
	}
	if len(e.Path) > 0 {
		fmt.Fprintf(&b, " (stack: %s)", strings.Join(e.Path, " -> "))
	}
	return b.String()
}

func (e *GraphError) Unwrap() error {
	return e.Err
}

// raise aborts the current run with a structural error. Graph boundaries
// (Catch, Tracker.Track, effect flush) turn it back into an error value.
func (g *Graph) raise(err error, n *node) {
	path := make([]string, 0, len(g.stack)+1)
	for _, s := range g.stack {
		if s != nil {
			path = append(path, s.String())
		}
	}
	panic(&GraphError{Err: err, Node: n.String(), Path: path})
}

// Catch runs fn and returns any structural graph error it raised.
// Panics that are not graph errors are re-raised unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ge, ok := r.(*GraphError)
			if !ok {
				panic(r)
			}
			err = ge
		}
	}()
	fn()
	return nil
}
