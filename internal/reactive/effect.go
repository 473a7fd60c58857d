package reactive

// Effect is an eager computation run for its side effects. It runs once when
// created (or when the enclosing batch ends) and again, at most once per
// flush round, after any source it read changes.
type Effect struct {
	n  node
	fn func()
}

// NewEffect creates and schedules an effect owned by scope s.
func NewEffect(s *Scope, fn func(), opts ...Option) *Effect {
	e := &Effect{fn: fn}
	s.register(&e.n, kindEffect, opts)
	e.n.run = func() bool {
		e.fn()
		return true
	}
	e.n.state = stateDirty
	g := e.n.graph
	g.enqueue(&e.n)
	g.flush()
	return e
}

// Dispose stops the effect and unsubscribes it from its sources.
func (e *Effect) Dispose() {
	e.n.graph.dispose(&e.n)
}

// Name returns the effect's debug label.
func (e *Effect) Name() string {
	return e.n.String()
}

// Tracker collects the read-set of an arbitrary function and reports, once,
// when any of those reads becomes stale. The renderer uses one to learn
// that a new pass is needed without re-running the view eagerly.
type Tracker struct {
	n            node
	onInvalidate func()
}

// NewTracker creates a tracker owned by scope s. onInvalidate runs at flush
// time after the first change to anything read by the last Track.
func NewTracker(s *Scope, onInvalidate func(), opts ...Option) *Tracker {
	t := &Tracker{onInvalidate: onInvalidate}
	s.register(&t.n, kindTracker, opts)
	t.n.run = func() bool {
		// Stay unsubscribed until the next Track.
		if t.onInvalidate != nil {
			t.n.graph.Untrack(t.onInvalidate)
		}
		return true
	}
	return t
}

// Track runs fn with t as the running computation, replacing the previous
// read-set with the one fn produces. Structural graph errors raised inside
// fn are returned; other panics propagate.
func (t *Tracker) Track(fn func()) (err error) {
	g := t.n.graph
	if t.n.disposed {
		return &GraphError{Err: ErrDisposed, Node: t.n.String()}
	}
	if t.n.running {
		return &GraphError{Err: ErrCycle, Node: t.n.String()}
	}
	for _, src := range t.n.sources {
		src.removeObserver(&t.n)
	}
	t.n.sources = nil
	t.n.state = stateClean

	err = Catch(func() {
		t.n.running = true
		g.stack = append(g.stack, &t.n)
		defer func() {
			g.stack = g.stack[:len(g.stack)-1]
			t.n.running = false
		}()
		fn()
	})
	g.flush()
	return err
}

// Sources reports how many distinct cells and memos the last Track read.
func (t *Tracker) Sources() int {
	return len(t.n.sources)
}

// Dispose stops the tracker. onInvalidate is never called afterwards.
func (t *Tracker) Dispose() {
	t.n.graph.dispose(&t.n)
}
