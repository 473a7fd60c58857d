package reactive

// Cell is a mutable value with identity. Reading it inside a running
// computation subscribes that computation; writing a different value
// notifies every subscriber.
//
// Inside a Batch, writes are staged. The code running the batch sees its
// own staged values, while computations keep seeing the committed ones
// until the outermost batch returns and every staged write lands at once.
type Cell[T any] struct {
	n       node
	value   T
	pending T
	staged  bool
	equal   func(a, b T) bool
}

// NewCell creates a cell owned by scope s that compares values with ==.
func NewCell[T comparable](s *Scope, initial T, opts ...Option) *Cell[T] {
	return NewCellFunc(s, initial, func(a, b T) bool { return a == b }, opts...)
}

// NewCellFunc creates a cell with a custom equality. A nil equal treats
// every write as a change.
func NewCellFunc[T any](s *Scope, initial T, equal func(a, b T) bool, opts ...Option) *Cell[T] {
	if equal == nil {
		equal = func(T, T) bool { return false }
	}
	c := &Cell[T]{value: initial, equal: equal}
	s.register(&c.n, kindCell, opts)
	return c
}

// Get returns the current value and subscribes the running computation.
func (c *Cell[T]) Get() T {
	c.n.graph.track(&c.n)
	return c.read()
}

// Peek returns the current value without subscribing.
func (c *Cell[T]) Peek() T {
	return c.read()
}

// read hides staged writes from computations.
func (c *Cell[T]) read() T {
	if c.staged && len(c.n.graph.stack) == 0 {
		return c.pending
	}
	return c.value
}

func (c *Cell[T]) latest() T {
	if c.staged {
		return c.pending
	}
	return c.value
}

// Set stores v. Writing an equal value is a no-op: no subscriber is
// notified and no effect runs. Outside a Batch, pending effects run before
// Set returns.
func (c *Cell[T]) Set(v T) {
	g := c.n.graph
	g.checkWrite(&c.n)
	if c.equal(c.latest(), v) {
		return
	}
	g.stats.Writes++
	if g.batchDepth > 0 {
		if !c.staged {
			c.staged = true
			g.staged = append(g.staged, c.commit)
		}
		c.pending = v
		return
	}
	c.value = v
	g.notify(&c.n)
	g.flush()
}

// commit applies the staged value. Writes that ended where they started
// notify nobody.
func (c *Cell[T]) commit() {
	v := c.pending
	var zero T
	c.pending, c.staged = zero, false
	if c.n.disposed || c.equal(c.value, v) {
		return
	}
	c.value = v
	c.n.graph.notify(&c.n)
}

// Update stores fn applied to the current value, including a value staged
// earlier in the same batch.
func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.latest()))
}

// Name returns the cell's debug label.
func (c *Cell[T]) Name() string {
	return c.n.String()
}

// Disposed reports whether the owning scope was disposed.
func (c *Cell[T]) Disposed() bool {
	return c.n.disposed
}

// Accessors returns the cell's getter and setter as plain functions.
func (c *Cell[T]) Accessors() (func() T, func(T)) {
	return c.Get, c.Set
}
