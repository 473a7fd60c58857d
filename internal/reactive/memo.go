package reactive

// Memo is a lazily evaluated derived value. It runs on first read and
// afterwards only when a source it read has actually changed value.
type Memo[T any] struct {
	n     node
	fn    func() T
	value T
	has   bool
	equal func(a, b T) bool
}

// NewMemo creates a memo that compares outputs with ==, so an unchanged
// result stops propagation to its observers.
func NewMemo[T comparable](s *Scope, fn func() T, opts ...Option) *Memo[T] {
	return NewMemoFunc(s, fn, func(a, b T) bool { return a == b }, opts...)
}

// NewMemoFunc creates a memo with a custom output equality. A nil equal
// treats every recompute as a change.
func NewMemoFunc[T any](s *Scope, fn func() T, equal func(a, b T) bool, opts ...Option) *Memo[T] {
	if equal == nil {
		equal = func(T, T) bool { return false }
	}
	m := &Memo[T]{fn: fn, equal: equal}
	s.register(&m.n, kindMemo, opts)
	m.n.state = stateDirty
	m.n.run = m.run
	return m
}

func (m *Memo[T]) run() bool {
	v := m.fn()
	if m.has && m.equal(m.value, v) {
		return false
	}
	m.value = v
	m.has = true
	return true
}

// Get returns the memo's current value, recomputing it first if a source
// changed, and subscribes the running computation.
func (m *Memo[T]) Get() T {
	g := m.n.graph
	if m.n.disposed {
		g.raise(ErrDisposed, &m.n)
	}
	g.checkCycle(&m.n)
	g.refresh(&m.n)
	g.track(&m.n)
	return m.value
}

// Peek returns the memo's current value without subscribing. It still
// recomputes a stale memo.
func (m *Memo[T]) Peek() T {
	var v T
	m.n.graph.Untrack(func() { v = m.Get() })
	return v
}

// Name returns the memo's debug label.
func (m *Memo[T]) Name() string {
	return m.n.String()
}
