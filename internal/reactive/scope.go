package reactive

// Scope owns cells and computations and disposes them together. Scopes form
// a tree rooted at Graph.Root; disposing a scope disposes its children first.
//
// A scope that is never disposed keeps its nodes subscribed for the life of
// the graph. Widgets that come and go should create their state in a Child
// scope and dispose it when they unmount.
type Scope struct {
	graph    *Graph
	parent   *Scope
	children []*Scope
	nodes    []*node
	cleanups []func()
	disposed bool
}

// Graph returns the graph the scope belongs to.
func (s *Scope) Graph() *Graph {
	return s.graph
}

// Child creates a scope owned by s.
func (s *Scope) Child() *Scope {
	c := &Scope{graph: s.graph, parent: s}
	if s.disposed {
		c.disposed = true
		return c
	}
	s.children = append(s.children, c)
	return c
}

// OnCleanup registers fn to run when s is disposed. Cleanups run in reverse
// registration order. Registering on a disposed scope runs fn immediately.
func (s *Scope) OnCleanup(fn func()) {
	if s.disposed {
		fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
}

// Disposed reports whether Dispose has been called.
func (s *Scope) Disposed() bool {
	return s.disposed
}

// Dispose disposes child scopes, runs cleanups and unlinks every node the
// scope owns. Later writes to its cells fail with ErrDisposed and its
// effects never run again. Dispose is idempotent.
func (s *Scope) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for i := len(s.children) - 1; i >= 0; i-- {
		s.children[i].Dispose()
	}
	s.children = nil
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		s.cleanups[i]()
	}
	s.cleanups = nil
	for _, n := range s.nodes {
		s.graph.dispose(n)
	}
	s.nodes = nil
	if s.parent != nil && !s.parent.disposed {
		s.parent.removeChild(s)
	}
}

func (s *Scope) removeChild(c *Scope) {
	for i, sc := range s.children {
		if sc == c {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// register initializes n as a node of the given kind owned by s.
func (s *Scope) register(n *node, kind nodeKind, opts []Option) {
	g := s.graph
	g.nextID++
	*n = node{
		id:    g.nextID,
		name:  buildConfig(opts).name,
		kind:  kind,
		graph: g,
		scope: s,
	}
	if s.disposed {
		n.disposed = true
		return
	}
	s.nodes = append(s.nodes, n)
}
