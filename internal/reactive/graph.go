package reactive

import (
	"cmp"
	"log/slog"
	"slices"
	"strconv"
)

type nodeKind uint8

const (
	kindCell nodeKind = iota
	kindMemo
	kindEffect
	kindTracker
)

func (k nodeKind) String() string {
	switch k {
	case kindCell:
		return "cell"
	case kindMemo:
		return "memo"
	case kindEffect:
		return "effect"
	case kindTracker:
		return "tracker"
	}
	return "node"
}

// nodeState orders staleness: a node is never lowered by a mark.
type nodeState uint8

const (
	stateClean nodeState = iota
	stateCheck           // a transitive source may have changed
	stateDirty           // a direct source changed
)

// node is the untyped vertex shared by cells and computations.
type node struct {
	id    uint64
	name  string
	kind  nodeKind
	graph *Graph
	scope *Scope

	sources   []*node // read during the last run (computations only)
	observers []*node // computations that read this node in their last run

	state    nodeState
	running  bool
	queued   bool
	requeue  bool // a reaction went stale during its own run
	disposed bool

	// run executes the computation body and reports whether its output
	// changed. Cells leave it nil.
	run func() bool
}

func (n *node) String() string {
	if n.name != "" {
		return n.name
	}
	return n.kind.String() + "#" + strconv.FormatUint(n.id, 10)
}

func (n *node) isReaction() bool {
	return n.kind == kindEffect || n.kind == kindTracker
}

func (n *node) removeObserver(o *node) {
	if i := slices.Index(n.observers, o); i >= 0 {
		n.observers = slices.Delete(n.observers, i, i+1)
	}
}

func (n *node) hasSource(s *node) bool {
	return slices.Contains(n.sources, s)
}

// Stats counts graph activity since creation or the last ResetStats.
type Stats struct {
	Writes        uint64 // value-changing cell writes
	Notifications uint64 // clean-to-stale transitions of computations
	Recomputes    uint64 // computation bodies executed
	EffectRuns    uint64 // effect bodies and tracker invalidations executed
}

// Graph owns the run stack, batch depth and pending effect queue.
type Graph struct {
	stack      []*node
	queue      []*node
	staged     []func() // commits of cells written in the open batch
	batchDepth int
	flushing   bool
	nextID     uint64
	maxRounds  int

	root    *Scope
	logger  *slog.Logger
	onError func(error)
	stats   Stats
}

// NewGraph creates an empty graph with its root scope.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{maxRounds: defaultMaxFlushRounds}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = defaultLogger()
	}
	g.root = &Scope{graph: g}
	return g
}

// Root returns the graph's root scope. It lives as long as the graph.
func (g *Graph) Root() *Scope {
	return g.root
}

// Stats returns a snapshot of the activity counters.
func (g *Graph) Stats() Stats {
	return g.stats
}

// ResetStats zeroes the activity counters.
func (g *Graph) ResetStats() {
	g.stats = Stats{}
}

// Batching reports whether a Batch is open.
func (g *Graph) Batching() bool {
	return g.batchDepth > 0
}

// Batch runs fn with writes staged and effects deferred until the outermost
// batch returns. Then every staged write is applied and dependents see them
// together, so several writes produce one coherent downstream update.
//
// Nested Batch calls are supported. If fn panics, the batch depth is
// restored and staged writes are applied before the panic propagates;
// pending effects stay queued.
func (g *Graph) Batch(fn func()) {
	g.batchDepth++
	func() {
		defer func() {
			g.batchDepth--
			if g.batchDepth == 0 {
				g.commit()
			}
		}()
		fn()
	}()
	g.flush()
}

// commit applies the writes staged by the outermost batch.
func (g *Graph) commit() {
	staged := g.staged
	g.staged = nil
	for _, apply := range staged {
		apply()
	}
}

// Untrack runs fn without subscribing the running computation to anything
// fn reads.
func (g *Graph) Untrack(fn func()) {
	// A nil frame hides the caller from track while keeping the stack depth,
	// so nested flush suppression and cycle checks still see it.
	g.stack = append(g.stack, nil)
	defer func() { g.stack = g.stack[:len(g.stack)-1] }()
	fn()
}

// running returns the computation on top of the run stack, if any.
func (g *Graph) running() *node {
	if len(g.stack) == 0 {
		return nil
	}
	return g.stack[len(g.stack)-1]
}

// track subscribes the running computation to dep.
func (g *Graph) track(dep *node) {
	if dep.disposed {
		return
	}
	top := g.running()
	if top == nil || top.hasSource(dep) {
		return
	}
	top.sources = append(top.sources, dep)
	dep.observers = append(dep.observers, top)
}

// checkCycle rejects reading a computation that is already on the stack.
func (g *Graph) checkCycle(n *node) {
	if n.running {
		g.raise(ErrCycle, n)
	}
}

// checkWrite rejects writing a cell that a running computation already read
// in its current run. Running computations only hold current-run
// subscriptions, so any running observer has read the cell.
func (g *Graph) checkWrite(cell *node) {
	if cell.disposed {
		g.raise(ErrDisposed, cell)
	}
	for _, o := range cell.observers {
		if o.running {
			g.raise(ErrWriteDuringRead, cell)
		}
	}
}

// notify marks the direct observers of a changed node dirty.
func (g *Graph) notify(changed *node) {
	for _, o := range slices.Clone(changed.observers) {
		g.mark(o, stateDirty)
	}
}

// mark raises o to at least st, queueing reactions and propagating "check"
// to transitive observers the first time o leaves the clean state.
func (g *Graph) mark(o *node, st nodeState) {
	if o.disposed {
		return
	}
	if o.isReaction() && !o.running {
		g.enqueue(o)
	}
	if o.state >= st {
		return
	}
	prev := o.state
	o.state = st
	if prev == stateClean {
		g.stats.Notifications++
		for _, next := range o.observers {
			g.mark(next, stateCheck)
		}
	}
}

func (g *Graph) enqueue(n *node) {
	if n.queued {
		return
	}
	n.queued = true
	g.queue = append(g.queue, n)
}

// refresh brings a computation up to date, pulling stale sources first so
// it re-runs only if one of them actually produced a new value.
func (g *Graph) refresh(n *node) {
	if n.disposed || n.state == stateClean {
		return
	}
	if n.state == stateCheck {
		for _, src := range slices.Clone(n.sources) {
			if src.kind == kindMemo {
				g.refresh(src)
			}
			if n.state == stateDirty {
				break
			}
		}
	}
	if n.state == stateDirty {
		g.execute(n)
		return
	}
	n.state = stateClean
}

// execute runs a computation body with fresh subscriptions. If the body
// aborts, the node stays dirty so the next read or flush retries it.
func (g *Graph) execute(n *node) {
	for _, src := range n.sources {
		src.removeObserver(n)
	}
	n.sources = nil
	n.state = stateClean
	n.running = true
	g.stack = append(g.stack, n)

	completed := false
	defer func() {
		g.stack = g.stack[:len(g.stack)-1]
		n.running = false
		if !completed {
			n.state = stateDirty
		}
	}()

	g.stats.Recomputes++
	if n.isReaction() {
		g.stats.EffectRuns++
	}
	changed := n.run()
	completed = true

	// mark skips running reactions, so a reaction whose own writes reached
	// it through a memo is only flagged here and re-queued by runRound.
	if n.isReaction() && n.state != stateClean {
		n.requeue = true
	}

	if changed && n.kind == kindMemo {
		g.notify(n)
	}
}

// flush drains queued effects and trackers in creation order. It is a no-op
// while a batch is open, a computation is running, or a flush is underway;
// the outer caller drains the queue instead.
func (g *Graph) flush() {
	if g.batchDepth > 0 || g.flushing || len(g.stack) > 0 || len(g.queue) == 0 {
		return
	}
	g.flushing = true
	defer func() { g.flushing = false }()

	for round := 0; len(g.queue) > 0; round++ {
		if round >= g.maxRounds {
			pending := g.queue
			g.queue = nil
			for _, n := range pending {
				n.queued = false
			}
			g.report(&GraphError{Err: ErrRunaway, Node: pending[0].String()})
			return
		}

		batch := g.queue
		g.queue = nil
		slices.SortFunc(batch, func(a, b *node) int {
			return cmp.Compare(a.id, b.id)
		})
		g.logger.Debug("reactive: flush", "round", round, "reactions", len(batch))
		g.runRound(batch)
	}
}

// runRound refreshes each reaction in order. A reaction stays marked as
// queued while it refreshes so memos it pulls cannot queue it again. A
// non-graph panic from user code propagates, but the reactions not yet run
// are put back in the queue.
func (g *Graph) runRound(batch []*node) {
	i := 0
	defer func() {
		if i < len(batch) {
			batch[i].queued = false
			g.queue = append(slices.Clone(batch[i+1:]), g.queue...)
		}
	}()
	for ; i < len(batch); i++ {
		n := batch[i]
		if !n.disposed {
			if err := Catch(func() { g.refresh(n) }); err != nil {
				g.report(err)
			}
		}
		n.queued = false
		if n.requeue {
			n.requeue = false
			if !n.disposed {
				g.enqueue(n)
			}
		}
	}
}

func (g *Graph) report(err error) {
	g.logger.Error("reactive: structural error", "err", err)
	if g.onError != nil {
		g.onError(err)
	}
}

// dispose unlinks n from the graph in both directions.
func (g *Graph) dispose(n *node) {
	if n.disposed {
		return
	}
	n.disposed = true
	for _, src := range n.sources {
		src.removeObserver(n)
	}
	n.sources = nil
	for _, o := range n.observers {
		if i := slices.Index(o.sources, n); i >= 0 {
			o.sources = slices.Delete(o.sources, i, i+1)
		}
	}
	n.observers = nil
}
