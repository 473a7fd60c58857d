package tui

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/grindlemire/tuicore/internal/layout"
	"github.com/grindlemire/tuicore/internal/reactive"
)

// ViewFunc builds the render tree for one pass and returns its root. Every
// cell and memo it reads becomes a dependency of the next pass.
type ViewFunc func(t *Tree) NodeID

// Renderer turns the current graph state into terminal output. Each call to
// RenderPass builds a fresh tree, lays it out and serializes it; reads made
// by the view are tracked so that any later change marks the renderer
// dirty.
//
// RenderPass and PrintAbove may be called from different goroutines, but
// the view runs on the graph and must not race with writes to it. Loop
// arranges that.
type Renderer struct {
	mu      sync.Mutex
	graph   *reactive.Graph
	scope   *reactive.Scope
	tracker *reactive.Tracker
	view    ViewFunc
	opts    options

	dirty atomic.Bool

	// statics counts the children of each static region already printed.
	statics map[string]int
	printed []string
	state   ComposeState
	last    string
	passes  int
}

// NewRenderer creates a renderer for view on graph g. The renderer starts
// dirty so the first pass always runs.
func NewRenderer(g *reactive.Graph, view ViewFunc, opts ...Option) (*Renderer, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		graph:   g,
		scope:   g.Root().Child(),
		view:    view,
		opts:    o,
		statics: make(map[string]int),
	}
	r.tracker = reactive.NewTracker(r.scope, r.MarkDirty, reactive.WithName("render"))
	r.dirty.Store(true)
	return r, nil
}

// Graph returns the graph the view reads from.
func (r *Renderer) Graph() *reactive.Graph {
	return r.graph
}

// Mode returns the output mode.
func (r *Renderer) Mode() Mode {
	return r.opts.mode
}

// Dirty reports whether something the last pass read has changed since.
func (r *Renderer) Dirty() bool {
	return r.dirty.Load()
}

// MarkDirty forces the next frame tick to run a pass.
func (r *Renderer) MarkDirty() {
	r.dirty.Store(true)
}

// LastFrame returns the output of the last successful pass.
func (r *Renderer) LastFrame() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// PrintAbove queues text to be written into the scrollback above the
// viewport by the next pass. Escape sequences and control characters are
// removed. In fullscreen mode there is no scrollback and the text is
// dropped.
func (r *Renderer) PrintAbove(text string) {
	r.mu.Lock()
	r.printed = append(r.printed, text)
	r.mu.Unlock()
	r.MarkDirty()
}

// RenderPass runs one pass with the given capability snapshot and returns
// the bytes to write. On error nothing is committed: the previous frame
// stays current and queued scrollback stays queued.
func (r *Renderer) RenderPass(caps Capabilities) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dirty.Store(false)
	tree := NewTree(caps)
	root := NoNode
	if err := r.tracker.Track(func() { root = r.view(tree) }); err != nil {
		return "", r.fail(fmt.Errorf("render pass %d: %w", r.passes+1, err))
	}
	if !tree.valid(root) {
		return "", r.fail(fmt.Errorf("render pass %d: node %d: %w", r.passes+1, root, ErrInvalidRoot))
	}

	var out Output
	if r.opts.mode == ModeInline {
		for _, text := range r.printed {
			out.Scrollback = append(out.Scrollback, scrollbackLines(text, caps)...)
		}
	}
	statics := r.extractStatics(tree, root, caps, &out)

	avail := Size{Width: caps.Width, Height: caps.Height}
	if r.opts.mode == ModeInline {
		avail.Height = layout.Unbounded
	}
	geo := layout.Compute(tree, int(root), avail)
	out.Viewport = Serialize(tree, root, geo, caps)
	if r.opts.mode == ModeInline && caps.Height > 0 && len(out.Viewport) > caps.Height {
		out.Viewport = out.Viewport[:caps.Height]
	}

	frame, state := out.Compose(r.state, r.opts.mode)

	r.statics = statics
	r.printed = nil
	r.state = state
	r.last = frame
	r.passes++
	r.opts.logger.Debug("render pass",
		"pass", r.passes,
		"nodes", tree.Len(),
		"rows", len(out.Viewport),
		"scrollback", len(out.Scrollback),
		"sources", r.tracker.Sources(),
	)
	return frame, nil
}

func (r *Renderer) fail(err error) error {
	r.report("render pass failed", err)
	return err
}

// report logs err and hands it to the error handler.
func (r *Renderer) report(msg string, err error) {
	r.opts.logger.Error(msg, "err", err)
	if r.opts.onError != nil {
		r.opts.onError(err)
	}
}

// extractStatics serializes the children of static regions that earlier
// passes have not printed and returns the updated counts. Each new child is
// laid out on its own at the terminal width with unbounded height.
func (r *Renderer) extractStatics(tree *Tree, root NodeID, caps Capabilities, out *Output) map[string]int {
	next := make(map[string]int, len(r.statics))
	for k, v := range r.statics {
		next[k] = v
	}

	var walk func(id NodeID)
	walk = func(id NodeID) {
		if tree.Kind(id) == KindStatic {
			key := tree.nodes[id].key
			children := tree.ChildIDs(id)
			done := next[key]
			for _, ch := range children[min(done, len(children)):] {
				if r.opts.mode == ModeInline {
					geo := layout.Compute(tree, int(ch), Size{Width: caps.Width, Height: layout.Unbounded})
					out.Scrollback = append(out.Scrollback, Serialize(tree, ch, geo, caps)...)
				}
			}
			next[key] = max(done, len(children))
			return
		}
		for _, ch := range tree.ChildIDs(id) {
			walk(ch)
		}
	}
	walk(root)
	return next
}

// Begin returns the sequence that prepares the terminal for the first
// frame.
func (r *Renderer) Begin() string {
	return startSequence(r.opts.mode)
}

// End returns the sequence that leaves the terminal usable after the last
// frame.
func (r *Renderer) End() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return endSequence(r.opts.mode, r.state)
}

// Close stops tracking. The renderer never becomes dirty again.
func (r *Renderer) Close() {
	r.scope.Dispose()
}
