// Package reactive implements the dependency-tracking state graph that drives
// rendering.
//
// A Graph holds Cells (mutable values), Memos (derived values), Effects
// (side effects re-run after their inputs change) and Trackers (computations
// that only report invalidation, used by the render scheduler). Reading a
// cell or memo while a computation runs subscribes that computation to it.
// Each computation re-collects its sources on every run.
//
// Propagation is push-pull: a write marks direct observers dirty and their
// transitive observers "check"; memos re-run lazily when read, and only when
// one of their sources produced a different value. Effects and trackers are
// flushed after the outermost Batch returns, in creation order, so they
// never observe a partially applied batch.
//
// The running-computation stack is owned by each Graph, so independent
// graphs never see each other's reads. A Graph is not safe for concurrent
// use; route writes from other goroutines through the owner's event loop.
//
// Example:
//
//	g := reactive.NewGraph()
//	first := reactive.NewCell(g.Root(), "Ada")
//	last := reactive.NewCell(g.Root(), "Lovelace")
//	full := reactive.NewMemo(g.Root(), func() string {
//	    return first.Get() + " " + last.Get()
//	})
//	reactive.NewEffect(g.Root(), func() { fmt.Println(full.Get()) })
//	g.Batch(func() {
//	    first.Set("Grace")
//	    last.Set("Hopper")
//	}) // prints "Grace Hopper" once
package reactive
