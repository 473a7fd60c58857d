// Package tui renders terminal user interfaces from reactive state.
//
// Three parts make up a frame:
//
//   - A reactive Graph of cells, memos and effects holds application state.
//   - A ViewFunc builds a Tree of boxes and text from that state; Compute
//     lays it out with a flexbox subset.
//   - Serialize paints the laid-out tree into styled lines, and Compose turns
//     them into the bytes that replace the previous frame.
//
// A Renderer runs one pass at a time and remembers what the view read, so it
// knows when the next pass is needed. A Loop owns the graph, applies writes
// from other goroutines in batches, and draws at most once per frame.
//
// Inline mode keeps terminal history: Static regions and PrintAbove text are
// printed once above a live viewport that is redrawn in place.
package tui
