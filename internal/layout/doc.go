// Package layout implements the flexbox subset used to place render nodes on
// a character grid.
//
// Nodes are addressed by index into the caller's arena through the [Tree]
// interface; [Compute] is a pure function of the tree and the available
// size and returns a [Geometry] holding one [Box] per node. All arithmetic is
// in whole cells: fractional flex shares are floored and the leftover cells
// are handed out one at a time to the earliest flexible children.
//
// Supported: row/column direction, justify and align modes, gap, margin,
// padding, one-cell borders, fixed/percent/auto sizes with min/max clamps,
// grow and shrink, absolute positioning against the parent's padding box,
// Display none and Overflow hidden.
package layout
