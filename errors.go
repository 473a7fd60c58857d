package tui

import "errors"

var (
	// ErrInvalidRoot reports a view that returned a node outside its tree.
	ErrInvalidRoot = errors.New("tui: view returned an invalid root node")
	// ErrQueueFull reports a Commit that found the queue at capacity.
	ErrQueueFull = errors.New("tui: commit queue is full")
	// ErrLoopStopped reports a Commit after Run returned.
	ErrLoopStopped = errors.New("tui: loop stopped")
	// ErrLoopRunning reports a second concurrent Run.
	ErrLoopRunning = errors.New("tui: loop already running")
)
