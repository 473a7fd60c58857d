package tui

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/grindlemire/tuicore/internal/reactive"
)

// CapsFunc returns the current capabilities. Loop calls it once per pass.
type CapsFunc func() Capabilities

// Loop owns the graph on behalf of other goroutines. It applies queued
// commits in batches and runs at most one render pass per frame, only when
// the renderer is dirty. Writes that land while a pass is pending are
// folded into it.
type Loop struct {
	r     *Renderer
	out   io.Writer
	caps  CapsFunc
	opts  options
	queue chan func()

	resized atomic.Bool
	running atomic.Bool
	done    chan struct{}
}

// NewLoop creates a loop that writes frames from r to out.
func NewLoop(r *Renderer, out io.Writer, caps CapsFunc, opts ...Option) (*Loop, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Loop{
		r:     r,
		out:   out,
		caps:  caps,
		opts:  o,
		queue: make(chan func(), o.queueSize),
		done:  make(chan struct{}),
	}, nil
}

// Run drives the loop until ctx is done. The first frame is drawn
// immediately. Failed passes are reported through the renderer and the
// loop keeps going; a failed write ends it.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer close(l.done)

	if _, err := io.WriteString(l.out, l.r.Begin()); err != nil {
		return fmt.Errorf("loop: start: %w", err)
	}
	defer func() {
		_, _ = io.WriteString(l.out, l.r.End())
	}()

	if err := l.pass(); err != nil {
		return err
	}

	ticker := time.NewTicker(l.opts.frameDuration)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.queue:
			l.drain(fn)
		case <-ticker.C:
			if l.resized.Swap(false) || l.r.Dirty() {
				if err := l.pass(); err != nil {
					return err
				}
			}
		}
	}
}

// drain applies fn and every other queued commit in one batch, so effects
// see all of them at once.
func (l *Loop) drain(fn func()) {
	l.r.Graph().Batch(func() {
		l.apply(fn)
		for {
			select {
			case next := <-l.queue:
				l.apply(next)
			default:
				return
			}
		}
	})
}

// apply runs one commit. A graph error aborts that commit only; it is
// reported through the renderer and the loop keeps the last frame.
func (l *Loop) apply(fn func()) {
	if err := reactive.Catch(fn); err != nil {
		l.r.report("commit failed", fmt.Errorf("loop: commit: %w", err))
	}
}

func (l *Loop) pass() error {
	start := time.Now()
	frame, err := l.r.RenderPass(l.caps())
	if err != nil {
		// Already reported by the renderer; the previous frame stays up.
		return nil
	}
	if _, err := io.WriteString(l.out, frame); err != nil {
		return fmt.Errorf("loop: write frame: %w", err)
	}
	l.opts.logger.Debug("frame written", "bytes", len(frame), "elapsed", time.Since(start))
	return nil
}

// Commit queues fn to run on the loop's goroutine, where it may read and
// write cells. Safe to call from any goroutine.
func (l *Loop) Commit(fn func()) error {
	select {
	case <-l.done:
		return ErrLoopStopped
	default:
	}
	select {
	case l.queue <- fn:
		return nil
	default:
		return ErrQueueFull
	}
}

// Resize forces a pass on the next frame, even if nothing is dirty.
func (l *Loop) Resize() {
	l.resized.Store(true)
}
