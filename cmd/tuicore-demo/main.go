// Command tuicore-demo runs a simulated job queue in the terminal.
//
// Running jobs are redrawn in place below the cursor; finished jobs are
// printed once above them and stay in the terminal's history.
//
// Usage:
//
//	tuicore-demo [-config tui.toml] [-fullscreen] [-log debug.log]
//
// Keys: a adds a job, p pauses, q or Ctrl-C quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	tui "github.com/grindlemire/tuicore"
	"github.com/grindlemire/tuicore/internal/debug"
)

const usage = `tuicore-demo - simulated job queue

Usage:
  tuicore-demo [options]

Options:
  -config path   TOML config file, reloaded when it changes
  -fullscreen    draw on the alternate screen
  -log path      append debug records to path

Keys:
  a   add a job
  p   pause or resume
  q   quit
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := flag.NewFlagSet("tuicore-demo", flag.ExitOnError)
	flags.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	configPath := flags.String("config", "", "")
	fullscreen := flags.Bool("fullscreen", false, "")
	logPath := flags.String("log", "", "")
	_ = flags.Parse(os.Args[1:])

	if *logPath != "" {
		if err := debug.Init(*logPath); err != nil {
			return err
		}
		defer debug.Close()
	}
	logger := debug.Logger()

	cfg := tui.DefaultConfig()
	if *configPath != "" {
		c, err := tui.LoadConfig(*configPath)
		switch {
		case err == nil:
			cfg = c
		case errors.Is(err, os.ErrNotExist):
			logger.Info("config not found, using defaults", "path", *configPath)
		default:
			return err
		}
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if *fullscreen {
		opts = append(opts, tui.WithFullscreen())
	}
	opts = append(opts, tui.WithLogger(logger))

	fd := os.Stdout.Fd()
	var caps atomic.Pointer[tui.Capabilities]
	detected := tui.DetectCapabilities(os.Stdout)
	applied := cfg.Apply(detected)
	caps.Store(&applied)
	logger.Info("terminal", "caps", applied.String())

	a := newApp(tui.NewGraph(tui.WithGraphLogger(logger)), cfg)
	r, err := tui.NewRenderer(a.graph, a.view, opts...)
	if err != nil {
		return err
	}
	defer r.Close()
	loop, err := tui.NewLoop(r, os.Stdout, func() tui.Capabilities { return *caps.Load() }, opts...)
	if err != nil {
		return err
	}

	in := int(os.Stdin.Fd())
	if term.IsTerminal(in) {
		state, err := term.MakeRaw(in)
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		defer term.Restore(in, state)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	ctx, quit := context.WithCancel(ctx)
	defer quit()

	g.Go(func() error {
		return loop.Run(ctx)
	})

	g.Go(func() error {
		return watchResize(ctx, fd, func() {
			next := *caps.Load()
			next.Width, next.Height = tui.TerminalSize(fd)
			caps.Store(&next)
			loop.Resize()
		})
	})

	if *configPath != "" {
		g.Go(func() error {
			return tui.WatchConfig(ctx, *configPath, func(c tui.Config, err error) {
				if err != nil {
					logger.Warn("config reload failed", "err", err)
					return
				}
				next := c.Apply(detected)
				next.Width, next.Height = caps.Load().Width, caps.Load().Height
				caps.Store(&next)
				if err := loop.Commit(func() { a.config.Set(c) }); err != nil {
					logger.Warn("config reload dropped", "err", err)
				}
				loop.Resize()
			})
		})
	}

	g.Go(func() error {
		ticker := time.NewTicker(150 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if err := loop.Commit(a.step); err != nil && !errors.Is(err, tui.ErrQueueFull) {
					return nil
				}
			}
		}
	})

	g.Go(func() error {
		return readKeys(ctx, in, func(b byte) {
			switch b {
			case 'q', 3: // Ctrl-C arrives as a byte in raw mode
				quit()
			case 'a':
				_ = loop.Commit(a.addJob)
			case 'p':
				_ = loop.Commit(a.togglePause)
			}
		})
	})

	return g.Wait()
}
