//go:build !unix

package main

import (
	"context"
	"os"
	"time"

	tui "github.com/grindlemire/tuicore"
)

// watchResize polls the terminal size, since there is no SIGWINCH.
func watchResize(ctx context.Context, fd uintptr, onResize func()) error {
	w, h := tui.TerminalSize(fd)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if nw, nh := tui.TerminalSize(fd); nw != w || nh != h {
				w, h = nw, nh
				onResize()
			}
		}
	}
}

// readKeys passes each input byte to onKey until ctx is done or input
// ends. The blocking read goroutine is abandoned on cancellation.
func readKeys(ctx context.Context, _ int, onKey func(byte)) error {
	keys := make(chan byte)
	go func() {
		defer close(keys)
		buf := make([]byte, 64)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			for _, b := range buf[:n] {
				select {
				case keys <- b:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case b, ok := <-keys:
			if !ok {
				return nil
			}
			onKey(b)
		}
	}
}
