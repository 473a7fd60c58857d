//go:build unix

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"
)

// watchResize calls onResize after every SIGWINCH until ctx is done.
func watchResize(ctx context.Context, _ uintptr, onResize func()) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, unix.SIGWINCH)
	defer signal.Stop(sigs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigs:
			onResize()
		}
	}
}

// readKeys passes each input byte from fd to onKey until ctx is done or
// input ends. Reads are polled so that cancellation is noticed.
func readKeys(ctx context.Context, fd int, onKey func(byte)) error {
	buf := make([]byte, 64)
	for ctx.Err() == nil {
		ready, err := selectWithTimeout(fd, 100*time.Millisecond)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if !ready {
			continue
		}
		n, err := unix.Read(fd, buf)
		switch {
		case err == unix.EINTR || err == unix.EAGAIN:
			continue
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		case n == 0:
			return nil
		}
		for _, b := range buf[:n] {
			onKey(b)
		}
	}
	return nil
}

// selectWithTimeout reports whether fd is readable within timeout.
func selectWithTimeout(fd int, timeout time.Duration) (bool, error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)
	tv := unix.NsecToTimeval(timeout.Nanoseconds())

	n, err := unix.Select(fd+1, &readFds, nil, nil, &tv)
	if err != nil {
		// EINTR is expected when signals arrive
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
