package tui

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig calls fn with the reloaded config each time the file at path
// is written or replaced, until ctx is done. Load errors are passed to fn
// rather than ending the watch, so a half-saved file does not stop reloads.
//
// The parent directory is watched because editors commonly save by
// renaming a temporary file over the original.
func WatchConfig(ctx context.Context, path string, fn func(Config, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch config %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				fn(LoadConfig(path))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(Config{}, fmt.Errorf("watch config: %w", err))
		}
	}
}
