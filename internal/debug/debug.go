package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "TUI_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  *slog.Logger
)

// Init opens path for appending and routes the package logger to it.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = newLogger(f)
	return nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Logger returns the package logger. The first call honours TUI_DEBUG;
// without it the returned logger discards all records.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		return logger
	}
	if path := os.Getenv(EnvVar); path != "" {
		if err := initLocked(path); err == nil {
			return logger
		}
	}
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return logger
}

// SetOutput routes the package logger to w. Used by tests and embedders
// that already own a sink.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

// Close closes the debug log file and resets the logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	Logger().Debug(fmt.Sprintf(format, args...))
}
