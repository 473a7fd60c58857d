// Package debug provides optional file-based debug logging.
//
// When the TUI_DEBUG environment variable is set to a file path, debug
// records are appended to that file as text slog records. Otherwise the
// logger discards everything, so callers never need to guard log calls.
package debug
