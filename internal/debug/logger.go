// Package debug provides debug logging functionality using log/slog
package debug

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	// logger is the process-wide logger used by the CLI
	logger = New(os.Stderr, false)
	// mu protects the logger
	mu sync.RWMutex
)

// New returns a text logger writing to w. When verbose is false every record
// is dropped.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelDebug
	if !verbose {
		// Higher than any level actually used.
		level = slog.LevelError + 1
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Init replaces the global logger. If enable is true, records at debug level
// and above are written to os.Stderr.
func Init(enable bool) {
	mu.Lock()
	defer mu.Unlock()

	logger = New(os.Stderr, enable)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}

// Logger returns the underlying slog.Logger instance
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
