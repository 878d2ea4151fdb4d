// Package watch re-runs a callback when a database file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/satishbabariya/dbaccessor/internal/debug"
)

// DefaultDebounce coalesces bursts of writes, such as a transaction commit
// touching both the database and its journal.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a database file and its journal files for changes.
type Watcher struct {
	file     string
	callback func() error
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// NewWatcher creates a watcher for file. The containing directory is watched
// because SQLite replaces and recreates journal files.
func NewWatcher(file string, debounce time.Duration, callback func() error) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	absPath, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	return &Watcher{
		file:     absPath,
		callback: callback,
		debounce: debounce,
		watcher:  watcher,
	}, nil
}

// Matches reports whether an event path belongs to the watched database:
// the file itself or its -journal, -wal and -shm companions.
func (w *Watcher) Matches(name string) bool {
	p, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	if p == w.file {
		return true
	}
	suffix, ok := strings.CutPrefix(p, w.file)
	if !ok {
		return false
	}
	switch suffix {
	case "-journal", "-wal", "-shm":
		return true
	}
	return false
}

// Run calls the callback once, then again after each debounced change,
// until ctx is done. Callback errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.callback(); err != nil {
		return fmt.Errorf("initial callback failed: %w", err)
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if w.Matches(event.Name) {
				timer.Reset(w.debounce)
				fire = timer.C
			}

		case <-fire:
			fire = nil
			if err := w.callback(); err != nil {
				debug.Error("watch callback failed", "file", w.file, "error", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			debug.Warn("watch error", "file", w.file, "error", err)

		case <-ctx.Done():
			timer.Stop()
			return nil
		}
	}
}
