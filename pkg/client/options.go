package client

import (
	"log/slog"
	"time"

	"github.com/satishbabariya/dbaccessor/internal/core/gateway"
	"github.com/spf13/afero"
)

// Options is the construction-time configuration of an Accessor.
type Options struct {
	// CreateIfMissing lets Open create a missing SQLite file. When false a
	// missing file fails with ErrDatabaseNotFound.
	CreateIfMissing bool

	// Verbose reports engine failures to the observer before they are
	// returned.
	Verbose bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		CreateIfMissing: true,
		Verbose:         false,
	}
}

// Observer is notified of engine failures when Options.Verbose is set.
type Observer = gateway.Observer

// ObserverFunc adapts a function to Observer.
type ObserverFunc = gateway.ObserverFunc

type settings struct {
	logger         *slog.Logger
	observer       Observer
	fs             afero.Fs
	connectTimeout time.Duration
}

// Option injects collaborators that do not belong in Options.
type Option func(*settings)

// WithLogger sets the logger used by the default verbose observer.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithObserver replaces the default verbose observer.
func WithObserver(o Observer) Option {
	return func(s *settings) {
		s.observer = o
	}
}

// WithFs sets the filesystem used to check for an existing SQLite file.
func WithFs(fs afero.Fs) Option {
	return func(s *settings) {
		s.fs = fs
	}
}

// WithConnectTimeout bounds the initial connection check.
func WithConnectTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.connectTimeout = d
	}
}
