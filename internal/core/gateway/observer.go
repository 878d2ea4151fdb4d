package gateway

import (
	"context"
	"log/slog"

	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
)

// Observer is notified of every engine failure before it is returned to the
// caller. Observers must not retain or modify the error.
type Observer interface {
	Failed(ctx context.Context, err *dberr.EngineError)
}

// NopObserver ignores failures.
type NopObserver struct{}

// Failed implements Observer.
func (NopObserver) Failed(context.Context, *dberr.EngineError) {}

// LogObserver writes failures to a structured logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an observer logging through logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

// Failed implements Observer.
func (o *LogObserver) Failed(ctx context.Context, err *dberr.EngineError) {
	o.logger.ErrorContext(ctx, "statement failed",
		"op", err.Op,
		"subkind", string(err.Subkind),
		"sql", err.SQL,
		"error", err.Cause,
	)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, err *dberr.EngineError)

// Failed implements Observer.
func (f ObserverFunc) Failed(ctx context.Context, err *dberr.EngineError) {
	f(ctx, err)
}
