package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/satishbabariya/dbaccessor/internal/core/schema"
	"github.com/satishbabariya/dbaccessor/internal/ui"
	"github.com/satishbabariya/dbaccessor/internal/watch"
	"github.com/satishbabariya/dbaccessor/pkg/client"
	"github.com/spf13/cobra"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand(app *App) *cobra.Command {
	var format string
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the schema again whenever the SQLite file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = app.cfg.Format
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, app, format, debounce)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json, yaml or markdown")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before reprinting")

	return cmd
}

func runWatch(ctx context.Context, app *App, name string, debounce time.Duration) error {
	format, err := schema.ParseFormat(name)
	if err != nil {
		return err
	}

	return app.withAccessor(ctx, func(acc *client.Accessor) error {
		if acc.Dialect() != client.SQLite {
			return fmt.Errorf("watch only supports sqlite databases, not %s", acc.Dialect())
		}

		w, err := watch.NewWatcher(sqliteFile(app.cfg.Database), debounce, func() error {
			snap, err := acc.Snapshot(ctx)
			if err != nil {
				return err
			}
			ui.PrintInfo("%s  %d tables", time.Now().Format(time.TimeOnly), snap.Len())
			return printSnapshot(snap, format, true)
		})
		if err != nil {
			return err
		}

		ui.PrintInfo("Watching %s (Ctrl+C to stop)", app.cfg.Database)
		return w.Run(ctx)
	})
}

// sqliteFile strips a file: scheme and query parameters from a DSN.
func sqliteFile(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	path, _, _ = strings.Cut(path, "?")
	return path
}
