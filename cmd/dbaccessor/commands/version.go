package commands

import (
	"context"
	"fmt"

	"github.com/satishbabariya/dbaccessor/internal/ui"
	"github.com/satishbabariya/dbaccessor/internal/version"
	"github.com/satishbabariya/dbaccessor/pkg/client"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(ui.Out, version.Get().FullString())
			return nil
		},
	}
}

// NewEngineCommand creates the engine command.
func NewEngineCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "engine",
		Short: "Print the database engine version and check it is supported",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEngine(cmd.Context(), app)
		},
	}
}

func runEngine(ctx context.Context, app *App) error {
	return app.withAccessor(ctx, func(acc *client.Accessor) error {
		v, err := acc.EngineVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(ui.Out, "%s %s\n", acc.Dialect(), v)
		if err := version.CheckEngine(acc.Dialect(), v); err != nil {
			return err
		}
		ui.PrintSuccess("Engine supported")
		return nil
	})
}
