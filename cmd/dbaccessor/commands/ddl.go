package commands

import (
	"context"
	"fmt"

	"github.com/satishbabariya/dbaccessor/internal/ui"
	"github.com/satishbabariya/dbaccessor/pkg/client"
	"github.com/spf13/cobra"
)

// NewCreateTableCommand creates the create-table command.
func NewCreateTableCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create-table <table> <name:type>...",
		Short: "Create a table if it does not exist",
		Long: `Create a table if it does not exist. Types are passed to the engine as
written and may include constraints.

Example:
  dbaccessor create-table stocks "id:integer primary key autoincrement not null" \
    "ticker:text unique" industry:text beta:numeric price:numeric`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := parseColumnDefs(args[1:])
			if err != nil {
				return err
			}
			return runCreateTable(cmd.Context(), app, args[0], defs)
		},
	}
}

func runCreateTable(ctx context.Context, app *App, table string, defs []client.ColumnDef) error {
	return app.withAccessor(ctx, func(acc *client.Accessor) error {
		if err := acc.CreateTable(ctx, table, defs); err != nil {
			return err
		}
		ui.PrintSuccess("Created table %s", table)
		return nil
	})
}

// NewDropTableCommand creates the drop-table command.
func NewDropTableCommand(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "drop-table <table>",
		Short: "Drop a table if it exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDropTable(cmd.Context(), app, args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func runDropTable(ctx context.Context, app *App, table string, yes bool) error {
	ok, err := confirm(fmt.Sprintf("Drop table %s?", table), yes)
	if err != nil || !ok {
		return err
	}
	return app.withAccessor(ctx, func(acc *client.Accessor) error {
		if err := acc.DropTable(ctx, table); err != nil {
			return err
		}
		ui.PrintSuccess("Dropped table %s", table)
		return nil
	})
}

// NewCreateIndexCommand creates the create-index command.
func NewCreateIndexCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create-index <table> <column>",
		Short: "Create a unique index named <table>_<column>_index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateIndex(cmd.Context(), app, args[0], args[1])
		},
	}
}

func runCreateIndex(ctx context.Context, app *App, table, column string) error {
	return app.withAccessor(ctx, func(acc *client.Accessor) error {
		name, err := acc.CreateIndex(ctx, table, column)
		if err != nil {
			return err
		}
		ui.PrintSuccess("Created index %s", name)
		return nil
	})
}

// NewDropIndexCommand creates the drop-index command.
func NewDropIndexCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "drop-index <table> <column>",
		Short: "Drop the index created by create-index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDropIndex(cmd.Context(), app, args[0], args[1])
		},
	}
}

func runDropIndex(ctx context.Context, app *App, table, column string) error {
	return app.withAccessor(ctx, func(acc *client.Accessor) error {
		if err := acc.DropIndex(ctx, table, column); err != nil {
			return err
		}
		ui.PrintSuccess("Dropped index %s", client.IndexName(table, column))
		return nil
	})
}
