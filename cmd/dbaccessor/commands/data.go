package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/satishbabariya/dbaccessor/internal/core/query/parser"
	"github.com/satishbabariya/dbaccessor/internal/ui"
	"github.com/satishbabariya/dbaccessor/pkg/client"
	"github.com/spf13/cobra"
)

// NewReadCommand creates the read command.
func NewReadCommand(app *App) *cobra.Command {
	var columns, where, order string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "read <table>",
		Short: "Read rows from a table",
		Long: `Read rows from a table.

Examples:
  dbaccessor read stocks --where "industry = 'technology'" --order "price DESC"
  dbaccessor read stocks --columns ticker,price --where "beta >= 1.2 AND price < 50"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd.Context(), app, args[0], columns, where, order, asJSON)
		},
	}

	cmd.Flags().StringVar(&columns, "columns", "", "Comma separated columns (default all)")
	cmd.Flags().StringVarP(&where, "where", "w", "", "Predicates: col op value [AND ...]")
	cmd.Flags().StringVarP(&order, "order", "o", "", "Ordering: col [ASC|DESC], ...")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print rows as JSON")

	return cmd
}

func runRead(ctx context.Context, app *App, table, columns, where, order string, asJSON bool) error {
	preds, err := parser.ParseWhere(where)
	if err != nil {
		return err
	}
	orderBy, err := parser.ParseOrder(order)
	if err != nil {
		return err
	}
	opts := client.ReadOptions{
		Columns: splitColumns(columns),
		Where:   preds,
		OrderBy: orderBy,
	}

	return app.withAccessor(ctx, func(acc *client.Accessor) error {
		rows, err := acc.Read(ctx, table, opts)
		if err != nil {
			return err
		}
		return printRows(opts.Columns, rows, asJSON)
	})
}

// NewInsertCommand creates the insert command.
func NewInsertCommand(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "insert <table>",
		Short: "Insert rows from a JSON array",
		Long: `Insert rows in one transaction. Every object must have the same keys.

Example:
  echo '[{"ticker":"ibm","price":56}]' | dbaccessor insert stocks --file -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readRowsFile(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runInsert(cmd.Context(), app, args[0], rows)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON file with rows, or - for stdin")

	return cmd
}

func runInsert(ctx context.Context, app *App, table string, rows []client.Row) error {
	return app.withAccessor(ctx, func(acc *client.Accessor) error {
		res, err := acc.Insert(ctx, table, rows)
		if err != nil {
			return err
		}
		ui.PrintSuccess("Inserted %d rows into %s", res.RowsAffected, table)
		return nil
	})
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(app *App) *cobra.Command {
	var set, where string

	cmd := &cobra.Command{
		Use:   "update <table>",
		Short: "Update matching rows",
		Long: `Update matching rows. Without --where every row is updated.

Example:
  dbaccessor update stocks --set "industry = 'finance', beta = 3.0" --where "ticker = 'ibm'"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd.Context(), app, args[0], set, where)
		},
	}

	cmd.Flags().StringVarP(&set, "set", "s", "", "Assignments: col = value, ...")
	cmd.Flags().StringVarP(&where, "where", "w", "", "Predicates: col op value [AND ...]")
	_ = cmd.MarkFlagRequired("set")

	return cmd
}

func runUpdate(ctx context.Context, app *App, table, set, where string) error {
	row, err := parser.ParseSet(set)
	if err != nil {
		return err
	}
	preds, err := parser.ParseWhere(where)
	if err != nil {
		return err
	}

	return app.withAccessor(ctx, func(acc *client.Accessor) error {
		res, err := acc.Update(ctx, table, row, preds)
		if err != nil {
			return err
		}
		ui.PrintSuccess("Updated %d rows in %s", res.RowsAffected, table)
		return nil
	})
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(app *App) *cobra.Command {
	var where string
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <table>",
		Short: "Delete matching rows",
		Long: `Delete matching rows. Without --where every row is deleted, after
confirmation unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.Context(), app, args[0], where, yes)
		},
	}

	cmd.Flags().StringVarP(&where, "where", "w", "", "Predicates: col op value [AND ...]")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func runDelete(ctx context.Context, app *App, table, where string, yes bool) error {
	preds, err := parser.ParseWhere(where)
	if err != nil {
		return err
	}

	if len(preds) == 0 {
		ok, err := confirm(fmt.Sprintf("Delete every row in %s?", table), yes)
		if err != nil || !ok {
			return err
		}
	}

	return app.withAccessor(ctx, func(acc *client.Accessor) error {
		res, err := acc.Delete(ctx, table, preds)
		if err != nil {
			return err
		}
		ui.PrintSuccess("Deleted %d rows from %s", res.RowsAffected, table)
		return nil
	})
}

// confirm asks before a destructive action. Without a terminal the action
// is refused unless yes is set.
func confirm(message string, yes bool) (bool, error) {
	if !yes && !stdinIsTerminal() {
		return false, fmt.Errorf("%s Pass --yes to confirm", message)
	}
	ok, err := ui.Confirm(message, yes)
	if err != nil {
		return false, err
	}
	if !ok {
		ui.PrintWarning("Aborted")
	}
	return ok, nil
}

// stdinIsTerminal reports whether a confirmation prompt can be shown.
func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
