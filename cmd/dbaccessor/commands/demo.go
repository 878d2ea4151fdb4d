package commands

import (
	"context"

	"github.com/satishbabariya/dbaccessor/internal/ui"
	"github.com/satishbabariya/dbaccessor/pkg/client"
	"github.com/spf13/cobra"
)

const demoTable = "stocks"

var demoColumns = []client.ColumnDef{
	{Name: "id", Type: "integer primary key autoincrement not null"},
	{Name: "ticker", Type: "text unique"},
	{Name: "industry", Type: "text"},
	{Name: "beta", Type: "numeric"},
	{Name: "price", Type: "numeric"},
}

func demoRows() []client.Row {
	stock := func(ticker, industry string, beta float64, price int64) client.Row {
		return client.RowFromMap(map[string]interface{}{
			"ticker": ticker, "industry": industry, "beta": beta, "price": price,
		})
	}
	return []client.Row{
		stock("ibm", "technology", 1.1, 56),
		stock("dal", "transportation", 1.3, 34),
		stock("xom", "energy", 1.1, 56),
		stock("appl", "technology", 1.3, 34),
	}
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every operation on a stocks table",
		Long: `Create a stocks table in the configured database, then exercise index
management, batch insert, filtered reads, update and delete. Existing rows in
the stocks table are removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), app)
		},
	}
}

func runDemo(ctx context.Context, app *App) error {
	return app.withAccessor(ctx, func(acc *client.Accessor) error {
		ui.PrintHeader("dbaccessor demo", string(acc.Dialect())+" "+app.cfg.Database)
		const total = 8

		ui.PrintStep(1, total, "create table "+demoTable)
		if err := acc.CreateTable(ctx, demoTable, demoColumns); err != nil {
			return err
		}
		if err := showTable(ctx, acc); err != nil {
			return err
		}

		ui.PrintStep(2, total, "delete all rows")
		if _, err := acc.Delete(ctx, demoTable, nil); err != nil {
			return err
		}

		ui.PrintStep(3, total, "create and drop index on industry")
		name, err := acc.CreateIndex(ctx, demoTable, "industry")
		if err != nil {
			return err
		}
		if err := listIndexes(ctx, acc); err != nil {
			return err
		}
		if err := acc.DropIndex(ctx, demoTable, "industry"); err != nil {
			return err
		}
		ui.PrintInfo("dropped %s", name)
		if err := listIndexes(ctx, acc); err != nil {
			return err
		}

		ui.PrintStep(4, total, "insert 4 rows")
		if _, err := acc.Insert(ctx, demoTable, demoRows()); err != nil {
			return err
		}
		if err := showTable(ctx, acc); err != nil {
			return err
		}

		ui.PrintStep(5, total, "read where industry = 'technology'")
		tech, err := acc.Read(ctx, demoTable, client.ReadOptions{
			Where: []client.Predicate{client.Where("industry", client.Eq, "technology")},
		})
		if err != nil {
			return err
		}
		if err := printRows(nil, tech, false); err != nil {
			return err
		}

		ui.PrintStep(6, total, "update ibm: industry = 'finance', beta = 3.0")
		set := client.Row{}.Set("industry", "finance").Set("beta", 3.0)
		ibm := []client.Predicate{client.Where("ticker", client.Eq, "ibm")}
		if _, err := acc.Update(ctx, demoTable, set, ibm); err != nil {
			return err
		}
		if err := showTable(ctx, acc); err != nil {
			return err
		}

		ui.PrintStep(7, total, "delete ibm")
		if _, err := acc.Delete(ctx, demoTable, ibm); err != nil {
			return err
		}
		if err := showTable(ctx, acc); err != nil {
			return err
		}

		ui.PrintStep(8, total, "schema")
		snap, err := acc.Snapshot(ctx)
		if err != nil {
			return err
		}
		out, err := snap.JSON()
		if err != nil {
			return err
		}
		ui.PrintCodeBlock("schema", string(out))

		ui.PrintSuccess("Demo complete")
		return nil
	})
}

func showTable(ctx context.Context, acc *client.Accessor) error {
	rows, err := acc.Read(ctx, demoTable, client.ReadOptions{
		OrderBy: []client.OrderBy{{Column: "id", Direction: client.Asc}},
	})
	if err != nil {
		return err
	}
	return printRows(nil, rows, false)
}

func listIndexes(ctx context.Context, acc *client.Accessor) error {
	names, err := acc.Indexes(ctx)
	if err != nil {
		return err
	}
	ui.PrintInfo("indexes: %v", names)
	return nil
}
