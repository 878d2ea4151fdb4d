package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/satishbabariya/dbaccessor/internal/core/schema"
	"github.com/satishbabariya/dbaccessor/internal/ui"
	"github.com/satishbabariya/dbaccessor/pkg/client"
	"github.com/spf13/cobra"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List user tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), app, (*client.Accessor).Tables, "tables")
		},
	}
}

// NewIndexesCommand creates the indexes command.
func NewIndexesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "List index names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), app, (*client.Accessor).Indexes, "indexes")
		},
	}
}

func runList(ctx context.Context, app *App, list func(*client.Accessor, context.Context) ([]string, error), what string) error {
	return app.withAccessor(ctx, func(acc *client.Accessor) error {
		names, err := list(acc, ctx)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			ui.PrintInfo("No %s.", what)
			return nil
		}
		ui.PrintList(names)
		return nil
	})
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(app *App) *cobra.Command {
	var showSQL bool

	cmd := &cobra.Command{
		Use:   "describe <table>",
		Short: "Show the columns of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd.Context(), app, args[0], showSQL)
		},
	}

	cmd.Flags().BoolVar(&showSQL, "sql", false, "Also print the CREATE statement and its field definitions")

	return cmd
}

func runDescribe(ctx context.Context, app *App, table string, showSQL bool) error {
	return app.withAccessor(ctx, func(acc *client.Accessor) error {
		cols, err := acc.Describe(ctx, table)
		if err != nil {
			return err
		}

		fmt.Fprintln(ui.Out, ui.Highlight(table))
		rows := make([][]string, len(cols))
		for i, c := range cols {
			rows[i] = []string{strconv.Itoa(c.Position), c.Name, c.Type}
		}
		if err := ui.PrintTable([]string{"#", "Column", "Type"}, rows); err != nil {
			return err
		}

		if !showSQL {
			return nil
		}
		defs, err := acc.CreateStatements(ctx)
		if err != nil {
			return err
		}
		for _, d := range defs {
			if d.Table != table {
				continue
			}
			ui.PrintCodeBlock(d.Table, d.SQL)
			ui.PrintList(schema.FieldDefinitions(d.SQL))
		}
		return nil
	})
}

// NewSchemaCommand creates the schema command.
func NewSchemaCommand(app *App) *cobra.Command {
	var format string
	var raw bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Dump every table and its columns",
		Long: `Dump the schema as table -> [(column, type), ...].

JSON output has sorted table names and 4-space indentation. Markdown is
rendered for the terminal unless --raw is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = app.cfg.Format
			}
			return runSchema(cmd.Context(), app, format, raw)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json, yaml or markdown")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print markdown without terminal rendering")

	return cmd
}

func runSchema(ctx context.Context, app *App, name string, raw bool) error {
	format, err := schema.ParseFormat(name)
	if err != nil {
		return err
	}
	return app.withAccessor(ctx, func(acc *client.Accessor) error {
		snap, err := acc.Snapshot(ctx)
		if err != nil {
			return err
		}
		return printSnapshot(snap, format, raw)
	})
}

func printSnapshot(snap *client.Snapshot, format schema.Format, raw bool) error {
	if format == schema.FormatMarkdown && !raw {
		return ui.PrintMarkdown(snap.Markdown())
	}
	out, err := snap.Dump(format)
	if err != nil {
		return err
	}
	fmt.Fprintln(ui.Out, string(out))
	return nil
}
