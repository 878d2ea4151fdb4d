// Package commands implements the dbaccessor CLI commands.
package commands

import (
	"context"
	"fmt"

	"github.com/satishbabariya/dbaccessor/internal/config"
	"github.com/satishbabariya/dbaccessor/internal/debug"
	"github.com/satishbabariya/dbaccessor/internal/version"
	"github.com/satishbabariya/dbaccessor/pkg/client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// App carries the resolved configuration to every command.
type App struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	app := &App{v: config.New()}

	rootCmd := &cobra.Command{
		Use:           "dbaccessor",
		Short:         "Inspect and edit relational databases table by table",
		Long:          "dbaccessor reads and writes rows, manages tables and indexes, and dumps the schema of SQLite, PostgreSQL and MySQL databases.",
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Database path or connection URL")
	flags.String("provider", "sqlite", "Database provider (sqlite, postgres, mysql)")
	flags.BoolP("verbose", "v", false, "Log failed statements to stderr")
	flags.Bool("create-if-missing", true, "Create the SQLite file when it does not exist")
	flags.StringVar(&app.configFile, "config", "", "Config file (default .dbaccessor.yaml)")

	_ = app.v.BindPFlag(config.KeyDatabase, flags.Lookup("db"))
	_ = app.v.BindPFlag(config.KeyProvider, flags.Lookup("provider"))
	_ = app.v.BindPFlag(config.KeyVerbose, flags.Lookup("verbose"))
	_ = app.v.BindPFlag(config.KeyCreateIfMissing, flags.Lookup("create-if-missing"))

	rootCmd.AddCommand(NewTablesCommand(app))
	rootCmd.AddCommand(NewIndexesCommand(app))
	rootCmd.AddCommand(NewDescribeCommand(app))
	rootCmd.AddCommand(NewSchemaCommand(app))
	rootCmd.AddCommand(NewReadCommand(app))
	rootCmd.AddCommand(NewInsertCommand(app))
	rootCmd.AddCommand(NewUpdateCommand(app))
	rootCmd.AddCommand(NewDeleteCommand(app))
	rootCmd.AddCommand(NewCreateTableCommand(app))
	rootCmd.AddCommand(NewDropTableCommand(app))
	rootCmd.AddCommand(NewCreateIndexCommand(app))
	rootCmd.AddCommand(NewDropIndexCommand(app))
	rootCmd.AddCommand(NewWatchCommand(app))
	rootCmd.AddCommand(NewDemoCommand(app))
	rootCmd.AddCommand(NewEngineCommand(app))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

func (a *App) load() error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	debug.Init(cfg.Verbose)
	if cfg.File != "" {
		debug.Debug("loaded config", "file", cfg.File)
	}
	return nil
}

// open connects using the resolved configuration.
func (a *App) open(ctx context.Context) (*client.Accessor, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	opts := client.Options{
		CreateIfMissing: a.cfg.CreateIfMissing,
		Verbose:         a.cfg.Verbose,
	}
	acc, err := client.Connect(ctx, a.cfg.Provider, a.cfg.Database, opts, client.WithLogger(debug.Logger()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	return acc, nil
}

// withAccessor opens a connection for the duration of fn.
func (a *App) withAccessor(ctx context.Context, fn func(*client.Accessor) error) error {
	acc, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer acc.Close()
	return fn(acc)
}
