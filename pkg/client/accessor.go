// Package client is the public data-access API: parameterized CRUD and DDL
// over a single database connection, plus schema introspection and
// validation.
//
// An Accessor owns one connection and is not safe for concurrent use. Every
// call runs in its own transaction.
package client

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/satishbabariya/dbaccessor/internal/adapters/database"
	"github.com/satishbabariya/dbaccessor/internal/adapters/database/mysql"
	"github.com/satishbabariya/dbaccessor/internal/adapters/database/postgres"
	"github.com/satishbabariya/dbaccessor/internal/adapters/database/sqlite"
	"github.com/satishbabariya/dbaccessor/internal/core/gateway"
	idomain "github.com/satishbabariya/dbaccessor/internal/core/introspection/domain"
	mysqlintrospect "github.com/satishbabariya/dbaccessor/internal/core/introspection/mysql"
	pgintrospect "github.com/satishbabariya/dbaccessor/internal/core/introspection/postgres"
	sqliteintrospect "github.com/satishbabariya/dbaccessor/internal/core/introspection/sqlite"
	"github.com/satishbabariya/dbaccessor/internal/core/query/compiler"
	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
	"github.com/satishbabariya/dbaccessor/internal/debug"
)

// Accessor is the data-access facade over one connection.
type Accessor struct {
	adapter    database.Adapter
	gateway    *gateway.Gateway
	compiler   *compiler.SQLCompiler
	introspect idomain.Introspector
}

// Open opens the SQLite database at path.
func Open(ctx context.Context, path string, opts Options, extra ...Option) (*Accessor, error) {
	return Connect(ctx, string(domain.SQLite), path, opts, extra...)
}

// Connect opens a connection for provider ("sqlite", "postgres" or "mysql").
// dsn is a file path for SQLite.
func Connect(ctx context.Context, provider, dsn string, opts Options, extra ...Option) (*Accessor, error) {
	s := &settings{}
	for _, opt := range extra {
		opt(s)
	}

	cfg := database.Config{
		URL:             dsn,
		CreateIfMissing: opts.CreateIfMissing,
		ConnectTimeout:  s.connectTimeout,
		Fs:              s.fs,
	}

	adapter, err := newAdapter(provider, cfg)
	if err != nil {
		return nil, err
	}
	if err := adapter.Connect(ctx); err != nil {
		return nil, err
	}

	var gwOpts []gateway.Option
	if opts.Verbose {
		gwOpts = append(gwOpts, gateway.WithObserver(s.verboseObserver()))
	}
	gw := gateway.New(adapter.DB(), adapter.Classify, gwOpts...)

	debug.Debug("connected", "provider", adapter.Dialect(), "verbose", opts.Verbose)

	return &Accessor{
		adapter:    adapter,
		gateway:    gw,
		compiler:   compiler.NewSQLCompiler(adapter.Dialect()),
		introspect: newIntrospector(adapter.Dialect(), gw),
	}, nil
}

func (s *settings) verboseObserver() Observer {
	if s.observer != nil {
		return s.observer
	}
	logger := s.logger
	if logger == nil {
		logger = debug.New(os.Stderr, true)
	}
	return gateway.NewLogObserver(logger)
}

func newAdapter(provider string, cfg database.Config) (database.Adapter, error) {
	switch strings.ToLower(provider) {
	case "", "sqlite", "sqlite3", "file":
		return sqlite.NewSQLiteAdapter(cfg), nil
	case "postgres", "postgresql":
		return postgres.NewPostgresAdapter(cfg), nil
	case "mysql":
		return mysql.NewMySQLAdapter(cfg), nil
	default:
		return nil, &ConnectionError{Target: provider, Cause: fmt.Errorf("unsupported provider %q", provider)}
	}
}

func newIntrospector(d domain.Dialect, q idomain.Querier) idomain.Introspector {
	switch d {
	case domain.PostgreSQL:
		return pgintrospect.NewIntrospector(q)
	case domain.MySQL:
		return mysqlintrospect.NewIntrospector(q)
	default:
		return sqliteintrospect.NewIntrospector(q)
	}
}

// Dialect returns the SQL dialect of the connection.
func (a *Accessor) Dialect() Dialect {
	return a.adapter.Dialect()
}

// Close releases the connection. Calling Close more than once is a no-op.
func (a *Accessor) Close() error {
	return a.adapter.Disconnect(context.Background())
}
