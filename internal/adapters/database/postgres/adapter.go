// Package postgres implements PostgreSQL database adapter.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"net/url"

	"github.com/lib/pq"
	"github.com/satishbabariya/dbaccessor/internal/adapters/database"
	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
)

// PostgresAdapter implements the database.Adapter interface for PostgreSQL.
type PostgresAdapter struct {
	db     *sql.DB
	config database.Config
}

// NewPostgresAdapter creates a new PostgreSQL adapter.
func NewPostgresAdapter(config database.Config) *PostgresAdapter {
	return &PostgresAdapter{
		config: config,
	}
}

// Connect establishes a connection to the PostgreSQL database.
func (a *PostgresAdapter) Connect(ctx context.Context) error {
	db, err := database.Open(ctx, "postgres", a.config, Redact(a.config.URL))
	if err != nil {
		return err
	}

	a.db = db
	return nil
}

// Disconnect closes the database connection.
func (a *PostgresAdapter) Disconnect(ctx context.Context) error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// DB returns the connection handle.
func (a *PostgresAdapter) DB() *sql.DB {
	return a.db
}

// Dialect returns the SQL dialect.
func (a *PostgresAdapter) Dialect() domain.Dialect {
	return domain.PostgreSQL
}

// Classify maps SQLSTATE classes to subkinds.
func (a *PostgresAdapter) Classify(err error) dberr.Subkind {
	return Classify(err)
}

// Classify maps SQLSTATE classes to subkinds.
func Classify(err error) dberr.Subkind {
	var pe *pq.Error
	if !errors.As(err, &pe) {
		return database.ClassifyCommon(err)
	}

	switch pe.Code {
	case "55P03", "40001", "40P01":
		// lock_not_available, serialization_failure, deadlock_detected
		return dberr.Busy
	}

	switch pe.Code.Class() {
	case "23":
		return dberr.Constraint
	case "42":
		return dberr.Syntax
	case "22":
		return dberr.Type
	case "08", "57", "53":
		return dberr.Connection
	case "40", "55":
		return dberr.Busy
	default:
		return dberr.Unknown
	}
}

// Redact hides the password of a URL style DSN. Key/value DSNs are reduced
// to the driver name.
func Redact(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.Scheme == "" {
		return "postgres"
	}
	return u.Redacted()
}

// Ensure PostgresAdapter implements Adapter interface.
var _ database.Adapter = (*PostgresAdapter)(nil)
