// Package sqlite implements SQLite database adapter.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/satishbabariya/dbaccessor/internal/adapters/database"
	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
	"github.com/spf13/afero"
)

// SQLiteAdapter implements the database.Adapter interface for SQLite.
type SQLiteAdapter struct {
	db     *sql.DB
	config database.Config
}

// NewSQLiteAdapter creates a new SQLite adapter.
func NewSQLiteAdapter(config database.Config) *SQLiteAdapter {
	return &SQLiteAdapter{
		config: config,
	}
}

// Connect opens the database file. When CreateIfMissing is false a missing
// file fails with a connection error wrapping dberr.ErrDatabaseNotFound
// instead of silently creating an empty database.
func (a *SQLiteAdapter) Connect(ctx context.Context) error {
	path := a.config.URL

	if !a.config.CreateIfMissing && !inMemory(path) {
		exists, err := afero.Exists(a.config.Filesystem(), filePath(path))
		if err != nil {
			return &dberr.ConnectionError{Target: path, Cause: err}
		}
		if !exists {
			return &dberr.ConnectionError{Target: path, Cause: dberr.ErrDatabaseNotFound}
		}
	}

	// Foreign keys are off by default in SQLite. Setting them in the DSN
	// applies them to every connection the pool opens, not just the first.
	cfg := a.config
	cfg.URL = withForeignKeys(path)
	db, err := database.Open(ctx, "sqlite3", cfg, path)
	if err != nil {
		return err
	}

	a.db = db
	return nil
}

// Disconnect closes the database connection.
func (a *SQLiteAdapter) Disconnect(ctx context.Context) error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// DB returns the connection handle.
func (a *SQLiteAdapter) DB() *sql.DB {
	return a.db
}

// Dialect returns the SQL dialect.
func (a *SQLiteAdapter) Dialect() domain.Dialect {
	return domain.SQLite
}

// Classify maps sqlite3 result codes to subkinds.
func (a *SQLiteAdapter) Classify(err error) dberr.Subkind {
	return Classify(err)
}

// Classify maps sqlite3 result codes to subkinds.
func Classify(err error) dberr.Subkind {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return database.ClassifyCommon(err)
	}

	switch se.Code {
	case sqlite3.ErrConstraint:
		return dberr.Constraint
	case sqlite3.ErrMismatch, sqlite3.ErrRange, sqlite3.ErrTooBig:
		return dberr.Type
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return dberr.Busy
	case sqlite3.ErrIoErr, sqlite3.ErrCantOpen, sqlite3.ErrNotADB, sqlite3.ErrCorrupt, sqlite3.ErrReadonly:
		return dberr.Connection
	case sqlite3.ErrError:
		// SQLITE_ERROR covers syntax errors and missing tables or columns.
		return dberr.Syntax
	default:
		return dberr.Unknown
	}
}

// inMemory reports whether path names an in-memory database.
func inMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

// filePath strips the file: scheme and query parameters from a DSN.
func filePath(dsn string) string {
	p := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	return p
}

// withForeignKeys adds _foreign_keys=on to a DSN unless it already sets it.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// Ensure SQLiteAdapter implements Adapter interface.
var _ database.Adapter = (*SQLiteAdapter)(nil)
