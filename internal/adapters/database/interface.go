// Package database defines database adapter interfaces.
package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"time"

	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
	"github.com/spf13/afero"
)

// Adapter owns the single engine connection of an accessor.
type Adapter interface {
	// Connect establishes the database connection.
	Connect(ctx context.Context) error

	// Disconnect closes the database connection.
	Disconnect(ctx context.Context) error

	// DB returns the connection handle. It is nil until Connect succeeds.
	DB() *sql.DB

	// Dialect returns the SQL dialect.
	Dialect() domain.Dialect

	// Classify maps a driver error to a coarse subkind.
	Classify(err error) dberr.Subkind
}

// DefaultConnectTimeout bounds the initial ping when Config leaves it unset.
const DefaultConnectTimeout = 10 * time.Second

// Config holds database connection configuration.
type Config struct {
	// URL is a file path for SQLite and a DSN otherwise.
	URL string

	// CreateIfMissing allows SQLite to create the database file.
	CreateIfMissing bool

	ConnectTimeout time.Duration

	// Fs is used for the SQLite file existence check. Defaults to the OS
	// filesystem.
	Fs afero.Fs
}

// Timeout returns the configured connect timeout or the default.
func (c Config) Timeout() time.Duration {
	if c.ConnectTimeout <= 0 {
		return DefaultConnectTimeout
	}
	return c.ConnectTimeout
}

// Filesystem returns the configured filesystem or the OS one.
func (c Config) Filesystem() afero.Fs {
	if c.Fs == nil {
		return afero.NewOsFs()
	}
	return c.Fs
}

// Open opens db with a single connection and pings it within the configured
// timeout. db is closed on failure. Per-connection settings belong in the DSN
// so they survive the pool replacing a bad connection.
func Open(ctx context.Context, driver string, cfg Config, redacted string) (*sql.DB, error) {
	db, err := sql.Open(driver, cfg.URL)
	if err != nil {
		return nil, &dberr.ConnectionError{Target: redacted, Cause: err}
	}

	// One connection per accessor.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &dberr.ConnectionError{Target: redacted, Cause: err}
	}

	return db, nil
}

// ClassifyCommon classifies failures raised by database/sql itself rather than
// by a driver.
func ClassifyCommon(err error) dberr.Subkind {
	switch {
	case err == nil:
		return dberr.Unknown
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone):
		return dberr.Connection
	case errors.Is(err, context.DeadlineExceeded):
		return dberr.Busy
	default:
		return dberr.Unknown
	}
}
