// Package mysql implements MySQL database adapter.
package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/satishbabariya/dbaccessor/internal/adapters/database"
	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
)

// MySQLAdapter implements the database.Adapter interface for MySQL.
type MySQLAdapter struct {
	db     *sql.DB
	config database.Config
}

// NewMySQLAdapter creates a new MySQL adapter.
func NewMySQLAdapter(config database.Config) *MySQLAdapter {
	return &MySQLAdapter{
		config: config,
	}
}

// Connect establishes a connection to the MySQL database. The DSN is parsed
// up front so malformed DSNs fail before any network activity.
func (a *MySQLAdapter) Connect(ctx context.Context) error {
	if _, err := mysql.ParseDSN(a.config.URL); err != nil {
		return &dberr.ConnectionError{Target: "mysql", Cause: err}
	}

	db, err := database.Open(ctx, "mysql", a.config, Redact(a.config.URL))
	if err != nil {
		return err
	}

	a.db = db
	return nil
}

// Disconnect closes the database connection.
func (a *MySQLAdapter) Disconnect(ctx context.Context) error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// DB returns the connection handle.
func (a *MySQLAdapter) DB() *sql.DB {
	return a.db
}

// Dialect returns the SQL dialect.
func (a *MySQLAdapter) Dialect() domain.Dialect {
	return domain.MySQL
}

// Classify maps MySQL server error numbers to subkinds.
func (a *MySQLAdapter) Classify(err error) dberr.Subkind {
	return Classify(err)
}

// Classify maps MySQL server error numbers to subkinds.
func Classify(err error) dberr.Subkind {
	if errors.Is(err, mysql.ErrInvalidConn) {
		return dberr.Connection
	}

	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return database.ClassifyCommon(err)
	}

	switch me.Number {
	case 1062, 1216, 1217, 1451, 1452, 1048, 3819:
		return dberr.Constraint
	case 1064, 1146, 1054, 1049, 1091, 1149:
		return dberr.Syntax
	case 1264, 1265, 1292, 1366, 1406:
		return dberr.Type
	case 1205, 1213:
		return dberr.Busy
	case 1040, 1045, 1053, 2006, 2013:
		return dberr.Connection
	default:
		return dberr.Unknown
	}
}

// Redact returns the DSN with its password removed.
func Redact(dsn string) string {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "mysql"
	}
	cfg.Passwd = ""
	return cfg.FormatDSN()
}

// Ensure MySQLAdapter implements Adapter interface.
var _ database.Adapter = (*MySQLAdapter)(nil)
