// Package sqlite implements SQLite database introspection.
package sqlite

import (
	"context"
	"fmt"

	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
	"github.com/satishbabariya/dbaccessor/internal/core/introspection/domain"
)

// Internal objects are matched by prefix with substr because '_' is a LIKE
// wildcard and would also hide user tables such as "sqlitestats".
const (
	listTablesQuery = `SELECT name FROM sqlite_master WHERE type = 'table' AND substr(name, 1, 7) <> 'sqlite_' ORDER BY name`

	listIndexesQuery = `SELECT name FROM sqlite_master WHERE type = 'index' AND substr(name, 1, 7) <> 'sqlite_' ORDER BY name`

	// pragma_table_info takes the table name as a bound parameter.
	describeTableQuery = `SELECT name, type, cid + 1 FROM pragma_table_info(?) ORDER BY cid`

	createStatementsQuery = `SELECT name, sql FROM sqlite_master WHERE type = 'table' AND substr(name, 1, 7) <> 'sqlite_' ORDER BY name`

	versionQuery = `SELECT sqlite_version()`
)

// Introspector implements domain.Introspector for SQLite.
type Introspector struct {
	q domain.Querier
}

// NewIntrospector creates a new SQLite introspector.
func NewIntrospector(q domain.Querier) *Introspector {
	return &Introspector{q: q}
}

// ListTables returns user tables. Internal sqlite_ tables are excluded.
func (i *Introspector) ListTables(ctx context.Context) ([]string, error) {
	rs, err := i.q.Query(ctx, listTablesQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return domain.FirstColumn(rs), nil
}

// ListIndexes returns user indexes. Automatic indexes backing UNIQUE and
// PRIMARY KEY constraints are excluded.
func (i *Introspector) ListIndexes(ctx context.Context) ([]string, error) {
	rs, err := i.q.Query(ctx, listIndexesQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list indexes: %w", err)
	}
	return domain.FirstColumn(rs), nil
}

// DescribeTable returns the columns of table.
func (i *Introspector) DescribeTable(ctx context.Context, table string) ([]domain.Column, error) {
	rs, err := i.q.Query(ctx, describeTableQuery, []interface{}{table})
	if err != nil {
		return nil, fmt.Errorf("failed to describe table %s: %w", table, err)
	}
	// table_info yields nothing for a missing table.
	if len(rs.Rows) == 0 {
		return nil, &dberr.UnknownTableError{Table: table}
	}
	return domain.ScanColumns(rs)
}

// CreateStatements returns the CREATE statements stored in sqlite_master.
func (i *Introspector) CreateStatements(ctx context.Context) ([]domain.TableDefinition, error) {
	rs, err := i.q.Query(ctx, createStatementsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read table definitions: %w", err)
	}

	defs := make([]domain.TableDefinition, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		defs = append(defs, domain.TableDefinition{
			Table: domain.AsString(row[0]),
			SQL:   domain.AsString(row[1]),
		})
	}
	return defs, nil
}

// EngineVersion returns the SQLite library version.
func (i *Introspector) EngineVersion(ctx context.Context) (string, error) {
	rs, err := i.q.Query(ctx, versionQuery, nil)
	if err != nil {
		return "", fmt.Errorf("failed to read engine version: %w", err)
	}
	versions := domain.FirstColumn(rs)
	if len(versions) == 0 {
		return "", fmt.Errorf("engine returned no version")
	}
	return versions[0], nil
}

// Ensure Introspector implements domain.Introspector.
var _ domain.Introspector = (*Introspector)(nil)
