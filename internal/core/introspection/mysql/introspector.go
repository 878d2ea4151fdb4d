// Package mysql implements MySQL database introspection.
package mysql

import (
	"context"
	"fmt"
	"strings"

	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
	"github.com/satishbabariya/dbaccessor/internal/core/introspection/domain"
)

const (
	listTablesQuery = `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
		ORDER BY table_name`

	// PRIMARY is the clustered key, not a user index.
	listIndexesQuery = `
		SELECT DISTINCT index_name
		FROM information_schema.statistics
		WHERE table_schema = DATABASE() AND index_name <> 'PRIMARY'
		ORDER BY index_name`

	describeTableQuery = `
		SELECT column_name, column_type, ordinal_position
		FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ?
		ORDER BY ordinal_position`

	versionQuery = `SELECT VERSION()`
)

// Introspector implements domain.Introspector for MySQL. Only the database
// selected by the DSN is inspected.
type Introspector struct {
	q domain.Querier
}

// NewIntrospector creates a new MySQL introspector.
func NewIntrospector(q domain.Querier) *Introspector {
	return &Introspector{q: q}
}

// ListTables returns the base tables of the current database.
func (i *Introspector) ListTables(ctx context.Context) ([]string, error) {
	rs, err := i.q.Query(ctx, listTablesQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return domain.FirstColumn(rs), nil
}

// ListIndexes returns secondary index names of the current database.
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
	if len(rs.Rows) == 0 {
		return nil, &dberr.UnknownTableError{Table: table}
	}
	return domain.ScanColumns(rs)
}

// CreateStatements runs SHOW CREATE TABLE for every table.
func (i *Introspector) CreateStatements(ctx context.Context) ([]domain.TableDefinition, error) {
	tables, err := i.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	defs := make([]domain.TableDefinition, 0, len(tables))
	for _, table := range tables {
		// SHOW cannot bind the table name, so it is always quoted.
		rs, err := i.q.Query(ctx, "SHOW CREATE TABLE "+quoteIdent(table), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to read definition of %s: %w", table, err)
		}
		if len(rs.Rows) == 0 || len(rs.Rows[0]) < 2 {
			return nil, &dberr.UnknownTableError{Table: table}
		}
		defs = append(defs, domain.TableDefinition{Table: table, SQL: domain.AsString(rs.Rows[0][1])})
	}
	return defs, nil
}

// EngineVersion returns the server version.
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

// quoteIdent backtick-quotes a catalog name, doubling embedded backticks.
func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
