// Package postgres implements PostgreSQL database introspection.
package postgres

import (
	"context"
	"fmt"

	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
	"github.com/satishbabariya/dbaccessor/internal/core/introspection/domain"
)

const (
	listTablesQuery = `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
		ORDER BY table_name`

	listIndexesQuery = `
		SELECT indexname
		FROM pg_indexes
		WHERE schemaname = current_schema()
		ORDER BY indexname`

	describeTableQuery = `
		SELECT column_name, data_type, ordinal_position
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = $1
		ORDER BY ordinal_position`

	versionQuery = `SHOW server_version`
)

// Introspector implements domain.Introspector for PostgreSQL. Only the
// current schema is inspected.
type Introspector struct {
	q domain.Querier
}

// NewIntrospector creates a new PostgreSQL introspector.
func NewIntrospector(q domain.Querier) *Introspector {
	return &Introspector{q: q}
}

// ListTables returns the base tables of the current schema.
func (i *Introspector) ListTables(ctx context.Context) ([]string, error) {
	rs, err := i.q.Query(ctx, listTablesQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return domain.FirstColumn(rs), nil
}

// ListIndexes returns the indexes of the current schema.
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

// CreateStatements synthesizes CREATE statements from information_schema.
// PostgreSQL does not keep the original DDL text.
func (i *Introspector) CreateStatements(ctx context.Context) ([]domain.TableDefinition, error) {
	tables, err := i.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	defs := make([]domain.TableDefinition, 0, len(tables))
	for _, table := range tables {
		cols, err := i.DescribeTable(ctx, table)
		if err != nil {
			return nil, err
		}
		defs = append(defs, domain.TableDefinition{Table: table, SQL: domain.SynthesizeCreate(table, cols)})
	}
	return defs, nil
}

// EngineVersion returns server_version.
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
