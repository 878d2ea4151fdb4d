// Package schema holds point-in-time snapshots of a database schema and the
// validator that answers table and field lookups against them.
//
// A snapshot is never refreshed. It goes stale when the schema changes after
// it was taken; callers rebuild it to pick up changes.
package schema

import (
	"context"
	"fmt"

	"github.com/satishbabariya/dbaccessor/internal/core/introspection/domain"
)

// Table is one table of a snapshot with its columns in declaration order.
type Table struct {
	Name    string
	Columns []domain.Column
}

// Snapshot is an ordered, immutable mapping of table name to columns.
type Snapshot struct {
	tables []Table
	index  map[string]int
}

// NewSnapshot builds a snapshot from tables. The input is copied.
func NewSnapshot(tables []Table) *Snapshot {
	s := &Snapshot{
		tables: make([]Table, len(tables)),
		index:  make(map[string]int, len(tables)),
	}
	for i, t := range tables {
		cols := make([]domain.Column, len(t.Columns))
		copy(cols, t.Columns)
		s.tables[i] = Table{Name: t.Name, Columns: cols}
		s.index[t.Name] = i
	}
	return s
}

// Build describes every table returned by ListTables, in that order.
func Build(ctx context.Context, in domain.Introspector) (*Snapshot, error) {
	names, err := in.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	tables := make([]Table, 0, len(names))
	for _, name := range names {
		cols, err := in.DescribeTable(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to snapshot table %s: %w", name, err)
		}
		tables = append(tables, Table{Name: name, Columns: cols})
	}

	return NewSnapshot(tables), nil
}

// Tables returns the table names in snapshot order.
func (s *Snapshot) Tables() []string {
	names := make([]string, len(s.tables))
	for i, t := range s.tables {
		names[i] = t.Name
	}
	return names
}

// Columns returns a copy of the columns of table.
func (s *Snapshot) Columns(table string) ([]domain.Column, bool) {
	i, ok := s.index[table]
	if !ok {
		return nil, false
	}
	cols := make([]domain.Column, len(s.tables[i].Columns))
	copy(cols, s.tables[i].Columns)
	return cols, true
}

// Len returns the number of tables.
func (s *Snapshot) Len() int {
	return len(s.tables)
}
