// Package domain contains domain models for database introspection.
package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/satishbabariya/dbaccessor/internal/core/gateway"
)

// Column describes one column of a table as reported by the engine.
type Column struct {
	Name string
	// Type is the type as the engine reports it. SQLite upper-cases built-in
	// type names ("INTEGER") but returns other declarations as written.
	Type string
	// Position is the 1-based ordinal position within the table.
	Position int
}

// TableDefinition pairs a table with the statement that creates it.
type TableDefinition struct {
	Table string
	SQL   string
}

// Querier runs read-only statements. *gateway.Gateway satisfies it.
type Querier interface {
	Query(ctx context.Context, query string, args []interface{}) (*gateway.ResultSet, error)
}

// Introspector reads the live schema from the engine catalog. Every method is
// read-only.
type Introspector interface {
	// ListTables returns user table names ordered by name.
	ListTables(ctx context.Context) ([]string, error)

	// ListIndexes returns user index names ordered by name.
	ListIndexes(ctx context.Context) ([]string, error)

	// DescribeTable returns the columns of table in declaration order. It
	// fails with *dberr.UnknownTableError when the table does not exist.
	DescribeTable(ctx context.Context, table string) ([]Column, error)

	// CreateStatements returns the CREATE statement of every table, in
	// ListTables order.
	CreateStatements(ctx context.Context) ([]TableDefinition, error)

	// EngineVersion returns the engine's version string.
	EngineVersion(ctx context.Context) (string, error)
}

// FirstColumn collects the first column of every row as a string.
func FirstColumn(rs *gateway.ResultSet) []string {
	out := make([]string, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		if len(row) > 0 {
			out = append(out, AsString(row[0]))
		}
	}
	return out
}

// ScanColumns reads (name, type, position) rows.
func ScanColumns(rs *gateway.ResultSet) ([]Column, error) {
	columns := make([]Column, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("expected 3 columns per row, got %d", len(row))
		}
		pos, err := AsInt(row[2])
		if err != nil {
			return nil, fmt.Errorf("column %v position: %w", row[0], err)
		}
		columns = append(columns, Column{
			Name:     AsString(row[0]),
			Type:     AsString(row[1]),
			Position: pos,
		})
	}
	return columns, nil
}

// SynthesizeCreate renders a CREATE TABLE statement from column descriptors
// for engines that do not keep the original text.
func SynthesizeCreate(table string, columns []Column) string {
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = strings.TrimSpace(col.Name + " " + col.Type)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(defs, ", "))
}

// AsString converts a scanned catalog value to a string.
func AsString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}

// AsInt converts a scanned catalog value to an int.
func AsInt(v interface{}) (int, error) {
	switch x := v.(type) {
	case int64:
		return int(x), nil
	case int32:
		return int(x), nil
	case int:
		return x, nil
	case uint64:
		return int(x), nil
	case float64:
		return int(x), nil
	case string:
		return strconv.Atoi(x)
	case []byte:
		return strconv.Atoi(string(x))
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}
