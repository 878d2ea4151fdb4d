package client

import (
	"github.com/satishbabariya/dbaccessor/internal/core/gateway"
	idomain "github.com/satishbabariya/dbaccessor/internal/core/introspection/domain"
	"github.com/satishbabariya/dbaccessor/internal/core/query/compiler"
	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
	"github.com/satishbabariya/dbaccessor/internal/core/schema"
)

type (
	// Row is an ordered column to value mapping.
	Row = domain.Row
	// Field is one column/value pair of a Row.
	Field = domain.Field
	// Predicate is one WHERE comparison. Predicates are combined with AND.
	Predicate = domain.Predicate
	// Operator is a comparison operator.
	Operator = domain.Operator
	// OrderBy is one ORDER BY key.
	OrderBy = domain.OrderBy
	// SortDirection is ASC or DESC, matched case-insensitively.
	SortDirection = domain.SortDirection
	// ColumnDef declares a column for CreateTable.
	ColumnDef = domain.ColumnDef
	// Dialect names the SQL dialect of a connection.
	Dialect = domain.Dialect

	// Column describes an introspected column.
	Column = idomain.Column
	// TableDefinition pairs a table with its CREATE statement.
	TableDefinition = idomain.TableDefinition

	// Snapshot is a point-in-time schema snapshot.
	Snapshot = schema.Snapshot
	// Validator checks names against a snapshot.
	Validator = schema.Validator

	// Result summarizes a write.
	Result = gateway.Result
)

// Comparison operators.
const (
	Eq    = domain.Eq
	Gt    = domain.Gt
	Lt    = domain.Lt
	Gte   = domain.Gte
	Lte   = domain.Lte
	Ne    = domain.Ne
	NeStd = domain.NeStd
)

// Sort directions.
const (
	Asc  = domain.Asc
	Desc = domain.Desc
)

// Dialects.
const (
	SQLite     = domain.SQLite
	PostgreSQL = domain.PostgreSQL
	MySQL      = domain.MySQL
)

// Where builds a Predicate.
func Where(column string, op Operator, value interface{}) Predicate {
	return domain.Where(column, op, value)
}

// RowFromMap builds a Row ordered by column name.
func RowFromMap(m map[string]interface{}) Row {
	return domain.RowFromMap(m)
}

// IndexName returns the name CreateIndex gives the index on table.column.
func IndexName(table, column string) string {
	return compiler.IndexName(table, column)
}
