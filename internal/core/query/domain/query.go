// Package domain contains the structured descriptions the statement builders
// consume and the plans they produce.
package domain

// Predicate is one (column, operator, value) comparison. A WHERE clause is an
// ordered list of predicates combined with AND.
type Predicate struct {
	Column string
	Op     Operator
	Value  interface{}
}

// Where is shorthand for building a Predicate.
func Where(column string, op Operator, value interface{}) Predicate {
	return Predicate{Column: column, Op: op, Value: value}
}

// Operator represents a comparison operator.
type Operator string

const (
	// Eq checks equality.
	Eq Operator = "="
	// Gt checks if value is greater than.
	Gt Operator = ">"
	// Lt checks if value is less than.
	Lt Operator = "<"
	// Gte checks if value is greater than or equal.
	Gte Operator = ">="
	// Lte checks if value is less than or equal.
	Lte Operator = "<="
	// Ne checks inequality.
	Ne Operator = "!="
	// NeStd is the standard SQL spelling of inequality.
	NeStd Operator = "<>"
)

// Valid reports whether the operator is in the whitelist.
func (o Operator) Valid() bool {
	switch o {
	case Eq, Gt, Lt, Gte, Lte, Ne, NeStd:
		return true
	}
	return false
}

// OrderBy defines sorting on one column.
type OrderBy struct {
	Column    string
	Direction SortDirection
}

// SortDirection represents sort direction. Matching is case-insensitive.
type SortDirection string

const (
	// Asc sorts ascending.
	Asc SortDirection = "ASC"
	// Desc sorts descending.
	Desc SortDirection = "DESC"
)

// ColumnDef declares one column for CREATE TABLE. Type is passed through
// verbatim and may carry constraints ("integer primary key autoincrement").
type ColumnDef struct {
	Name string
	Type string
}

// StatementPlan is SQL text paired with its ordered bound parameters.
type StatementPlan struct {
	SQL  string
	Args []interface{}
}

// BatchPlan is one statement template executed once per argument tuple.
type BatchPlan struct {
	SQL     string
	Columns []string
	ArgSets [][]interface{}
}

// Dialect represents a SQL dialect.
type Dialect string

const (
	// SQLite dialect.
	SQLite Dialect = "sqlite"
	// PostgreSQL dialect.
	PostgreSQL Dialect = "postgres"
	// MySQL dialect.
	MySQL Dialect = "mysql"
)

// ParseDialect maps provider names to a Dialect. Unknown names map to SQLite.
func ParseDialect(provider string) Dialect {
	switch provider {
	case "postgres", "postgresql":
		return PostgreSQL
	case "mysql":
		return MySQL
	default:
		return SQLite
	}
}
