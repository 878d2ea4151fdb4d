// Package dberr defines the error taxonomy shared by the statement builders,
// the schema validator and the execution gateway.
package dberr

import (
	"errors"
	"fmt"
)

// Sentinel errors for every error kind. Use errors.Is to test for them.
var (
	// ErrConnectionFailure indicates the database could not be opened or reached.
	ErrConnectionFailure = errors.New("dbaccessor: connection failure")

	// ErrDatabaseNotFound indicates the database file does not exist and
	// creation was not allowed.
	ErrDatabaseNotFound = errors.New("dbaccessor: database not found")

	// ErrUnknownTable indicates a table is absent from the schema.
	ErrUnknownTable = errors.New("dbaccessor: unknown table")

	// ErrInvalidOperator indicates a predicate operator outside the whitelist.
	ErrInvalidOperator = errors.New("dbaccessor: invalid operator")

	// ErrInvalidSortDirection indicates a sort direction other than ASC or DESC.
	ErrInvalidSortDirection = errors.New("dbaccessor: invalid sort direction")

	// ErrInconsistentRowShape indicates insert rows with differing column sets.
	ErrInconsistentRowShape = errors.New("dbaccessor: inconsistent row shape")

	// ErrEmptyInsertBatch indicates an insert without rows.
	ErrEmptyInsertBatch = errors.New("dbaccessor: empty insert batch")

	// ErrEmptyUpdate indicates an update without SET columns.
	ErrEmptyUpdate = errors.New("dbaccessor: empty update")

	// ErrEmptyColumnList indicates a CREATE TABLE without columns.
	ErrEmptyColumnList = errors.New("dbaccessor: empty column list")

	// ErrInvalidIdentifier indicates a table or column name outside the safe
	// identifier pattern.
	ErrInvalidIdentifier = errors.New("dbaccessor: invalid identifier")

	// ErrEngine indicates a failure reported by the underlying engine.
	ErrEngine = errors.New("dbaccessor: engine error")
)

// ValidationError describes caller input rejected before any SQL reaches the
// engine.
type ValidationError struct {
	// Kind is one of the sentinel errors above.
	Kind error

	Table  string
	Column string
	// Value is the offending operator, direction or identifier.
	Value string
	// Detail carries extra context, such as the index of a bad row.
	Detail string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := e.Kind.Error()
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	switch {
	case e.Table != "" && e.Column != "":
		msg += fmt.Sprintf(" (column %s.%s)", e.Table, e.Column)
	case e.Column != "":
		msg += fmt.Sprintf(" (column %s)", e.Column)
	case e.Table != "":
		msg += fmt.Sprintf(" (table %s)", e.Table)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is reports whether target is the error kind.
func (e *ValidationError) Is(target error) bool {
	return target == e.Kind
}

// UnknownTableError is returned by introspection and validation lookups
// against a table the schema does not contain.
type UnknownTableError struct {
	Table string
}

// Error implements the error interface.
func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("dbaccessor: table %s is not in the schema", e.Table)
}

// Is reports whether target is ErrUnknownTable.
func (e *UnknownTableError) Is(target error) bool {
	return target == ErrUnknownTable
}

// ConnectionError wraps a failure to open or reach the database.
type ConnectionError struct {
	// Target is the database path or a redacted DSN.
	Target string
	Cause  error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("dbaccessor: unable to open %s: %v", e.Target, e.Cause)
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrConnectionFailure.
func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnectionFailure
}

// Subkind is a coarse classification of engine failures.
type Subkind string

const (
	// Constraint covers unique, foreign key, not-null and check violations.
	Constraint Subkind = "constraint"
	// Syntax covers malformed SQL and references to missing objects.
	Syntax Subkind = "syntax"
	// Type covers datatype mismatches and out-of-range values.
	Type Subkind = "type"
	// Connection covers I/O and connectivity loss.
	Connection Subkind = "connection"
	// Busy covers lock contention.
	Busy Subkind = "busy"
	// Unknown is used when the driver error cannot be classified.
	Unknown Subkind = "unknown"
)

// EngineError wraps any failure reported by the engine during execution. The
// original driver error stays reachable through Unwrap.
type EngineError struct {
	Subkind Subkind
	// Op is the gateway operation: "run", "run batch" or "query".
	Op    string
	SQL   string
	Cause error
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	return fmt.Sprintf("dbaccessor: %s failed (%s): %v", e.Op, e.Subkind, e.Cause)
}

// Unwrap returns the driver error.
func (e *EngineError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrEngine.
func (e *EngineError) Is(target error) bool {
	return target == ErrEngine
}

// NewValidation creates a ValidationError of the given kind.
func NewValidation(kind error, table, column, value string) *ValidationError {
	return &ValidationError{Kind: kind, Table: table, Column: column, Value: value}
}

// IsEngine reports whether err is an engine failure.
func IsEngine(err error) bool {
	return errors.Is(err, ErrEngine)
}

// SubkindOf returns the engine subkind of err, or Unknown when err is not an
// EngineError.
func SubkindOf(err error) Subkind {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Subkind
	}
	return Unknown
}

// IsUnknownTable reports whether err is an unknown table error.
func IsUnknownTable(err error) bool {
	return errors.Is(err, ErrUnknownTable)
}
