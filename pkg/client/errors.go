package client

import "github.com/satishbabariya/dbaccessor/internal/core/dberr"

// Sentinel errors. Test for them with errors.Is.
var (
	ErrConnectionFailure    = dberr.ErrConnectionFailure
	ErrDatabaseNotFound     = dberr.ErrDatabaseNotFound
	ErrUnknownTable         = dberr.ErrUnknownTable
	ErrInvalidOperator      = dberr.ErrInvalidOperator
	ErrInvalidSortDirection = dberr.ErrInvalidSortDirection
	ErrInconsistentRowShape = dberr.ErrInconsistentRowShape
	ErrEmptyInsertBatch     = dberr.ErrEmptyInsertBatch
	ErrEmptyUpdate          = dberr.ErrEmptyUpdate
	ErrEmptyColumnList      = dberr.ErrEmptyColumnList
	ErrInvalidIdentifier    = dberr.ErrInvalidIdentifier
	ErrEngine               = dberr.ErrEngine
)

// Rich error types. Extract them with errors.As.
type (
	ValidationError   = dberr.ValidationError
	UnknownTableError = dberr.UnknownTableError
	ConnectionError   = dberr.ConnectionError
	EngineError       = dberr.EngineError
	Subkind           = dberr.Subkind
)

// Engine error subkinds.
const (
	Constraint = dberr.Constraint
	Syntax     = dberr.Syntax
	Type       = dberr.Type
	Connection = dberr.Connection
	Busy       = dberr.Busy
	Unknown    = dberr.Unknown
)

// IsEngine reports whether err was raised by the engine.
func IsEngine(err error) bool {
	return dberr.IsEngine(err)
}

// IsUnknownTable reports whether err refers to a table missing from the
// schema.
func IsUnknownTable(err error) bool {
	return dberr.IsUnknownTable(err)
}

// SubkindOf returns the engine subkind of err.
func SubkindOf(err error) Subkind {
	return dberr.SubkindOf(err)
}
