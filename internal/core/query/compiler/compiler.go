// Package compiler turns structured query descriptions into SQL text and
// bound parameter vectors.
//
// Every caller-supplied value is emitted as a placeholder. Only identifiers,
// whitelisted operators and whitelisted sort directions are written into the
// SQL text, and identifiers must match a safe pattern first.
package compiler

import (
	"fmt"

	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
)

// SQLCompiler builds statements for one dialect. It holds no other state and
// is safe to reuse.
type SQLCompiler struct {
	dialect domain.Dialect
}

// NewSQLCompiler creates a new SQL compiler.
func NewSQLCompiler(dialect domain.Dialect) *SQLCompiler {
	return &SQLCompiler{
		dialect: dialect,
	}
}

// Dialect returns the dialect the compiler emits.
func (c *SQLCompiler) Dialect() domain.Dialect {
	return c.dialect
}

// placeholder returns the appropriate placeholder for the dialect.
func (c *SQLCompiler) placeholder(argIndex *int) string {
	defer func() { *argIndex++ }()

	switch c.dialect {
	case domain.PostgreSQL:
		return fmt.Sprintf("$%d", *argIndex)
	default:
		return "?"
	}
}
