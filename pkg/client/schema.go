package client

import (
	"context"

	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
	"github.com/satishbabariya/dbaccessor/internal/core/schema"
)

// CreateTable creates table if it does not exist. Column types are passed
// through verbatim and may carry constraints.
func (a *Accessor) CreateTable(ctx context.Context, table string, columns []ColumnDef) error {
	return a.runDDL(ctx, func() (domain.StatementPlan, error) {
		return a.compiler.CreateTable(table, columns)
	})
}

// DropTable drops table if it exists.
func (a *Accessor) DropTable(ctx context.Context, table string) error {
	return a.runDDL(ctx, func() (domain.StatementPlan, error) {
		return a.compiler.DropTable(table)
	})
}

// CreateIndex creates a unique index on table.column and returns its name.
func (a *Accessor) CreateIndex(ctx context.Context, table, column string) (string, error) {
	err := a.runDDL(ctx, func() (domain.StatementPlan, error) {
		return a.compiler.CreateIndex(table, column)
	})
	if err != nil {
		return "", err
	}
	return IndexName(table, column), nil
}

// DropIndex drops the index CreateIndex made on table.column.
func (a *Accessor) DropIndex(ctx context.Context, table, column string) error {
	return a.runDDL(ctx, func() (domain.StatementPlan, error) {
		return a.compiler.DropIndex(table, column)
	})
}

func (a *Accessor) runDDL(ctx context.Context, build func() (domain.StatementPlan, error)) error {
	plan, err := build()
	if err != nil {
		return err
	}
	_, err = a.gateway.Run(ctx, plan.SQL, plan.Args)
	return err
}

// Tables lists user tables ordered by name.
func (a *Accessor) Tables(ctx context.Context) ([]string, error) {
	return a.introspect.ListTables(ctx)
}

// Indexes lists user indexes ordered by name.
func (a *Accessor) Indexes(ctx context.Context) ([]string, error) {
	return a.introspect.ListIndexes(ctx)
}

// Describe returns the columns of table in declaration order.
func (a *Accessor) Describe(ctx context.Context, table string) ([]Column, error) {
	return a.introspect.DescribeTable(ctx, table)
}

// Snapshot captures the current schema.
func (a *Accessor) Snapshot(ctx context.Context) (*Snapshot, error) {
	return schema.Build(ctx, a.introspect)
}

// Validator returns a validator over a fresh snapshot. The validator does not
// see later schema changes.
func (a *Accessor) Validator(ctx context.Context) (*Validator, error) {
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return schema.NewValidator(snap), nil
}

// CreateStatements returns the CREATE statement of every table.
func (a *Accessor) CreateStatements(ctx context.Context) ([]TableDefinition, error) {
	return a.introspect.CreateStatements(ctx)
}

// EngineVersion returns the engine's version string.
func (a *Accessor) EngineVersion(ctx context.Context) (string, error) {
	return a.introspect.EngineVersion(ctx)
}
