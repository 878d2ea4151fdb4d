package client

import (
	"context"

	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
)

// ReadOptions narrows a Read. The zero value reads every column of every row.
type ReadOptions struct {
	// Columns defaults to the table's full introspected column list.
	Columns []string
	Where   []Predicate
	OrderBy []OrderBy
}

// Read returns the matching rows, each keyed by the selected columns in
// selection order.
func (a *Accessor) Read(ctx context.Context, table string, opts ReadOptions) ([]Row, error) {
	// Reject malformed input before touching the engine.
	if _, err := a.compiler.Select(table, opts.Columns, opts.Where, opts.OrderBy); err != nil {
		return nil, err
	}

	columns := opts.Columns
	if len(columns) == 0 {
		cols, err := a.introspect.DescribeTable(ctx, table)
		if err != nil {
			return nil, err
		}
		columns = make([]string, len(cols))
		for i, c := range cols {
			columns[i] = c.Name
		}
	}

	plan, err := a.compiler.Select(table, columns, opts.Where, opts.OrderBy)
	if err != nil {
		return nil, err
	}

	rs, err := a.gateway.Query(ctx, plan.SQL, plan.Args)
	if err != nil {
		return nil, err
	}

	// Tuples correspond positionally to the selected columns.
	rows := make([]Row, len(rs.Rows))
	for i, values := range rs.Rows {
		rows[i] = domain.Zip(columns, values)
	}
	return rows, nil
}

// Insert writes rows as one batch: a single statement executed once per row
// inside one transaction. Every row must have the same columns.
func (a *Accessor) Insert(ctx context.Context, table string, rows []Row) (Result, error) {
	plan, err := a.compiler.Insert(table, rows)
	if err != nil {
		return Result{}, err
	}
	return a.gateway.RunBatch(ctx, plan.SQL, plan.ArgSets)
}

// Update sets the columns of set on every row matching where.
func (a *Accessor) Update(ctx context.Context, table string, set Row, where []Predicate) (Result, error) {
	plan, err := a.compiler.Update(table, set, where)
	if err != nil {
		return Result{}, err
	}
	return a.gateway.Run(ctx, plan.SQL, plan.Args)
}

// Delete removes every row matching where. With no predicates it removes
// every row of the table.
func (a *Accessor) Delete(ctx context.Context, table string, where []Predicate) (Result, error) {
	plan, err := a.compiler.Delete(table, where)
	if err != nil {
		return Result{}, err
	}
	return a.gateway.Run(ctx, plan.SQL, plan.Args)
}
