// Package gateway executes compiled statements against the engine. Every call
// runs inside its own transaction, which is committed on success and rolled
// back on any failure.
package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
)

// Operation names reported in engine errors.
const (
	OpRun      = "run"
	OpRunBatch = "run batch"
	OpQuery    = "query"
)

// Classifier maps a driver error to a coarse subkind.
type Classifier func(err error) dberr.Subkind

// Result summarizes a write.
type Result struct {
	// RowsAffected is summed over every tuple of a batch.
	RowsAffected int64
	// LastInsertID is zero when the driver does not report one.
	LastInsertID int64
}

// ResultSet holds a fully read query result. Rows are positional and match
// Columns.
type ResultSet struct {
	Columns []string
	Rows    [][]interface{}
}

// Gateway runs statements on a single connection.
type Gateway struct {
	db       *sql.DB
	classify Classifier
	observer Observer
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithObserver sets the observer notified of every failure.
func WithObserver(o Observer) Option {
	return func(g *Gateway) {
		if o != nil {
			g.observer = o
		}
	}
}

// New creates a gateway over db. A nil classifier reports every failure as
// dberr.Unknown.
func New(db *sql.DB, classify Classifier, opts ...Option) *Gateway {
	if classify == nil {
		classify = func(error) dberr.Subkind { return dberr.Unknown }
	}
	g := &Gateway{
		db:       db,
		classify: classify,
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run executes one statement in its own transaction.
func (g *Gateway) Run(ctx context.Context, query string, args []interface{}) (Result, error) {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, g.fail(ctx, OpRun, query, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, g.fail(ctx, OpRun, query, rollback(tx, err))
	}

	if err := tx.Commit(); err != nil {
		return Result{}, g.fail(ctx, OpRun, query, err)
	}

	return summarize(res), nil
}

// RunBatch prepares query once and executes it for every argument tuple,
// all inside one transaction. Any failure rolls back the whole batch.
func (g *Gateway) RunBatch(ctx context.Context, query string, argSets [][]interface{}) (Result, error) {
	if len(argSets) == 0 {
		return Result{}, nil
	}

	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, g.fail(ctx, OpRunBatch, query, err)
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return Result{}, g.fail(ctx, OpRunBatch, query, rollback(tx, err))
	}

	var total Result
	for i, args := range argSets {
		res, err := stmt.ExecContext(ctx, args...)
		if err != nil {
			stmt.Close()
			return Result{}, g.fail(ctx, OpRunBatch, query, rollback(tx, fmt.Errorf("tuple %d: %w", i, err)))
		}
		r := summarize(res)
		total.RowsAffected += r.RowsAffected
		total.LastInsertID = r.LastInsertID
	}

	if err := stmt.Close(); err != nil {
		return Result{}, g.fail(ctx, OpRunBatch, query, rollback(tx, err))
	}
	if err := tx.Commit(); err != nil {
		return Result{}, g.fail(ctx, OpRunBatch, query, err)
	}

	return total, nil
}

// Query runs a read statement and reads every row before committing. []byte
// values are converted to string.
func (g *Gateway) Query(ctx context.Context, query string, args []interface{}) (*ResultSet, error) {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, g.fail(ctx, OpQuery, query, err)
	}

	rs, err := scan(ctx, tx, query, args)
	if err != nil {
		return nil, g.fail(ctx, OpQuery, query, rollback(tx, err))
	}

	if err := tx.Commit(); err != nil {
		return nil, g.fail(ctx, OpQuery, query, err)
	}

	return rs, nil
}

func scan(ctx context.Context, tx *sql.Tx, query string, args []interface{}) (*ResultSet, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Get column names
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	rs := &ResultSet{Columns: columns, Rows: [][]interface{}{}}
	for rows.Next() {
		// Create a slice of interface{} to hold each column value
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		// Convert []byte to string for text columns
		for i, val := range values {
			if b, ok := val.([]byte); ok {
				values[i] = string(b)
			}
		}

		rs.Rows = append(rs.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return rs, nil
}

// rollback aborts tx and joins a rollback failure onto cause.
func rollback(tx *sql.Tx, cause error) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return errors.Join(cause, fmt.Errorf("rollback: %w", err))
	}
	return cause
}

func summarize(res sql.Result) Result {
	var r Result
	// Not every driver reports both values; missing ones stay zero.
	if n, err := res.RowsAffected(); err == nil {
		r.RowsAffected = n
	}
	if id, err := res.LastInsertId(); err == nil {
		r.LastInsertID = id
	}
	return r
}

// fail wraps err as an engine error and notifies the observer.
func (g *Gateway) fail(ctx context.Context, op, query string, err error) error {
	ee := &dberr.EngineError{
		Subkind: g.classify(err),
		Op:      op,
		SQL:     query,
		Cause:   err,
	}
	g.observer.Failed(ctx, ee)
	return ee
}
