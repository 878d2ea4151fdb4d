package compiler

import (
	"fmt"
	"strings"

	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
)

// Insert compiles a single parameterized INSERT statement and pairs it with
// one argument tuple per row, to be executed as one batch.
//
// Column order comes from the first row. Every other row must carry exactly
// the same column set; its values are re-ordered to match.
func (c *SQLCompiler) Insert(table string, rows []domain.Row) (domain.BatchPlan, error) {
	if err := checkTable(table); err != nil {
		return domain.BatchPlan{}, err
	}
	if len(rows) == 0 {
		return domain.BatchPlan{}, dberr.NewValidation(dberr.ErrEmptyInsertBatch, table, "", "")
	}

	columns := rows[0].Columns()
	if len(columns) == 0 {
		return domain.BatchPlan{}, &dberr.ValidationError{Kind: dberr.ErrInconsistentRowShape, Table: table, Detail: "row 0 has no columns"}
	}
	if err := checkColumns(table, columns); err != nil {
		return domain.BatchPlan{}, err
	}
	if dup := firstDuplicate(columns); dup != "" {
		return domain.BatchPlan{}, &dberr.ValidationError{Kind: dberr.ErrInconsistentRowShape, Table: table, Column: dup, Detail: "duplicate column in row 0"}
	}

	argSets := make([][]interface{}, len(rows))
	for i, row := range rows {
		if !rows[0].SameShape(row) {
			return domain.BatchPlan{}, &dberr.ValidationError{
				Kind:   dberr.ErrInconsistentRowShape,
				Table:  table,
				Detail: fmt.Sprintf("row %d has columns %v, expected %v", i, row.Columns(), columns),
			}
		}
		args := make([]interface{}, len(columns))
		for j, col := range columns {
			args[j], _ = row.Get(col)
		}
		argSets[i] = args
	}

	paramCount := 1
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = c.placeholder(&paramCount)
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	return domain.BatchPlan{
		SQL:     sql,
		Columns: columns,
		ArgSets: argSets,
	}, nil
}

func firstDuplicate(columns []string) string {
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if _, ok := seen[col]; ok {
			return col
		}
		seen[col] = struct{}{}
	}
	return ""
}
