package compiler

import (
	"fmt"
	"strings"

	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
)

// IndexName returns the deterministic name of the index on table.column.
func IndexName(table, column string) string {
	return fmt.Sprintf("%s_%s_index", table, column)
}

// CreateTable compiles CREATE TABLE IF NOT EXISTS. Column types are written
// verbatim so they may carry constraints.
func (c *SQLCompiler) CreateTable(table string, columns []domain.ColumnDef) (domain.StatementPlan, error) {
	if err := checkTable(table); err != nil {
		return domain.StatementPlan{}, err
	}
	if len(columns) == 0 {
		return domain.StatementPlan{}, dberr.NewValidation(dberr.ErrEmptyColumnList, table, "", "")
	}

	defs := make([]string, len(columns))
	for i, col := range columns {
		if err := checkColumn(table, col.Name); err != nil {
			return domain.StatementPlan{}, err
		}
		defs[i] = strings.TrimSpace(col.Name + " " + col.Type)
	}

	return domain.StatementPlan{
		SQL: fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(defs, ", ")),
	}, nil
}

// DropTable compiles DROP TABLE IF EXISTS.
func (c *SQLCompiler) DropTable(table string) (domain.StatementPlan, error) {
	if err := checkTable(table); err != nil {
		return domain.StatementPlan{}, err
	}
	return domain.StatementPlan{SQL: "DROP TABLE IF EXISTS " + table}, nil
}

// CreateIndex compiles a unique index on one column, named by IndexName.
func (c *SQLCompiler) CreateIndex(table, column string) (domain.StatementPlan, error) {
	if err := checkTable(table); err != nil {
		return domain.StatementPlan{}, err
	}
	if err := checkColumn(table, column); err != nil {
		return domain.StatementPlan{}, err
	}
	return domain.StatementPlan{
		SQL: fmt.Sprintf("CREATE UNIQUE INDEX %s ON %s (%s)", IndexName(table, column), table, column),
	}, nil
}

// DropIndex compiles the drop of the index created by CreateIndex.
func (c *SQLCompiler) DropIndex(table, column string) (domain.StatementPlan, error) {
	if err := checkTable(table); err != nil {
		return domain.StatementPlan{}, err
	}
	if err := checkColumn(table, column); err != nil {
		return domain.StatementPlan{}, err
	}

	name := IndexName(table, column)
	// MySQL indexes are table scoped and DROP INDEX has no IF EXISTS form.
	if c.dialect == domain.MySQL {
		return domain.StatementPlan{SQL: fmt.Sprintf("DROP INDEX %s ON %s", name, table)}, nil
	}
	return domain.StatementPlan{SQL: "DROP INDEX IF EXISTS " + name}, nil
}
