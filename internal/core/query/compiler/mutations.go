package compiler

import (
	"fmt"
	"strings"

	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
)

// Update compiles UPDATE <table> SET c1 = ?, ... [WHERE ...].
//
// Arguments are all SET values in SET order followed by all WHERE values in
// predicate order, matching the placeholders left to right.
func (c *SQLCompiler) Update(table string, set domain.Row, where []domain.Predicate) (domain.StatementPlan, error) {
	if err := checkTable(table); err != nil {
		return domain.StatementPlan{}, err
	}
	if len(set) == 0 {
		return domain.StatementPlan{}, dberr.NewValidation(dberr.ErrEmptyUpdate, table, "", "")
	}
	if dup := firstDuplicate(set.Columns()); dup != "" {
		return domain.StatementPlan{}, &dberr.ValidationError{Kind: dberr.ErrInconsistentRowShape, Table: table, Column: dup, Detail: "duplicate SET column"}
	}

	setClauses := make([]string, 0, len(set))
	args := make([]interface{}, 0, len(set)+len(where))
	paramCount := 1

	// Build SET clauses
	for _, f := range set {
		if err := checkColumn(table, f.Column); err != nil {
			return domain.StatementPlan{}, err
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = %s", f.Column, c.placeholder(&paramCount)))
		args = append(args, f.Value)
	}

	sql := fmt.Sprintf("UPDATE %s SET %s", table, strings.Join(setClauses, ", "))

	// Add WHERE clause
	whereSQL, whereArgs, err := c.buildWhere(where, &paramCount)
	if err != nil {
		return domain.StatementPlan{}, err
	}
	if whereSQL != "" {
		sql += " " + whereSQL
		args = append(args, whereArgs...)
	}

	return domain.StatementPlan{SQL: sql, Args: args}, nil
}

// Delete compiles DELETE FROM <table> [WHERE ...].
//
// With no predicates the statement deletes every row of the table. There is
// no guard against this; restricting the delete is the caller's job.
func (c *SQLCompiler) Delete(table string, where []domain.Predicate) (domain.StatementPlan, error) {
	if err := checkTable(table); err != nil {
		return domain.StatementPlan{}, err
	}

	sql := "DELETE FROM " + table

	paramCount := 1
	whereSQL, args, err := c.buildWhere(where, &paramCount)
	if err != nil {
		return domain.StatementPlan{}, err
	}
	if whereSQL != "" {
		sql += " " + whereSQL
	}

	return domain.StatementPlan{SQL: sql, Args: args}, nil
}
