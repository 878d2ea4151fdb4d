package compiler

import (
	"strings"

	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
)

// BuildWhere builds a WHERE clause from predicates. An empty list yields an
// empty clause and no arguments. Predicates are joined with AND in the order
// given, each contributing exactly one argument.
func (c *SQLCompiler) BuildWhere(preds []domain.Predicate) (string, []interface{}, error) {
	argIndex := 1
	return c.buildWhere(preds, &argIndex)
}

// buildWhere continues placeholder numbering from argIndex.
func (c *SQLCompiler) buildWhere(preds []domain.Predicate, argIndex *int) (string, []interface{}, error) {
	if len(preds) == 0 {
		return "", nil, nil
	}

	clauses := make([]string, 0, len(preds))
	args := make([]interface{}, 0, len(preds))

	for _, p := range preds {
		if err := checkColumn("", p.Column); err != nil {
			return "", nil, err
		}
		if !p.Op.Valid() {
			return "", nil, dberr.NewValidation(dberr.ErrInvalidOperator, "", p.Column, string(p.Op))
		}
		clauses = append(clauses, p.Column+" "+string(p.Op)+" "+c.placeholder(argIndex))
		args = append(args, p.Value)
	}

	return "WHERE " + strings.Join(clauses, " AND "), args, nil
}
