package compiler

import (
	"strings"

	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
)

// Select compiles SELECT <cols|*> FROM <table> [WHERE ...] [ORDER BY ...].
// It never consults the schema; an empty column list selects *.
func (c *SQLCompiler) Select(table string, columns []string, where []domain.Predicate, order []domain.OrderBy) (domain.StatementPlan, error) {
	if err := checkTable(table); err != nil {
		return domain.StatementPlan{}, err
	}
	if err := checkColumns(table, columns); err != nil {
		return domain.StatementPlan{}, err
	}

	var sqlBuilder strings.Builder

	// SELECT clause
	sqlBuilder.WriteString("SELECT ")
	if len(columns) > 0 {
		sqlBuilder.WriteString(strings.Join(columns, ", "))
	} else {
		sqlBuilder.WriteString("*")
	}

	// FROM clause
	sqlBuilder.WriteString(" FROM ")
	sqlBuilder.WriteString(table)

	argIndex := 1
	whereSQL, args, err := c.buildWhere(where, &argIndex)
	if err != nil {
		return domain.StatementPlan{}, err
	}
	if whereSQL != "" {
		sqlBuilder.WriteString(" ")
		sqlBuilder.WriteString(whereSQL)
	}

	orderSQL, err := c.BuildOrderBy(order)
	if err != nil {
		return domain.StatementPlan{}, err
	}
	if orderSQL != "" {
		sqlBuilder.WriteString(" ")
		sqlBuilder.WriteString(orderSQL)
	}

	return domain.StatementPlan{
		SQL:  sqlBuilder.String(),
		Args: args,
	}, nil
}
