package compiler

import (
	"strings"

	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
)

// BuildOrderBy builds an ORDER BY clause. Directions are matched
// case-insensitively and emitted upper-cased. Sort clauses carry no arguments.
func (c *SQLCompiler) BuildOrderBy(order []domain.OrderBy) (string, error) {
	if len(order) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(order))
	for _, o := range order {
		if err := checkColumn("", o.Column); err != nil {
			return "", err
		}
		dir := domain.SortDirection(strings.ToUpper(string(o.Direction)))
		if dir != domain.Asc && dir != domain.Desc {
			return "", dberr.NewValidation(dberr.ErrInvalidSortDirection, "", o.Column, string(o.Direction))
		}
		parts = append(parts, o.Column+" "+string(dir))
	}

	return "ORDER BY " + strings.Join(parts, ", "), nil
}
