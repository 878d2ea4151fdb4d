package compiler

import (
	"regexp"

	"github.com/satishbabariya/dbaccessor/internal/core/dberr"
)

// validIdentifierRe matches the identifiers allowed in SQL text.
var validIdentifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

const maxIdentifierLen = 128

// ValidIdentifier reports whether s may be interpolated as a table, column or
// index name.
func ValidIdentifier(s string) bool {
	return s != "" && len(s) <= maxIdentifierLen && validIdentifierRe.MatchString(s)
}

func checkTable(table string) error {
	if !ValidIdentifier(table) {
		return dberr.NewValidation(dberr.ErrInvalidIdentifier, "", "", table)
	}
	return nil
}

func checkColumn(table, column string) error {
	if !ValidIdentifier(column) {
		return dberr.NewValidation(dberr.ErrInvalidIdentifier, table, "", column)
	}
	return nil
}

func checkColumns(table string, columns []string) error {
	for _, col := range columns {
		if err := checkColumn(table, col); err != nil {
			return err
		}
	}
	return nil
}
