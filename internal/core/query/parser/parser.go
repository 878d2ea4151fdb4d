package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
)

// ParseWhere parses "col op value [AND col op value]...". Blank input yields
// no predicates. Operators are not checked here.
func ParseWhere(input string) ([]domain.Predicate, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	expr, err := whereParser.ParseString("where", input)
	if err != nil {
		return nil, fmt.Errorf("invalid where expression: %w", err)
	}

	preds := make([]domain.Predicate, 0, len(expr.Conditions))
	for _, c := range expr.Conditions {
		v, err := c.Value.convert()
		if err != nil {
			return nil, fmt.Errorf("invalid where expression: %w", err)
		}
		preds = append(preds, domain.Where(c.Column, domain.Operator(c.Op), v))
	}
	return preds, nil
}

// ParseOrder parses "col [ASC|DESC], ...". A missing direction means ASC.
func ParseOrder(input string) ([]domain.OrderBy, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	expr, err := orderParser.ParseString("order", input)
	if err != nil {
		return nil, fmt.Errorf("invalid order expression: %w", err)
	}

	order := make([]domain.OrderBy, 0, len(expr.Items))
	for _, item := range expr.Items {
		dir := domain.SortDirection(item.Direction)
		if dir == "" {
			dir = domain.Asc
		}
		order = append(order, domain.OrderBy{Column: item.Column, Direction: dir})
	}
	return order, nil
}

// ParseSet parses "col = value, ...".
func ParseSet(input string) (domain.Row, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	expr, err := setParser.ParseString("set", input)
	if err != nil {
		return nil, fmt.Errorf("invalid set expression: %w", err)
	}

	row := make(domain.Row, 0, len(expr.Assignments))
	for _, a := range expr.Assignments {
		if a.Op != "=" {
			return nil, fmt.Errorf("invalid set expression: expected = after %s, got %s", a.Column, a.Op)
		}
		v, err := a.Value.convert()
		if err != nil {
			return nil, fmt.Errorf("invalid set expression: %w", err)
		}
		row = append(row, domain.Field{Column: a.Column, Value: v})
	}
	return row, nil
}

// convert turns a literal into a bind value: nil, bool, int64, float64 or
// string.
func (v *value) convert() (interface{}, error) {
	switch {
	case v.Null:
		return nil, nil
	case v.Bool != nil:
		return strings.EqualFold(*v.Bool, "true"), nil
	case v.Number != nil:
		return parseNumber(*v.Number)
	case v.String != nil:
		return unquote(*v.String)
	default:
		return nil, fmt.Errorf("missing value")
	}
}

func parseNumber(s string) (interface{}, error) {
	if !strings.ContainsAny(s, ".eE") {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %s: %w", s, err)
	}
	return f, nil
}

// unquote handles SQL style 'it''s' and Go style "a\"b" strings.
func unquote(s string) (string, error) {
	if strings.HasPrefix(s, "'") {
		return strings.ReplaceAll(s[1:len(s)-1], "''", "'"), nil
	}
	out, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("invalid string %s: %w", s, err)
	}
	return out, nil
}
