package schema

import "strings"

// FieldDefinitions splits the column list of a CREATE TABLE statement into
// its comma separated definitions, for example
// "id integer primary key autoincrement not null". Commas inside nested
// parentheses or quotes do not split. Malformed input yields nil.
func FieldDefinitions(createSQL string) []string {
	start := strings.IndexByte(createSQL, '(')
	end := strings.LastIndexByte(createSQL, ')')
	if start == -1 || end <= start {
		return nil
	}
	body := createSQL[start+1 : end]

	var (
		defs  []string
		depth int
		quote byte
		last  int
	)
	for i := 0; i < len(body); i++ {
		ch := body[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"' || ch == '`':
			quote = ch
		case ch == '(':
			depth++
		case ch == ')':
			depth--
		case ch == ',' && depth == 0:
			defs = append(defs, strings.TrimSpace(body[last:i]))
			last = i + 1
		}
	}
	if tail := strings.TrimSpace(body[last:]); tail != "" {
		defs = append(defs, tail)
	}
	return defs
}
