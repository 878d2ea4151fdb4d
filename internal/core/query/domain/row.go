package domain

import "sort"

// Field is one column/value pair of a Row.
type Field struct {
	Column string
	Value  interface{}
}

// Row is an ordered column to value mapping used for INSERT values, UPDATE SET
// lists and read results. Column order is significant.
type Row []Field

// RowFromMap builds a Row from a map, ordering columns by name.
func RowFromMap(m map[string]interface{}) Row {
	cols := make([]string, 0, len(m))
	for col := range m {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	row := make(Row, 0, len(cols))
	for _, col := range cols {
		row = append(row, Field{Column: col, Value: m[col]})
	}
	return row
}

// Zip pairs columns with values positionally.
func Zip(columns []string, values []interface{}) Row {
	row := make(Row, len(columns))
	for i, col := range columns {
		row[i] = Field{Column: col, Value: values[i]}
	}
	return row
}

// Columns returns the column names in order.
func (r Row) Columns() []string {
	cols := make([]string, len(r))
	for i, f := range r {
		cols[i] = f.Column
	}
	return cols
}

// Values returns the values in column order.
func (r Row) Values() []interface{} {
	vals := make([]interface{}, len(r))
	for i, f := range r {
		vals[i] = f.Value
	}
	return vals
}

// Get returns the value for column.
func (r Row) Get(column string) (interface{}, bool) {
	for _, f := range r {
		if f.Column == column {
			return f.Value, true
		}
	}
	return nil, false
}

// Set returns a copy of r with column set to value, appending the column when
// absent. r is not modified.
func (r Row) Set(column string, value interface{}) Row {
	out := make(Row, len(r), len(r)+1)
	copy(out, r)
	for i, f := range out {
		if f.Column == column {
			out[i].Value = value
			return out
		}
	}
	return append(out, Field{Column: column, Value: value})
}

// Map converts the row to an unordered map.
func (r Row) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(r))
	for _, f := range r {
		m[f.Column] = f.Value
	}
	return m
}

// SameShape reports whether other has exactly the same set of columns,
// regardless of order.
func (r Row) SameShape(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for _, f := range r {
		if _, ok := other.Get(f.Column); !ok {
			return false
		}
	}
	return true
}
