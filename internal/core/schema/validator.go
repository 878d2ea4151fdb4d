package schema

import "github.com/satishbabariya/dbaccessor/internal/core/dberr"

// Validator answers table and field lookups against one snapshot. It never
// queries the engine.
type Validator struct {
	snapshot *Snapshot
	fields   map[string]map[string]struct{}
}

// NewValidator creates a validator over s.
func NewValidator(s *Snapshot) *Validator {
	fields := make(map[string]map[string]struct{}, s.Len())
	for _, t := range s.tables {
		set := make(map[string]struct{}, len(t.Columns))
		for _, c := range t.Columns {
			set[c.Name] = struct{}{}
		}
		fields[t.Name] = set
	}
	return &Validator{snapshot: s, fields: fields}
}

// IsTable reports whether name is a table of the snapshot.
func (v *Validator) IsTable(name string) bool {
	_, ok := v.fields[name]
	return ok
}

// IsField reports whether field is a column of table. An unknown table is an
// error, not a false result.
func (v *Validator) IsField(table, field string) (bool, error) {
	set, ok := v.fields[table]
	if !ok {
		return false, &dberr.UnknownTableError{Table: table}
	}
	_, ok = set[field]
	return ok, nil
}

// Tables returns the table names in snapshot order.
func (v *Validator) Tables() []string {
	return v.snapshot.Tables()
}

// Fields returns the column names of table in declaration order.
func (v *Validator) Fields(table string) ([]string, error) {
	cols, ok := v.snapshot.Columns(table)
	if !ok {
		return nil, &dberr.UnknownTableError{Table: table}
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names, nil
}

// Snapshot returns the snapshot the validator was built from.
func (v *Validator) Snapshot() *Snapshot {
	return v.snapshot
}
