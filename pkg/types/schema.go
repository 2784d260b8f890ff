package types

// Column describes one column of an introspected table.
// A Column is immutable once introspection has produced it.
type Column struct {
	// Name is the column name as reported by the store.
	Name string

	// Type is the declared column type, verbatim from the store
	// (e.g. "INTEGER", "varchar(64)").
	Type string

	// Default is the declared default value, parsed to a Go scalar.
	// Nil when the column has no default (or the default is NULL).
	Default any

	// PrimaryKey reports whether the column is part of the primary key.
	PrimaryKey bool

	// AutoGenerated reports whether the store assigns the value itself
	// (identity, auto-increment, rowid alias). Auto-generated columns are
	// excluded from INSERT and UPDATE value lists.
	AutoGenerated bool
}

// Schema is the ordered column list for one table, in declaration order.
// Schemas are introspected once per table per process and shared read-only.
type Schema []Column

// PrimaryKey returns the name of the primary key column. The second return
// is false when the table has no primary key. Composite keys report the
// first key column only.
func (s Schema) PrimaryKey() (string, bool) {
	for _, c := range s {
		if c.PrimaryKey {
			return c.Name, true
		}
	}
	return "", false
}

// Column returns the descriptor for the named column.
func (s Schema) Column(name string) (Column, bool) {
	for _, c := range s {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Has reports whether the schema contains the named column.
func (s Schema) Has(name string) bool {
	_, ok := s.Column(name)
	return ok
}

// Defaults returns every column's declared default keyed by name. Columns
// without a default map to nil, so the result covers the whole schema.
func (s Schema) Defaults() map[string]any {
	out := make(map[string]any, len(s))
	for _, c := range s {
		out[c.Name] = c.Default
	}
	return out
}

// Names returns the column names in declaration order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}
