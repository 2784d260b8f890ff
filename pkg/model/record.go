// Package model implements the record lifecycle: construct, load or
// default-populate, mutate, and persist back as insert, update, or delete.
package model

import (
	"fmt"

	"github.com/wennys/modelbuddy/pkg/types"
)

// Record is the in-memory image of one table row: a field bag keyed by
// column name plus the selection state that located the row. Records are
// created by Engine.Open or Engine.New and are not safe for concurrent
// mutation.
type Record struct {
	table  string
	schema types.Schema
	pk     string // empty when the table has no primary key
	fields map[string]any
	sel    types.Selection
}

func newRecord(table string, schema types.Schema) *Record {
	pk, _ := schema.PrimaryKey()
	return &Record{
		table:  table,
		schema: schema,
		pk:     pk,
		fields: make(map[string]any, len(schema)),
	}
}

// Table returns the table name the record maps to.
func (r *Record) Table() string { return r.table }

// Schema returns the shared, read-only schema of the record's table.
func (r *Record) Schema() types.Schema { return r.schema }

// Selection returns the record's current selection state.
func (r *Record) Selection() types.Selection { return r.sel }

// Bound reports whether the record is backed by an existing row.
func (r *Record) Bound() bool { return r.sel.Bound() }

// Get returns the value of a field, or nil when the field is unset.
func (r *Record) Get(name string) any { return r.fields[name] }

// Set assigns a field value. Only introspected columns may be set; the
// field bag never holds keys outside the table schema.
func (r *Record) Set(name string, value any) error {
	if !r.schema.Has(name) {
		return fmt.Errorf("%w: %s", types.ErrUnknownColumn, name)
	}
	r.fields[name] = value
	return nil
}

// Apply assigns several fields in order, stopping at the first unknown
// column.
func (r *Record) Apply(fields types.Fields) error {
	for _, f := range fields {
		if err := r.Set(f.Name, f.Value); err != nil {
			return err
		}
	}
	return nil
}

// Fields returns a copy of the field bag.
func (r *Record) Fields() map[string]any {
	out := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}

// PrimaryKey returns the primary key column name and the record's current
// value for it. The column name is empty when the table has no primary key.
func (r *Record) PrimaryKey() (string, any) {
	if r.pk == "" {
		return "", nil
	}
	return r.pk, r.fields[r.pk]
}
