package model

import (
	"strings"

	"github.com/wennys/modelbuddy/pkg/types"
)

// Update persists the record's field bag. The entity's Validate hook runs
// first; returning false stops the operation before any I/O, without error.
// An unbound record is inserted as a new row; a bound record always issues
// an UPDATE against the predicate that located it, whether or not any field
// changed.
func (e *Engine) Update(entity Tabler, rec *Record) error {
	if v, ok := entity.(Validator); ok && !v.Validate(rec) {
		return nil
	}
	if rec.Bound() {
		return e.update(rec)
	}
	return e.insert(rec)
}

// insert writes every non-auto-generated column, in schema order.
func (e *Engine) insert(rec *Record) error {
	var (
		cols         []string
		placeholders []string
		args         []any
	)
	for _, col := range rec.schema {
		if col.AutoGenerated {
			continue
		}
		cols = append(cols, col.Name)
		placeholders = append(placeholders, "?")
		args = append(args, rec.fields[col.Name])
	}

	query := e.dialect.Rebind("INSERT INTO " + rec.table +
		" (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")")
	e.log.Debug("inserting record", "sql", query, "args", args)

	res, err := e.db.Exec(query, args...)
	if err != nil {
		return &types.PersistError{Op: "insert", Table: rec.table, Err: err}
	}

	// Bind the record to its new row through the primary key when one is
	// available, so later updates address this row.
	if rec.pk != "" {
		if col, ok := rec.schema.Column(rec.pk); ok && col.AutoGenerated {
			// LastInsertId is unsupported by some drivers; the
			// record simply stays unbound then.
			if id, idErr := res.LastInsertId(); idErr == nil && id != 0 {
				rec.fields[rec.pk] = id
			}
		}
		if pv := rec.fields[rec.pk]; !emptyValue(pv) {
			rec.sel = types.Selection{
				Mode:      types.ByPrimaryKey,
				Predicate: rec.pk + " = ?",
				Args:      []any{pv},
			}
		}
	}
	return nil
}

// update rewrites every non-auto-generated column, in schema order, with
// the selection's own arguments appended so they bind to the trailing WHERE
// placeholders.
func (e *Engine) update(rec *Record) error {
	var (
		assignments []string
		args        []any
	)
	for _, col := range rec.schema {
		if col.AutoGenerated {
			continue
		}
		assignments = append(assignments, col.Name+" = ?")
		args = append(args, rec.fields[col.Name])
	}
	args = append(args, rec.sel.Args...)

	query := e.dialect.Rebind("UPDATE " + rec.table +
		" SET " + strings.Join(assignments, ", ") + " WHERE " + rec.sel.Predicate)
	e.log.Debug("updating record", "sql", query, "args", args)

	if _, err := e.db.Exec(query, args...); err != nil {
		return &types.PersistError{Op: "update", Table: rec.table, Err: err}
	}
	return nil
}

// Delete removes the record's backing row, at most one row even when the
// predicate is non-selective. The selection is re-derived fresh: a present,
// non-empty primary key value wins; otherwise the stored selection is
// reused. On success the primary key field and the whole selection state
// are reset, so a later Update re-inserts the in-memory fields as a new
// row.
func (e *Engine) Delete(rec *Record) error {
	var (
		predicate string
		args      []any
	)
	switch {
	case rec.pk != "" && !emptyValue(rec.fields[rec.pk]):
		predicate = rec.pk + " = ?"
		args = []any{rec.fields[rec.pk]}
	case rec.sel.Bound():
		predicate = rec.sel.Predicate
		args = rec.sel.Args
	default:
		return &types.PersistError{Op: "delete", Table: rec.table, Err: types.ErrNotBound}
	}

	query := e.dialect.Rebind(e.dialect.DeleteOne(rec.table, predicate))
	e.log.Debug("deleting record", "sql", query, "args", args)

	if _, err := e.db.Exec(query, args...); err != nil {
		return &types.PersistError{Op: "delete", Table: rec.table, Err: err}
	}

	if rec.pk != "" {
		rec.fields[rec.pk] = nil
	}
	rec.sel.Reset()
	return nil
}

// emptyValue mirrors the "present and non-empty" test used when deciding
// whether a primary key value can address a row.
func emptyValue(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case string:
		return n == ""
	case []byte:
		return len(n) == 0
	case int:
		return n == 0
	case int32:
		return n == 0
	case int64:
		return n == 0
	case uint64:
		return n == 0
	case float32:
		return n == 0
	case float64:
		return n == 0
	case bool:
		return !n
	default:
		return false
	}
}
