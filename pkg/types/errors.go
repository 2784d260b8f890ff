package types

import (
	"errors"
	"fmt"
)

// Selection errors.
var (
	ErrNoPrimaryKey  = errors.New("table has no primary key")
	ErrEmptyFieldMap = errors.New("field-map selection is empty")
	ErrMissingArgs   = errors.New("predicate selection requires a bind argument list")
	ErrUnknownColumn = errors.New("unknown column")
	ErrNotBound      = errors.New("record is not bound to a row")
)

// Schema errors.
var (
	ErrTableNotFound = errors.New("table not found")
	ErrUnknownDriver = errors.New("unknown driver")
)

// SchemaError reports a failed table introspection. The record cannot be
// constructed without a schema, so callers should treat it as fatal for the
// entity.
type SchemaError struct {
	Table string
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("introspect table %q: %v", e.Table, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// SelectionError reports a malformed selection criterion.
type SelectionError struct {
	Mode SelectionMode
	Err  error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s selection: %v", e.Mode, e.Err)
}

func (e *SelectionError) Unwrap() error { return e.Err }

// QueryError reports a failed row load.
type QueryError struct {
	Table string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query table %q: %v", e.Table, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// PersistError reports a failed insert, update, or delete.
type PersistError struct {
	Op    string // "insert", "update", or "delete"
	Table string
	Err   error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s on table %q: %v", e.Op, e.Table, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
