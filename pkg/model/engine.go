package model

import (
	"database/sql"
	"log/slog"

	"github.com/wennys/modelbuddy/internal/logging"
	"github.com/wennys/modelbuddy/internal/schema"
	"github.com/wennys/modelbuddy/internal/selection"
	"github.com/wennys/modelbuddy/pkg/types"
)

// Engine resolves selections, loads rows, and persists records for one
// store handle. The handle is injected and externally managed; the engine
// never opens or closes connections, only issues parameterized statements.
type Engine struct {
	db      *sql.DB
	dialect schema.Dialect
	cache   *schema.Cache
	log     *slog.Logger
}

// NewEngine creates an engine over an open store handle and a driver
// dialect. All engines created this way share one process but each carries
// its own schema cache; construct one engine per handle at process start.
func NewEngine(db *sql.DB, dialect schema.Dialect) *Engine {
	return &Engine{
		db:      db,
		dialect: dialect,
		cache:   schema.NewCache(db, dialect),
		log:     logging.Get(),
	}
}

// SetLogger replaces the engine's diagnostic sink.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l != nil {
		e.log = l
	}
}

// Schema returns the cached (or freshly introspected) schema for a table.
func (e *Engine) Schema(table string) (types.Schema, error) {
	return e.cache.Get(table)
}

// New constructs an unbound record for the entity's table: schema is
// resolved, the field bag is default-populated (or handed to the entity's
// Blank hook), and no row is looked up.
func (e *Engine) New(entity Tabler) (*Record, error) {
	sch, err := e.cache.Get(entity.TableName())
	if err != nil {
		return nil, err
	}
	rec := newRecord(entity.TableName(), sch)
	populateFresh(entity, rec)
	if al, ok := entity.(AfterLoader); ok {
		al.AfterLoad(rec)
	}
	return rec, nil
}

// Open constructs a record for the entity's table and resolves the
// criterion into a row. A matching row hydrates the field bag and binds the
// record; no match is not an error: the record comes back unbound with
// default-populated fields and can be inserted later via Update.
//
// The criterion may be a selection.Criterion, a types.Fields list, a
// map[string]any, a predicate string (args bind its placeholders), or a
// bare primary key value; see selection.Sniff for the classification rules.
func (e *Engine) Open(entity Tabler, criterion any, args ...any) (*Record, error) {
	sch, err := e.cache.Get(entity.TableName())
	if err != nil {
		return nil, err
	}

	sel, err := selection.Resolve(sch, selection.Sniff(criterion, args...))
	if err != nil {
		return nil, err
	}

	rec := newRecord(entity.TableName(), sch)
	rec.sel.Mode = sel.Mode

	found, err := e.loadRow(rec, sel)
	if err != nil {
		return nil, err
	}
	if found {
		// The executed predicate and its arguments are retained so a
		// later update or delete targets the same row.
		rec.sel = sel
	} else {
		populateFresh(entity, rec)
	}
	if al, ok := entity.(AfterLoader); ok {
		al.AfterLoad(rec)
	}
	return rec, nil
}

// loadRow executes the resolved selection and hydrates the field bag from
// the first matching row. Duplicate matches beyond the first are ignored;
// zero rows reports found=false rather than an error.
func (e *Engine) loadRow(rec *Record, sel types.Selection) (found bool, err error) {
	query := e.dialect.Rebind("SELECT * FROM " + rec.table + " WHERE " + sel.Predicate)
	e.log.Debug("loading record", "sql", query, "args", sel.Args)

	rows, err := e.db.Query(query, sel.Args...)
	if err != nil {
		return false, &types.QueryError{Table: rec.table, Err: err}
	}
	defer rows.Close()

	if !rows.Next() {
		return false, rows.Err()
	}

	cols, err := rows.Columns()
	if err != nil {
		return false, &types.QueryError{Table: rec.table, Err: err}
	}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return false, &types.QueryError{Table: rec.table, Err: err}
	}
	for i, name := range cols {
		rec.fields[name] = normalize(values[i])
	}
	return true, rows.Err()
}

// populateFresh fills the field bag of a record that matched no row. The
// entity's Blank hook wins when implemented; otherwise every column gets
// its declared default (nil when none).
func populateFresh(entity Tabler, rec *Record) {
	if b, ok := entity.(Blanker); ok {
		b.Blank(rec)
		return
	}
	for name, v := range rec.schema.Defaults() {
		rec.fields[name] = v
	}
}

// normalize converts driver-native scalars into the field bag's value set.
// Text columns arrive as []byte from some drivers.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
