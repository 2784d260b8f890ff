package schema

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/wennys/modelbuddy/pkg/types"
)

// SQLite introspects tables via PRAGMA table_info.
type SQLite struct{}

// Name implements Dialect.
func (SQLite) Name() string { return types.DriverSQLite }

// Rebind implements Dialect. SQLite accepts ? placeholders natively.
func (SQLite) Rebind(query string) string { return query }

// DeleteOne implements Dialect. SQLite builds without the optional
// DELETE...LIMIT extension, so the one-row bound goes through rowid.
func (SQLite) DeleteOne(table, predicate string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE rowid IN (SELECT rowid FROM %s WHERE %s LIMIT 1)",
		table, table, predicate)
}

// Describe implements Dialect.
func (SQLite) Describe(db *sql.DB, table string) (types.Schema, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("table_info: %w", err)
	}
	defer rows.Close()

	var (
		schema  types.Schema
		ctypes  []string
		pkCount int
	)
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scanning table_info row: %w", err)
		}
		if pk > 0 {
			pkCount++
		}
		schema = append(schema, types.Column{
			Name:       name,
			Type:       ctype,
			Default:    parseDefault(dflt),
			PrimaryKey: pk > 0,
		})
		ctypes = append(ctypes, ctype)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// PRAGMA table_info returns zero rows for a missing table rather
	// than an error.
	if len(schema) == 0 {
		return nil, types.ErrTableNotFound
	}

	// A lone INTEGER PRIMARY KEY is a rowid alias: SQLite assigns the
	// value when the insert omits it.
	if pkCount == 1 {
		for i := range schema {
			if schema[i].PrimaryKey && strings.EqualFold(ctypes[i], "INTEGER") {
				schema[i].AutoGenerated = true
			}
		}
	}
	return schema, nil
}
