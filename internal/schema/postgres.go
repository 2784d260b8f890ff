package schema

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/wennys/modelbuddy/pkg/types"
)

// Postgres introspects tables through information_schema, connected via the
// pgx stdlib adapter.
type Postgres struct {
	// SearchSchema is the namespace tables are looked up in.
	// Empty means "public".
	SearchSchema string
}

// Name implements Dialect.
func (Postgres) Name() string { return types.DriverPostgres }

// Rebind implements Dialect. Postgres uses $1..$n placeholders; each ? is
// rewritten in order. Literal question marks inside quoted SQL text are not
// supported in predicates.
func (Postgres) Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DeleteOne implements Dialect. Postgres has no DELETE...LIMIT, so the
// one-row bound goes through ctid.
func (Postgres) DeleteOne(table, predicate string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE ctid IN (SELECT ctid FROM %s WHERE %s LIMIT 1)",
		table, table, predicate)
}

func (p Postgres) searchSchema() string {
	if p.SearchSchema == "" {
		return "public"
	}
	return p.SearchSchema
}

// Describe implements Dialect.
func (p Postgres) Describe(db *sql.DB, table string) (types.Schema, error) {
	const colQuery = `
		SELECT column_name, data_type, column_default, is_identity
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position`

	rows, err := db.Query(colQuery, p.searchSchema(), table)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	defer rows.Close()

	var schema types.Schema
	for rows.Next() {
		var (
			name     string
			ctype    string
			dflt     sql.NullString
			identity string
		)
		if err := rows.Scan(&name, &ctype, &dflt, &identity); err != nil {
			return nil, fmt.Errorf("scanning column row: %w", err)
		}
		auto := identity == "YES" ||
			(dflt.Valid && strings.HasPrefix(dflt.String, "nextval("))
		col := types.Column{
			Name:          name,
			Type:          ctype,
			AutoGenerated: auto,
		}
		if !auto {
			// column_default carries a cast suffix ('x'::text).
			if i := strings.Index(dflt.String, "::"); dflt.Valid && i >= 0 {
				dflt.String = dflt.String[:i]
			}
			col.Default = parseDefault(dflt)
		}
		schema = append(schema, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(schema) == 0 {
		return nil, types.ErrTableNotFound
	}

	const pkQuery = `
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		WHERE tc.table_schema = $1 AND tc.table_name = $2
			AND tc.constraint_type = 'PRIMARY KEY'
		ORDER BY kcu.ordinal_position`

	pkRows, err := db.Query(pkQuery, p.searchSchema(), table)
	if err != nil {
		return nil, fmt.Errorf("querying primary key: %w", err)
	}
	defer pkRows.Close()

	for pkRows.Next() {
		var name string
		if err := pkRows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning primary key row: %w", err)
		}
		for i := range schema {
			if schema[i].Name == name {
				schema[i].PrimaryKey = true
			}
		}
	}
	return schema, pkRows.Err()
}
