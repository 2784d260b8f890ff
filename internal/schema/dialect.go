// Package schema introspects table definitions through per-driver dialects
// and caches them for the lifetime of the process.
package schema

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/wennys/modelbuddy/pkg/types"
)

// Dialect adapts introspection and statement syntax to one database driver.
// Implementations are stateless and safe for concurrent use.
type Dialect interface {
	// Name returns the driver name the dialect serves.
	Name() string

	// Describe introspects the named table. It returns ErrTableNotFound
	// (wrapped) when the table does not exist.
	Describe(db *sql.DB, table string) (types.Schema, error)

	// Rebind rewrites ?-style positional placeholders into the driver's
	// native placeholder syntax. Dialects whose driver accepts ? return
	// the query unchanged.
	Rebind(query string) string

	// DeleteOne builds a DELETE statement that removes at most one row
	// matching the predicate, regardless of how many rows match.
	DeleteOne(table, predicate string) string
}

// ForDriver returns the dialect for a driver name from types.Config.
func ForDriver(driver string) (Dialect, error) {
	switch driver {
	case types.DriverSQLite:
		return SQLite{}, nil
	case types.DriverMySQL:
		return MySQL{}, nil
	case types.DriverPostgres:
		return Postgres{}, nil
	default:
		return nil, types.ErrUnknownDriver
	}
}

// parseDefault converts a declared default captured as text into a Go
// scalar: nil for NULL or no default, int64 or float64 for numeric
// literals, the unquoted text otherwise.
func parseDefault(raw sql.NullString) any {
	if !raw.Valid {
		return nil
	}
	s := strings.TrimSpace(raw.String)
	if s == "" || strings.EqualFold(s, "NULL") {
		return nil
	}
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
