// Unit tests for dialect selection, default parsing, and the Postgres
// placeholder rewrite.
package schema

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wennys/modelbuddy/pkg/types"
)

func TestForDriver(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{types.DriverSQLite, "sqlite"},
		{types.DriverMySQL, "mysql"},
		{types.DriverPostgres, "postgres"},
	}
	for _, tt := range tests {
		d, err := ForDriver(tt.driver)
		require.NoError(t, err)
		assert.Equal(t, tt.want, d.Name())
	}

	_, err := ForDriver("oracle")
	assert.ErrorIs(t, err, types.ErrUnknownDriver)
}

func TestParseDefault(t *testing.T) {
	tests := []struct {
		name string
		raw  sql.NullString
		want any
	}{
		{"no default", sql.NullString{}, nil},
		{"explicit NULL", sql.NullString{String: "NULL", Valid: true}, nil},
		{"integer", sql.NullString{String: "0", Valid: true}, int64(0)},
		{"float", sql.NullString{String: "2.5", Valid: true}, float64(2.5)},
		{"quoted text", sql.NullString{String: "'none'", Valid: true}, "none"},
		{"escaped quote", sql.NullString{String: "'it''s'", Valid: true}, "it's"},
		{"bare keyword", sql.NullString{String: "CURRENT_TIMESTAMP", Valid: true}, "CURRENT_TIMESTAMP"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDefault(tt.raw))
		})
	}
}

func TestPostgresRebind(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SELECT * FROM t WHERE id = ?", "SELECT * FROM t WHERE id = $1"},
		{"a = ? AND b = ?", "a = $1 AND b = $2"},
		{"no placeholders", "no placeholders"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Postgres{}.Rebind(tt.in))
	}
}

func TestMySQLDeleteOne(t *testing.T) {
	got := MySQL{}.DeleteOne("widgets", "name = ?")
	assert.Equal(t, "DELETE FROM widgets WHERE name = ? LIMIT 1", got)
}

func TestPostgresDeleteOne(t *testing.T) {
	got := Postgres{}.DeleteOne("widgets", "name = ?")
	assert.Equal(t,
		"DELETE FROM widgets WHERE ctid IN (SELECT ctid FROM widgets WHERE name = ? LIMIT 1)",
		got)
}
