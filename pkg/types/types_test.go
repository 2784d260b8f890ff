package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaHelpers(t *testing.T) {
	s := Schema{
		{Name: "id", PrimaryKey: true, AutoGenerated: true},
		{Name: "name"},
		{Name: "price", Default: int64(0)},
	}

	pk, ok := s.PrimaryKey()
	assert.True(t, ok)
	assert.Equal(t, "id", pk)

	assert.True(t, s.Has("name"))
	assert.False(t, s.Has("color"))
	assert.Equal(t, []string{"id", "name", "price"}, s.Names())

	col, ok := s.Column("price")
	assert.True(t, ok)
	assert.Equal(t, int64(0), col.Default)

	_, ok = Schema{{Name: "a"}}.PrimaryKey()
	assert.False(t, ok)
}

func TestSelectionClearAndReset(t *testing.T) {
	sel := Selection{Mode: ByFieldMap, Predicate: "name = ?", Args: []any{"Bolt"}}
	assert.True(t, sel.Bound())

	sel.Clear()
	assert.False(t, sel.Bound())
	assert.Equal(t, ByFieldMap, sel.Mode, "Clear keeps the construction mode")
	assert.Nil(t, sel.Args)

	sel = Selection{Mode: ByPrimaryKey, Predicate: "id = ?", Args: []any{5}}
	sel.Reset()
	assert.Equal(t, Selection{}, sel)
}

func TestSelectionModeString(t *testing.T) {
	assert.Equal(t, "primary-key", ByPrimaryKey.String())
	assert.Equal(t, "field-map", ByFieldMap.String())
	assert.Equal(t, "predicate", ByPredicate.String())
	assert.Equal(t, "unselected", Unselected.String())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"valid sqlite", Config{Driver: DriverSQLite, DSN: "a.db"}, nil},
		{"valid postgres", Config{Driver: DriverPostgres, DSN: "postgres://x"}, nil},
		{"empty driver", Config{DSN: "a.db"}, ErrDriverEmpty},
		{"unknown driver", Config{Driver: "oracle", DSN: "x"}, ErrUnknownDriver},
		{"empty dsn", Config{Driver: DriverSQLite}, ErrDSNEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.Validate(), tt.want)
		})
	}
}
