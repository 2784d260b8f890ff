// Unit tests for criterion classification and predicate construction.
package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wennys/modelbuddy/pkg/types"
)

// widgetSchema mirrors a small table with an integer key.
var widgetSchema = types.Schema{
	{Name: "id", Type: "INTEGER", PrimaryKey: true, AutoGenerated: true},
	{Name: "name", Type: "TEXT"},
	{Name: "price", Type: "REAL", Default: int64(0)},
}

func TestSniffClassification(t *testing.T) {
	tests := []struct {
		name      string
		criterion any
		args      []any
		want      types.SelectionMode
	}{
		{"bare int is a key", 5, nil, types.ByPrimaryKey},
		{"plain string is a key", "abc123", nil, types.ByPrimaryKey},
		{"fields list", types.Fields{{Name: "name", Value: "Bolt"}}, nil, types.ByFieldMap},
		{"plain map", map[string]any{"name": "Bolt"}, nil, types.ByFieldMap},
		{"string with operator", "price > ?", []any{10}, types.ByPredicate},
		{"string with space", "name like", nil, types.ByPredicate},
		{"string with equals", "name=?", []any{"x"}, types.ByPredicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sniff(tt.criterion, tt.args...)
			assert.Equal(t, tt.want, got.Mode)
		})
	}
}

func TestSniffMisclassifiesOperatorValues(t *testing.T) {
	// The classification is syntactic: a string VALUE that happens to
	// contain a space reads as a predicate. The explicit constructors
	// exist for exactly this case.
	got := Sniff("Bolt M3")
	assert.Equal(t, types.ByPredicate, got.Mode)
	assert.Equal(t, types.ByPrimaryKey, Key("Bolt M3").Mode)
}

func TestResolvePrimaryKey(t *testing.T) {
	sel, err := Resolve(widgetSchema, Key(5))
	require.NoError(t, err)

	assert.Equal(t, "id = ?", sel.Predicate)
	assert.Equal(t, []any{5}, sel.Args)
	assert.Equal(t, types.ByPrimaryKey, sel.Mode)
}

func TestResolvePrimaryKeyWithoutKeyColumn(t *testing.T) {
	keyless := types.Schema{{Name: "a"}, {Name: "b"}}

	_, err := Resolve(keyless, Key(5))
	assert.ErrorIs(t, err, types.ErrNoPrimaryKey)
	var selErr *types.SelectionError
	assert.ErrorAs(t, err, &selErr)
}

func TestResolveFieldMapPreservesOrder(t *testing.T) {
	sel, err := Resolve(widgetSchema, Where(types.Fields{
		{Name: "name", Value: "Bolt"},
		{Name: "price", Value: 2.5},
	}))
	require.NoError(t, err)

	assert.Equal(t, "name = ? AND price = ?", sel.Predicate)
	assert.Equal(t, []any{"Bolt", 2.5}, sel.Args)
}

func TestResolveFieldMapErrors(t *testing.T) {
	_, err := Resolve(widgetSchema, Where(nil))
	assert.ErrorIs(t, err, types.ErrEmptyFieldMap)

	_, err = Resolve(widgetSchema, Where(types.Fields{{Name: "color", Value: "red"}}))
	assert.ErrorIs(t, err, types.ErrUnknownColumn)
	assert.Contains(t, err.Error(), "color")
}

func TestResolvePredicate(t *testing.T) {
	sel, err := Resolve(widgetSchema, Predicate("price > ?", 10))
	require.NoError(t, err)

	assert.Equal(t, "price > ?", sel.Predicate)
	assert.Equal(t, []any{10}, sel.Args)
}

func TestResolvePredicateStripsWhere(t *testing.T) {
	plain, err := Resolve(widgetSchema, Predicate("price > ?", 10))
	require.NoError(t, err)
	prefixed, err2 := Resolve(widgetSchema, Predicate("WHERE price > ?", 10))
	require.NoError(t, err2)
	lower, err3 := Resolve(widgetSchema, Predicate("where price > ?", 10))
	require.NoError(t, err3)

	assert.Equal(t, plain.Predicate, prefixed.Predicate)
	assert.Equal(t, plain.Predicate, lower.Predicate)
}

func TestResolvePredicateRequiresArgs(t *testing.T) {
	_, err := Resolve(widgetSchema, Predicate("price > 10"))
	assert.ErrorIs(t, err, types.ErrMissingArgs)
}

func TestSniffMapIsDeterministic(t *testing.T) {
	m := map[string]any{"price": 2.5, "name": "Bolt"}

	for i := 0; i < 10; i++ {
		got := Sniff(m)
		require.Equal(t, types.Fields{
			{Name: "name", Value: "Bolt"},
			{Name: "price", Value: 2.5},
		}, got.Fields)
	}
}
