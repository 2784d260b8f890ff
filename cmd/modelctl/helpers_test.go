// Unit tests for CLI argument parsing.
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wennys/modelbuddy/pkg/types"
)

func TestParseScalar(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"5", int64(5)},
		{"2.5", float64(2.5)},
		{"true", true},
		{"null", nil},
		{"Bolt", "Bolt"},
		{"007x", "007x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseScalar(tt.in), "input %q", tt.in)
	}
}

func TestParseCriterion(t *testing.T) {
	t.Run("bare key", func(t *testing.T) {
		crit, err := parseCriterion([]string{"5"})
		require.NoError(t, err)
		assert.Equal(t, types.ByPrimaryKey, crit.Mode)
		assert.Equal(t, int64(5), crit.Key)
	})

	t.Run("field pairs keep order", func(t *testing.T) {
		crit, err := parseCriterion([]string{"name=Bolt", "price=2.5"})
		require.NoError(t, err)
		assert.Equal(t, types.ByFieldMap, crit.Mode)
		assert.Equal(t, types.Fields{
			{Name: "name", Value: "Bolt"},
			{Name: "price", Value: 2.5},
		}, crit.Fields)
	})

	t.Run("predicate with bound args", func(t *testing.T) {
		crit, err := parseCriterion([]string{"price > ?", "10"})
		require.NoError(t, err)
		assert.Equal(t, types.ByPredicate, crit.Mode)
		assert.Equal(t, "price > ?", crit.Expr)
		assert.Equal(t, []any{int64(10)}, crit.Args)
	})

	t.Run("no arguments", func(t *testing.T) {
		_, err := parseCriterion(nil)
		assert.Error(t, err)
	})

	t.Run("stray extra key values", func(t *testing.T) {
		_, err := parseCriterion([]string{"5", "6"})
		assert.Error(t, err)
	})
}

func TestParseFieldFlags(t *testing.T) {
	fields, err := parseFieldFlags([]string{"name=Bolt", "price=2.5"})
	require.NoError(t, err)
	assert.Equal(t, types.Fields{
		{Name: "name", Value: "Bolt"},
		{Name: "price", Value: 2.5},
	}, fields)

	_, err = parseFieldFlags([]string{"oops"})
	assert.Error(t, err)
}
