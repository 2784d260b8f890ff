package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wennys/modelbuddy/pkg/types"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown column", fmt.Errorf("%w: color", types.ErrUnknownColumn), exitUserError},
		{"missing table", &types.SchemaError{Table: "x", Err: types.ErrTableNotFound}, exitUserError},
		{"bad criterion", &types.SelectionError{Mode: types.ByFieldMap, Err: types.ErrEmptyFieldMap}, exitUserError},
		{"no matching row", errors.New("no row matches"), exitUserError},
		{"store failure on load", &types.QueryError{Table: "x", Err: errors.New("locked")}, exitSysError},
		{"store failure on write", &types.PersistError{Op: "update", Table: "x", Err: errors.New("locked")}, exitSysError},
		{"introspection failure", &types.SchemaError{Table: "x", Err: errors.New("locked")}, exitSysError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
