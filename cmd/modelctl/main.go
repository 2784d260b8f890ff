// Package main provides the modelctl CLI, a thin driver for the modelbuddy
// record engine: describe a table, open a record by criterion, mutate and
// persist it, or delete it.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/wennys/modelbuddy/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode separates user mistakes (bad criterion, unknown column or table,
// missing configuration) from store failures.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrUnknownColumn),
		errors.Is(err, types.ErrUnknownDriver),
		errors.Is(err, types.ErrTableNotFound),
		errors.Is(err, types.ErrNotBound),
		errors.Is(err, types.ErrDriverEmpty),
		errors.Is(err, types.ErrDSNEmpty):
		return exitUserError
	}

	var selErr *types.SelectionError
	if errors.As(err, &selErr) {
		return exitUserError
	}

	var schemaErr *types.SchemaError
	var queryErr *types.QueryError
	var persistErr *types.PersistError
	if errors.As(err, &schemaErr) || errors.As(err, &queryErr) || errors.As(err, &persistErr) {
		return exitSysError
	}
	return exitUserError
}
