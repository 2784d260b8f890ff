// Get command opens a record by criterion and prints its fields.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <table> <criterion> [args...]",
	Short: "Open a record and print its fields",
	Long: `Get opens one record of the named table. The criterion is either a bare
primary key value, column=value pairs, or a predicate string whose ?
placeholders bind the remaining arguments.

Example:
  modelctl get widgets 5
  modelctl get widgets name=Bolt
  modelctl get widgets "price > ?" 10`,
	Args: cobra.MinimumNArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	db, eng, err := openEngine()
	if err != nil {
		return err
	}
	defer db.Close()

	crit, err := parseCriterion(args[1:])
	if err != nil {
		return err
	}

	rec, err := eng.Open(cliEntity{table: args[0]}, crit)
	if err != nil {
		return err
	}
	if !rec.Bound() {
		return fmt.Errorf("no row in %q matches the criterion", args[0])
	}
	return printRecord(rec)
}
