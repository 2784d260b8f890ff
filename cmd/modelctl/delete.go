// Delete command removes the row a criterion resolves to.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <table> <criterion> [args...]",
	Short: "Delete the record a criterion resolves to",
	Long: `Delete opens one record of the named table and removes its backing row.
At most one row is removed even when the criterion matches several.

Example:
  modelctl delete widgets 5
  modelctl delete widgets name=Bolt`,
	Args: cobra.MinimumNArgs(2),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
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
	if err := eng.Delete(rec); err != nil {
		return err
	}
	fmt.Println("deleted")
	return nil
}
