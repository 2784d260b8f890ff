// Describe command prints the introspected schema of a table.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <table>",
	Short: "Print a table's introspected columns",
	Long: `Describe introspects the named table through the configured driver and
prints each column's name, type, default, and key/auto-generated flags.

Example:
  modelctl describe widgets
  modelctl --driver mysql --dsn "user:pw@/shop" describe orders`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	db, eng, err := openEngine()
	if err != nil {
		return err
	}
	defer db.Close()

	sch, err := eng.Schema(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := json.MarshalIndent(sch, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	for _, col := range sch {
		line := col.Name + "\t" + col.Type
		if col.PrimaryKey {
			line += "\tPRIMARY KEY"
		}
		if col.AutoGenerated {
			line += "\tAUTO"
		}
		if col.Default != nil {
			line += fmt.Sprintf("\tDEFAULT %v", col.Default)
		}
		fmt.Println(line)
	}
	return nil
}
