// Set command opens (or freshly creates) a record, applies field values,
// and persists it.
package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wennys/modelbuddy/pkg/model"
)

var flagFields []string

var setCmd = &cobra.Command{
	Use:   "set <table> [criterion [args...]]",
	Short: "Create or update a record",
	Long: `Set opens a record by criterion (or starts a fresh one when no criterion
is given), applies the --field values, and persists it: an INSERT when no
row matched, an UPDATE otherwise.

A fresh record whose primary key column is textual and still empty gets a
generated UUID v7.

Example:
  modelctl set widgets --field name=Bolt --field price=2.5
  modelctl set widgets 5 --field price=3.0
  modelctl set widgets name=Bolt --field price=3.0`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSet,
}

func init() {
	setCmd.Flags().StringArrayVar(&flagFields, "field", nil, "column=value to assign (repeatable)")
}

func runSet(cmd *cobra.Command, args []string) error {
	fields, err := parseFieldFlags(flagFields)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return fmt.Errorf("set requires at least one --field")
	}

	db, eng, err := openEngine()
	if err != nil {
		return err
	}
	defer db.Close()

	entity := cliEntity{table: args[0]}

	var rec *model.Record
	if len(args) == 1 {
		rec, err = eng.New(entity)
	} else {
		var crit any
		crit, err = parseCriterion(args[1:])
		if err != nil {
			return err
		}
		rec, err = eng.Open(entity, crit)
	}
	if err != nil {
		return err
	}

	if err := rec.Apply(fields); err != nil {
		return err
	}
	fillTextPrimaryKey(rec)

	if err := eng.Update(entity, rec); err != nil {
		return err
	}
	return printRecord(rec)
}

// fillTextPrimaryKey assigns a UUID v7 to an unbound record whose primary
// key column is textual, not store-assigned, and still empty.
func fillTextPrimaryKey(rec *model.Record) {
	if rec.Bound() {
		return
	}
	name, value := rec.PrimaryKey()
	if name == "" || (value != nil && value != "") {
		return
	}
	col, ok := rec.Schema().Column(name)
	if !ok || col.AutoGenerated || !textColumn(col.Type) {
		return
	}
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	_ = rec.Set(name, id.String())
}

// textColumn reports whether a declared column type holds text.
func textColumn(ctype string) bool {
	upper := strings.ToUpper(ctype)
	return strings.Contains(upper, "TEXT") ||
		strings.Contains(upper, "CHAR") ||
		strings.Contains(upper, "UUID") ||
		strings.Contains(upper, "CLOB")
}
