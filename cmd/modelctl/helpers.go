// Shared helpers for modelctl commands: opening the engine, parsing
// criteria and field values from argv, and printing records.
package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/wennys/modelbuddy/internal/schema"
	"github.com/wennys/modelbuddy/internal/selection"
	"github.com/wennys/modelbuddy/pkg/model"
	"github.com/wennys/modelbuddy/pkg/types"
)

// sqlDriverNames maps config driver names to database/sql driver names.
var sqlDriverNames = map[string]string{
	types.DriverSQLite:   "sqlite",
	types.DriverMySQL:    "mysql",
	types.DriverPostgres: "pgx",
}

// cliEntity satisfies model.Tabler for a table named on the command line.
type cliEntity struct {
	table string
}

func (e cliEntity) TableName() string { return e.table }

// openEngine opens the store handle from the resolved driver and DSN and
// wraps it in an engine. The caller must close the returned *sql.DB.
func openEngine() (*sql.DB, *model.Engine, error) {
	driver := resolveDriver()
	dsn, err := resolveDSN()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve dsn: %w", err)
	}

	cfg := types.Config{Driver: driver, DSN: dsn}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	dialect, err := schema.ForDriver(driver)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(sqlDriverNames[driver], dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", driver, err)
	}
	return db, model.NewEngine(db, dialect), nil
}

// fieldPairPattern matches a column=value criterion argument.
var fieldPairPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*=`)

// parseCriterion classifies command-line criterion arguments:
//   - every argument of the form column=value: field-map selection
//   - first argument containing a space or comparison operator: predicate,
//     remaining arguments bind its placeholders
//   - single argument otherwise: primary key value
func parseCriterion(args []string) (selection.Criterion, error) {
	if len(args) == 0 {
		return selection.Criterion{}, fmt.Errorf("missing selection criterion")
	}

	allPairs := true
	for _, a := range args {
		if !fieldPairPattern.MatchString(a) {
			allPairs = false
			break
		}
	}
	if allPairs {
		fields := make(types.Fields, 0, len(args))
		for _, a := range args {
			name, raw, _ := strings.Cut(a, "=")
			fields = append(fields, types.Field{Name: name, Value: parseScalar(raw)})
		}
		return selection.Where(fields), nil
	}

	if strings.ContainsAny(args[0], " =<>") {
		bound := make([]any, 0, len(args)-1)
		for _, a := range args[1:] {
			bound = append(bound, parseScalar(a))
		}
		return selection.Predicate(args[0], bound...), nil
	}

	if len(args) != 1 {
		return selection.Criterion{}, fmt.Errorf("primary key selection takes exactly one value")
	}
	return selection.Key(parseScalar(args[0])), nil
}

// parseScalar converts an argv token to the narrowest matching scalar.
func parseScalar(s string) any {
	if s == "null" {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

// parseFieldFlags converts repeated --field k=v flags into ordered fields.
func parseFieldFlags(raw []string) (types.Fields, error) {
	fields := make(types.Fields, 0, len(raw))
	for _, a := range raw {
		name, val, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed --field %q (want column=value)", a)
		}
		fields = append(fields, types.Field{Name: name, Value: parseScalar(val)})
	}
	return fields, nil
}

// printRecord writes the record's field bag to stdout, as JSON when --json
// is set, otherwise as aligned name/value lines in schema order.
func printRecord(rec *model.Record) error {
	fields := rec.Fields()
	if flagJSON {
		out, err := json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	names := rec.Schema().Names()
	// Loaded rows may carry columns the schema ordering missed; print
	// leftovers alphabetically.
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	var extra []string
	for name := range fields {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)

	w := os.Stdout
	for _, name := range append(names, extra...) {
		if v, ok := fields[name]; ok {
			fmt.Fprintf(w, "%s\t%v\n", name, v)
		}
	}
	return nil
}
