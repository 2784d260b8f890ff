package schema

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/wennys/modelbuddy/pkg/types"
)

// mysqlNoSuchTable is MySQL server error 1146 (ER_NO_SUCH_TABLE).
const mysqlNoSuchTable = 1146

// MySQL introspects tables via DESCRIBE.
type MySQL struct{}

// Name implements Dialect.
func (MySQL) Name() string { return types.DriverMySQL }

// Rebind implements Dialect. MySQL accepts ? placeholders natively.
func (MySQL) Rebind(query string) string { return query }

// DeleteOne implements Dialect.
func (MySQL) DeleteOne(table, predicate string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s LIMIT 1", table, predicate)
}

// Describe implements Dialect. DESCRIBE reports one row per column:
// Field, Type, Null, Key, Default, Extra. Key "PRI" marks the primary key
// and Extra "auto_increment" marks a store-assigned column.
func (MySQL) Describe(db *sql.DB, table string) (types.Schema, error) {
	rows, err := db.Query(fmt.Sprintf("DESCRIBE `%s`", table))
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlNoSuchTable {
			return nil, types.ErrTableNotFound
		}
		return nil, fmt.Errorf("describe: %w", err)
	}
	defer rows.Close()

	var schema types.Schema
	for rows.Next() {
		var (
			field, ctype, null, key string
			dflt                    sql.NullString
			extra                   string
		)
		if err := rows.Scan(&field, &ctype, &null, &key, &dflt, &extra); err != nil {
			return nil, fmt.Errorf("scanning describe row: %w", err)
		}
		schema = append(schema, types.Column{
			Name:          field,
			Type:          ctype,
			Default:       parseDefault(dflt),
			PrimaryKey:    key == "PRI",
			AutoGenerated: strings.Contains(strings.ToLower(extra), "auto_increment"),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(schema) == 0 {
		return nil, types.ErrTableNotFound
	}
	return schema, nil
}
