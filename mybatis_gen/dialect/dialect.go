// Package dialect holds the per-database metadata queries and the column type
// mapping for every supported engine.
package dialect

import (
	"fmt"
	"strings"
)

const (
	MySQL  = "mysql"
	Oracle = "oracle"
)

// Dialect describes how to read table and column metadata from one engine.
type Dialect struct {
	Name             string
	TablesSQL        string // lists table names
	TableCommentsSQL string // lists table names with their comments
	ColumnsSQL       string // fmt format, every %[1]s is the table name

	// result column labels, matched case-insensitively
	TableName    string
	TableComment string
	FieldName    string
	FieldType    string
	FieldComment string
	FieldKey     string

	PrimaryKey string // FieldKey value marking a primary key column

	MapType func(columnType string) string
}

// ColumnsQuery returns the column listing statement for table.
func (d Dialect) ColumnsQuery(table string) string {
	return fmt.Sprintf(d.ColumnsSQL, table)
}

// IsPrimaryKey reports whether a key indicator value marks a primary key.
func (d Dialect) IsPrimaryKey(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && strings.EqualFold(key, d.PrimaryKey)
}

// catalog is ordered; the first row is the fallback for unknown names.
var catalog = []Dialect{
	{
		Name:             MySQL,
		TablesSQL:        "show tables",
		TableCommentsSQL: "show table status",
		ColumnsSQL:       "show full fields from `%[1]s`",
		TableName:        "NAME",
		TableComment:     "COMMENT",
		FieldName:        "FIELD",
		FieldType:        "TYPE",
		FieldComment:     "COMMENT",
		FieldKey:         "KEY",
		PrimaryKey:       "PRI",
		MapType:          MySQLType,
	},
	{
		Name:             Oracle,
		TablesSQL:        "SELECT * FROM USER_TABLES",
		TableCommentsSQL: "SELECT * FROM USER_TAB_COMMENTS",
		ColumnsSQL: "SELECT AB.COLUMN_NAME, AB.DATA_TYPE, AB.COMMENTS, DECODE(AC.POSITION, '1', 'PRI') KEY " +
			"FROM (SELECT A.COLUMN_NAME, A.DATA_TYPE, B.COMMENTS FROM USER_TAB_COLUMNS A, USER_COL_COMMENTS B " +
			"WHERE A.TABLE_NAME = B.TABLE_NAME AND A.COLUMN_NAME = B.COLUMN_NAME AND A.TABLE_NAME = '%[1]s') AB " +
			"LEFT JOIN (SELECT CU.COLUMN_NAME, CU.POSITION FROM USER_CONS_COLUMNS CU, USER_CONSTRAINTS AU " +
			"WHERE CU.CONSTRAINT_NAME = AU.CONSTRAINT_NAME AND AU.CONSTRAINT_TYPE = 'P' " +
			"AND AU.TABLE_NAME = '%[1]s') AC ON AB.COLUMN_NAME = AC.COLUMN_NAME",
		TableName:    "TABLE_NAME",
		TableComment: "COMMENTS",
		FieldName:    "COLUMN_NAME",
		FieldType:    "DATA_TYPE",
		FieldComment: "COMMENTS",
		FieldKey:     "KEY",
		PrimaryKey:   "PRI",
		MapType:      OracleType,
	},
}

// Lookup returns the dialect registered under name. Unknown names fall back
// to MySQL.
func Lookup(name string) Dialect {
	d, _ := Find(name)
	return d
}

// Find is like Lookup but also reports whether name was registered.
func Find(name string) (Dialect, bool) {
	name = strings.TrimSpace(name)
	for _, d := range catalog {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return catalog[0], false
}

// Names lists the registered dialects in catalog order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, d := range catalog {
		names = append(names, d.Name)
	}
	return names
}
