package helpers

import (
	"database/sql"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"mapper-gen/mybatis_gen/dialect"
	"mapper-gen/mybatis_gen/naming"
	"mapper-gen/utils"
)

// Options controls which tables are read and how their names are converted.
type Options struct {
	Naming  naming.Strategy
	Include []string // only these tables, case-insensitive
	Exclude []string // every table but these, case-insensitive
	Logger  *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Report collects the non-fatal findings of one scan.
type Report struct {
	Empty     bool     // the listing returned no table name at all
	BlankRows int      // listing rows skipped for a blank table name
	NotFound  []string // include/exclude entries matching no table
}

// CheckOptions rejects an include list combined with an exclude list. Entries
// are taken as given, a blank entry still makes its list non-empty.
func CheckOptions(opts Options) error {
	if len(opts.Include) > 0 && len(opts.Exclude) > 0 {
		return ErrIncludeExclude
	}
	return nil
}

// GetTablesInfo reads every selected table with its columns. Queries run one
// after another and each result set is closed before the next query starts.
// Any query error aborts the scan and no tables are returned.
func GetTablesInfo(db *gorm.DB, d dialect.Dialect, opts Options) ([]*TableInfo, *Report, error) {
	if err := CheckOptions(opts); err != nil {
		return nil, nil, err
	}
	log := opts.logger()
	include, exclude := opts.Include, opts.Exclude

	report := &Report{}
	var tables []*TableInfo
	var seen []string
	err := query(db, log, "", d.TableCommentsSQL, func(r record) {
		name := r.get(d.TableName)
		if strings.TrimSpace(name) == "" {
			report.BlankRows++
			log.Warn("skip table row without name", "dialect", d.Name)
			return
		}
		seen = append(seen, name)
		if !selected(name, include, exclude) {
			return
		}
		tables = append(tables, &TableInfo{Name: name, Comment: r.get(d.TableComment)})
	})
	if err != nil {
		return nil, nil, err
	}

	if len(seen) == 0 {
		report.Empty = true
		log.Warn("database has no tables", "dialect", d.Name)
	}
	for _, entry := range append(include, exclude...) {
		if !utils.ContainsFold(seen, entry) {
			report.NotFound = append(report.NotFound, entry)
		}
	}
	if len(report.NotFound) > 0 {
		log.Warn("tables do not exist in database", "tables", report.NotFound)
	}

	for _, t := range tables {
		fields, err := GetTableFields(db, d, t.Name, opts)
		if err != nil {
			return nil, nil, err
		}
		t.Fields = fields
	}
	return ProcessTable(tables, opts.Naming), report, nil
}

func selected(name string, include, exclude []string) bool {
	switch {
	case len(include) > 0:
		return utils.ContainsFold(include, name)
	case len(exclude) > 0:
		return !utils.ContainsFold(exclude, name)
	default:
		return true
	}
}

// GetTableFields reads the columns of table in the order the engine reports
// them. Only the first primary key column is flagged, so composite keys end
// up with a single key field.
func GetTableFields(db *gorm.DB, d dialect.Dialect, table string, opts Options) ([]TableField, error) {
	var fields []TableField
	haveID := false
	err := query(db, opts.logger(), table, d.ColumnsQuery(table), func(r record) {
		field := TableField{
			Name:    r.get(d.FieldName),
			Type:    r.get(d.FieldType),
			Comment: r.get(d.FieldComment),
		}
		if !haveID && d.IsPrimaryKey(r.get(d.FieldKey)) {
			field.KeyFlag = true
			haveID = true
		}
		field.PropertyName = opts.Naming.Apply(field.Name)
		field.PropertyType = d.MapType(field.Type)
		fields = append(fields, field)
	})
	if err != nil {
		return nil, err
	}
	return fields, nil
}

// ListTables returns the raw table names reported by the dialect's table query.
func ListTables(db *gorm.DB, d dialect.Dialect, opts Options) ([]string, error) {
	log := opts.logger()
	var names []string
	err := query(db, log, "", d.TablesSQL, func(r record) {
		// mysql labels the only column Tables_in_<schema>
		name, ok := r.lookup(d.TableName)
		if !ok && len(r.values) > 0 {
			name = r.values[0].String
		}
		if strings.TrimSpace(name) == "" {
			log.Warn("skip table row without name", "dialect", d.Name)
			return
		}
		names = append(names, name)
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// ProcessTable fills the entity name and the names derived from it.
func ProcessTable(tables []*TableInfo, strategy naming.Strategy) []*TableInfo {
	for _, t := range tables {
		t.EntityName = strategy.EntityName(t.Name)
		if t.EntityName == "" {
			t.EntityName = naming.CapitalFirst(t.Name)
		}
		t.MapperName = t.EntityName + "Mapper"
		t.XMLName = t.MapperName
		t.ServiceName = "I" + t.EntityName + "Service"
		t.ServiceImplName = t.EntityName + "ServiceImpl"
	}
	return tables
}

// record is one result row; labels match case-insensitively.
type record struct {
	columns []string
	values  []sql.NullString
}

func (r record) lookup(column string) (string, bool) {
	for i, c := range r.columns {
		if strings.EqualFold(c, column) {
			return r.values[i].String, true
		}
	}
	return "", false
}

func (r record) get(column string) string {
	v, _ := r.lookup(column)
	return v
}

func query(db *gorm.DB, log *slog.Logger, table, stmt string, fn func(record)) error {
	rows, err := db.Raw(stmt).Rows()
	if err != nil {
		return &QueryError{Table: table, Query: stmt, Err: err}
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("close result set", "query", stmt, "err", cerr)
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return &QueryError{Table: table, Query: stmt, Err: err}
	}
	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return &QueryError{Table: table, Query: stmt, Err: err}
		}
		fn(record{columns: columns, values: values})
	}
	if err := rows.Err(); err != nil {
		return &QueryError{Table: table, Query: stmt, Err: err}
	}
	return nil
}
