package helpers

import (
	"bytes"
	"fmt"
	"strings"

	"mapper-gen/mybatis_gen/dialect"
)

// TableField column info of one table
type TableField struct {
	Name         string // user_id
	Type         string // bigint(20)
	Comment      string // 用户ID
	PropertyName string // userId
	PropertyType string // Long
	KeyFlag      bool   // first primary key column only
}

// ResultTag builds the resultMap entry of the field for the mapper xml.
func (f TableField) ResultTag() string {
	var buf bytes.Buffer
	if f.KeyFlag {
		buf.WriteString("<id")
	} else {
		buf.WriteString("<result")
	}
	buf.WriteString(fmt.Sprintf(` column="%s" property="%s"`, f.Name, f.PropertyName))
	if jdbc := jdbcType(f.PropertyType); jdbc != "" {
		buf.WriteString(fmt.Sprintf(` jdbcType="%s"`, jdbc))
	}
	buf.WriteString(" />")
	return buf.String()
}

// jdbcType only covers types MyBatis cannot infer from a null value.
func jdbcType(propertyType string) string {
	switch propertyType {
	case dialect.TypeDate:
		return "TIMESTAMP"
	case dialect.TypeByteArray:
		return "BLOB"
	default:
		return ""
	}
}

// TableInfo table info with the names of every generated artifact
type TableInfo struct {
	Name            string // t_user_info
	Comment         string
	EntityName      string // UserInfo
	MapperName      string // UserInfoMapper
	XMLName         string // UserInfoMapper
	ServiceName     string // IUserInfoService
	ServiceImplName string // UserInfoServiceImpl
	Fields          []TableField
}

// FieldNames joins the column names, e.g. "id, user_name, age".
func (t *TableInfo) FieldNames() string {
	names := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		names = append(names, f.Name)
	}
	return strings.Join(names, ", ")
}

// HasDate reports whether any property needs java.util.Date.
func (t *TableInfo) HasDate() bool {
	for _, f := range t.Fields {
		if f.PropertyType == dialect.TypeDate {
			return true
		}
	}
	return false
}

// HasBigDecimal reports whether any property needs java.math.BigDecimal.
func (t *TableInfo) HasBigDecimal() bool {
	for _, f := range t.Fields {
		if f.PropertyType == dialect.TypeBigDecimal {
			return true
		}
	}
	return false
}

// KeyField returns the primary key field, or nil when the table has none.
func (t *TableInfo) KeyField() *TableField {
	for i := range t.Fields {
		if t.Fields[i].KeyFlag {
			return &t.Fields[i]
		}
	}
	return nil
}
