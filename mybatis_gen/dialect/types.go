package dialect

import "strings"

// Java property types produced by the mappers.
const (
	TypeString     = "String"
	TypeLong       = "Long"
	TypeInteger    = "Integer"
	TypeDate       = "Date"
	TypeBoolean    = "Boolean"
	TypeBigDecimal = "BigDecimal"
	TypeByteArray  = "byte[]"
	TypeFloat      = "Float"
	TypeDouble     = "Double"
	TypeObject     = "Object"
)

const defaultFieldType = TypeString

// typeRule maps a column type to a property type when any of its
// substrings occurs in the column type.
type typeRule struct {
	contains []string
	javaType string
}

type typeCascade []typeRule

// Get walks the cascade in order; substrings overlap ("bigint" holds "int")
// so the first hit wins.
func (c typeCascade) Get(columnType string) string {
	for _, rule := range c {
		for _, s := range rule.contains {
			if strings.Contains(columnType, s) {
				return rule.javaType
			}
		}
	}
	return defaultFieldType
}

var mysqlTypes = typeCascade{
	{[]string{"char"}, TypeString},
	{[]string{"bigint"}, TypeLong},
	{[]string{"int"}, TypeInteger},
	{[]string{"date", "timestamp"}, TypeDate},
	{[]string{"text"}, TypeString},
	{[]string{"bit"}, TypeBoolean},
	{[]string{"decimal"}, TypeBigDecimal},
	{[]string{"blob"}, TypeByteArray},
	{[]string{"float"}, TypeFloat},
	{[]string{"double"}, TypeDouble},
}

var oracleTypes = typeCascade{
	{[]string{"CHAR"}, TypeString},
	{[]string{"DATE", "TIMESTAMP"}, TypeDate},
	{[]string{"NUMBER"}, TypeDouble},
	{[]string{"FLOAT"}, TypeFloat},
	{[]string{"BLOB"}, TypeObject},
	{[]string{"RAW"}, TypeByteArray},
}

// MySQLType maps a MySQL column type such as "bigint(20) unsigned".
func MySQLType(columnType string) string {
	return mysqlTypes.Get(strings.ToLower(columnType))
}

// OracleType maps an Oracle column type such as "TIMESTAMP(6)".
func OracleType(columnType string) string {
	return oracleTypes.Get(strings.ToUpper(columnType))
}
