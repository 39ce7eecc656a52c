// Package naming converts database identifiers into Java identifiers.
package naming

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const underline = "_"

// Strategy selects how a table or column name becomes a property name.
type Strategy string

const (
	NoChange             Strategy = "nochange"
	UnderlineToCamel     Strategy = "underline_to_camel"
	RemovePrefix         Strategy = "remove_prefix"
	RemovePrefixAndCamel Strategy = "remove_prefix_and_camel"
)

var strategies = []Strategy{NoChange, UnderlineToCamel, RemovePrefix, RemovePrefixAndCamel}

// ParseStrategy validates a configured strategy name. Empty means NoChange.
func ParseStrategy(s string) (Strategy, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoChange, nil
	}
	for _, st := range strategies {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown naming strategy %q (valid: %s, %s, %s, %s)", s,
		NoChange, UnderlineToCamel, RemovePrefix, RemovePrefixAndCamel)
}

// Apply transforms name. Unknown strategies leave it unchanged.
func (s Strategy) Apply(name string) string {
	switch s {
	case UnderlineToCamel:
		return UnderlineToCamelCase(name)
	case RemovePrefix:
		return RemovePrefixOf(name)
	case RemovePrefixAndCamel:
		return RemovePrefixAndCamelCase(name)
	default:
		return name
	}
}

// EntityName is the upper-camel type name for a table.
func (s Strategy) EntityName(table string) string {
	return CapitalFirst(s.Apply(table))
}

// UnderlineToCamelCase turns "USER_info__id" into "userInfoId". Names without
// an underscore only get their first character lower-cased.
func UnderlineToCamelCase(name string) string {
	if isBlank(name) {
		return ""
	}
	if !strings.Contains(name, underline) {
		return lowerFirst(name)
	}
	var b strings.Builder
	for _, part := range strings.Split(name, underline) {
		if isBlank(part) {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(strings.ToLower(part))
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(strings.ToLower(part[size:]))
	}
	return b.String()
}

// RemovePrefixOf drops everything up to and including the first underscore.
func RemovePrefixOf(name string) string {
	if isBlank(name) {
		return ""
	}
	idx := strings.Index(name, underline)
	if idx == -1 {
		return name
	}
	return name[idx+1:]
}

// RemovePrefixAndCamelCase is UnderlineToCamelCase(RemovePrefixOf(name)).
func RemovePrefixAndCamelCase(name string) string {
	return UnderlineToCamelCase(RemovePrefixOf(name))
}

// CapitalFirst upper-cases the first character. Blank input yields "".
func CapitalFirst(name string) string {
	if isBlank(name) {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

func lowerFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
