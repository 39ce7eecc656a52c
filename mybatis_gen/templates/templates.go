// Package templates holds the bodies of the five generated artifacts.
package templates

import (
	"fmt"
	"text/template"

	"github.com/iancoleman/strcase"

	"mapper-gen/mybatis_gen/naming"
)

// Template ids, one per artifact kind.
const (
	EntityID      = "entity.java"
	MapperID      = "mapper.java"
	XMLID         = "mapper.xml"
	ServiceID     = "service.java"
	ServiceImplID = "serviceImpl.java"
)

// FileHeader heads every generated java file.
const FileHeader = `// Generated by mapper-gen on {{.Date}}.
`

var bodies = map[string]string{
	EntityID:      Entity,
	MapperID:      Mapper,
	XMLID:         MapperXML,
	ServiceID:     Service,
	ServiceImplID: ServiceImpl,
}

// Get returns the body registered under id.
func Get(id string) (string, error) {
	body, ok := bodies[id]
	if !ok {
		return "", fmt.Errorf("unknown template %q", id)
	}
	return body, nil
}

// Parse compiles the template registered under id. Missing package entries
// render as empty strings.
func Parse(id string) (*template.Template, error) {
	body, err := Get(id)
	if err != nil {
		return nil, err
	}
	return template.New(id).Funcs(Funcs()).Option("missingkey=zero").Parse(body)
}

// Funcs returns the function map available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"capitalFirst": naming.CapitalFirst,
		"lowerCamel":   strcase.ToLowerCamel,
		"screamSnake":  strcase.ToScreamingSnake,
	}
}
