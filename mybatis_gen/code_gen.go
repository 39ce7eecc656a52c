package mybatis_gen

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gorm.io/gorm"

	"mapper-gen/mybatis_gen/dialect"
	"mapper-gen/mybatis_gen/helpers"
	"mapper-gen/mybatis_gen/templates"
)

// artifact kinds, also the keys of the package and path maps
const (
	Entity      = "Entity"
	Mapper      = "Mapper"
	XML         = "Xml"
	Service     = "Service"
	ServiceImpl = "ServiceImpl"
)

const (
	javaSuffix = ".java"
	xmlSuffix  = ".xml"
	dateLayout = "2006-01-02"
)

type artifact struct {
	kind     string
	template string
	name     string // file name, %s is the entity name
}

// generation order for every table
var artifacts = []artifact{
	{kind: Entity, template: templates.EntityID, name: "%s" + javaSuffix},
	{kind: Mapper, template: templates.MapperID, name: "%sMapper" + javaSuffix},
	{kind: XML, template: templates.XMLID, name: "%sMapper" + xmlSuffix},
	{kind: Service, template: templates.ServiceID, name: "I%sService" + javaSuffix},
	{kind: ServiceImpl, template: templates.ServiceImplID, name: "%sServiceImpl" + javaSuffix},
}

type Generator struct {
	db      *gorm.DB
	config  Config
	dialect dialect.Dialect
	log     *slog.Logger
}

// NewGenerator init generator. The generator owns db and closes it once the
// schema has been read.
func NewGenerator(db *gorm.DB, config Config) *Generator {
	log := config.logger()
	d, ok := dialect.Find(config.DataSource.DBType)
	if !ok {
		d = dialect.Lookup(config.DataSource.DBType)
		log.Warn("unknown database type, using default", "dbType", config.DataSource.DBType, "dialect", d.Name, "known", dialect.Names())
	}
	return &Generator{db: db, config: config, dialect: d, log: log}
}

// TableContext is what a template sees for one table.
type TableContext struct {
	Package           map[string]string
	Table             *helpers.TableInfo
	Entity            string
	IDGenType         string
	SuperClassPackage string
	SuperClass        string
	EnableCache       bool
	Author            string
	Date              string
}

// Analyze reads the schema and builds one context per selected table. The
// connection is released before it returns, whatever the outcome.
func (g *Generator) Analyze() ([]*TableContext, *helpers.Report, error) {
	defer g.release()
	if err := g.config.Validate(); err != nil {
		return nil, nil, err
	}
	tables, report, err := helpers.GetTablesInfo(g.db, g.dialect, g.config.Strategy.Options(g.log))
	if err != nil {
		return nil, nil, fmt.Errorf("read schema: %w", err)
	}

	pkg, _ := PackageInfo(g.config.OutputDir, g.config.PackageInfo)
	superClass := g.config.Strategy.SuperClass()
	date := g.config.now().Format(dateLayout)
	contexts := make([]*TableContext, 0, len(tables))
	for _, table := range tables {
		contexts = append(contexts, &TableContext{
			Package:           pkg,
			Table:             table,
			Entity:            table.EntityName,
			IDGenType:         g.config.Strategy.IDType(),
			SuperClassPackage: superClass,
			SuperClass:        superClass[strings.LastIndex(superClass, ".")+1:],
			EnableCache:       g.config.EnableCache,
			Author:            g.config.Author,
			Date:              date,
		})
	}
	return contexts, report, nil
}

// OutputFiles returns the path pattern of every enabled kind. The %s of a
// pattern takes the entity name; a % in the directory is escaped.
func (g *Generator) OutputFiles() map[string]string {
	_, paths := PackageInfo(g.config.OutputDir, g.config.PackageInfo)
	files := make(map[string]string, len(paths))
	for _, a := range artifacts {
		dir, ok := paths[a.kind]
		if !ok {
			continue
		}
		files[a.kind] = strings.ReplaceAll(dir, "%", "%%") + string(os.PathSeparator) + a.name
	}
	return files
}

// Execute analyzes the schema and hands every artifact to sink, table by
// table.
func (g *Generator) Execute(sink Sink) (*helpers.Report, error) {
	contexts, report, err := g.Analyze()
	if err != nil {
		return nil, err
	}
	g.log.Info("generating", "tables", len(contexts), "dialect", g.dialect.Name)
	files := g.OutputFiles()
	for _, ctx := range contexts {
		for _, a := range artifacts {
			pattern, ok := files[a.kind]
			if !ok {
				continue
			}
			path := fmt.Sprintf(pattern, ctx.Entity)
			if err := sink.Write(a.template, path, ctx); err != nil {
				return report, fmt.Errorf("write %s: %w", path, err)
			}
		}
	}
	return report, nil
}

// OutputDir returns the root the generated files are written under.
func (g *Generator) OutputDir() string {
	return outputRoot(g.config.OutputDir)
}

func (g *Generator) release() {
	sqlDB, err := g.db.DB()
	if err != nil {
		g.log.Warn("release connection", "err", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		g.log.Warn("close connection", "err", err)
	}
}

// PackageInfo resolves the java package and the directory of every kind.
// Kinds with a blank sub package are left out of both maps.
func PackageInfo(outputDir string, config PackageConfig) (pkg map[string]string, paths map[string]string) {
	pkg = map[string]string{}
	paths = map[string]string{}
	root := outputRoot(outputDir)
	subs := []struct{ kind, sub string }{
		{Entity, config.Entity},
		{Mapper, config.Mapper},
		{XML, config.XML},
		{Service, config.Service},
		{ServiceImpl, config.ServiceImpl},
	}
	for _, s := range subs {
		if strings.TrimSpace(s.sub) == "" {
			continue
		}
		name := joinPackage(config.Parent, s.sub)
		pkg[s.kind] = name
		paths[s.kind] = root + strings.ReplaceAll(name, ".", string(os.PathSeparator))
	}
	return pkg, paths
}

func joinPackage(parent, sub string) string {
	if strings.TrimSpace(parent) == "" {
		return sub
	}
	return parent + "." + sub
}

// outputRoot defaults to the temp dir and always ends with a separator.
func outputRoot(dir string) string {
	if strings.TrimSpace(dir) == "" {
		dir = os.TempDir()
	}
	if !strings.HasSuffix(dir, string(os.PathSeparator)) {
		dir += string(os.PathSeparator)
	}
	return dir
}
