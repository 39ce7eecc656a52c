package mybatis_gen

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"mapper-gen/mybatis_gen/dialect"
	"mapper-gen/mybatis_gen/helpers"
	"mapper-gen/mybatis_gen/naming"
	"mapper-gen/pool"
)

// id generation strategies understood by the entity template
const (
	IDAuto     = "AUTO"
	IDWorker   = "ID_WORKER"
	IDUUID     = "UUID"
	IDInput    = "INPUT"
	LongType   = "longtype"
	StringType = "stringtype"

	longSuperService   = "com.baomidou.framework.service.ISuperService"
	stringSuperService = "com.baomidou.framework.service.ICommonService"
)

// DefaultConfigFile is read when no --config flag is given.
const DefaultConfigFile = "mapper-gen.yaml"

type Config struct {
	DataSource    pool.Config    `yaml:"dataSource"`
	Strategy      StrategyConfig `yaml:"strategy"`
	PackageInfo   PackageConfig  `yaml:"packageInfo"`
	OutputDir     string         `yaml:"outputDir"`
	FileOverride  bool           `yaml:"fileOverride"` // overwrite files that already exist
	EnableCache   bool           `yaml:"enableCache"`  // emit the second level cache in mapper xml
	Author        string         `yaml:"author"`
	OpenOutputDir bool           `yaml:"openOutputDir"` // open the output folder when done

	Logger *slog.Logger     `yaml:"-"`
	Now    func() time.Time `yaml:"-"`
}

type StrategyConfig struct {
	// name strategy for tables and columns
	Naming naming.Strategy `yaml:"naming"`
	// AUTO, ID_WORKER, UUID or INPUT
	IDGenType string `yaml:"idGenType"`
	// longtype or stringtype, picks the service super interface
	ServiceIDType string `yaml:"serviceIdType"`
	// overrides the super interface picked by ServiceIDType
	SuperServiceClass string   `yaml:"superServiceClass"`
	Include           []string `yaml:"include"`
	Exclude           []string `yaml:"exclude"`
}

// PackageConfig holds the sub package of every artifact kind. A blank sub
// package disables the kind.
type PackageConfig struct {
	Parent      string `yaml:"parent"`
	Entity      string `yaml:"entity"`
	Mapper      string `yaml:"mapper"`
	XML         string `yaml:"xml"`
	Service     string `yaml:"service"`
	ServiceImpl string `yaml:"serviceImpl"`
}

// DefaultConfig returns the values used for anything a config file omits.
func DefaultConfig() Config {
	return Config{
		DataSource: pool.Config{DBType: dialect.MySQL},
		Strategy: StrategyConfig{
			Naming:        naming.NoChange,
			IDGenType:     IDWorker,
			ServiceIDType: StringType,
		},
		PackageInfo: PackageConfig{
			Parent:      "com.baomidou",
			Entity:      "entity",
			Mapper:      "mapper",
			XML:         "mapper.xml",
			Service:     "service",
			ServiceImpl: "service.impl",
		},
		EnableCache: true,
		Author:      "author",
	}
}

// LoadConfig reads a yaml config file on top of DefaultConfig. ${VAR}
// references are expanded from the environment before decoding.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// SaveConfig writes cfg as yaml.
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate normalizes the naming strategy and rejects settings that can
// never produce a run. It touches no database.
func (config *Config) Validate() error {
	ns, err := naming.ParseStrategy(string(config.Strategy.Naming))
	if err != nil {
		return err
	}
	config.Strategy.Naming = ns
	return helpers.CheckOptions(config.Strategy.Options(nil))
}

// WithInclude replaces the include list, used by command line overrides.
func (config *Config) WithInclude(tables ...string) {
	config.Strategy.Include = tables
}

// WithExclude replaces the exclude list, used by command line overrides.
func (config *Config) WithExclude(tables ...string) {
	config.Strategy.Exclude = tables
}

// WithNamingStrategy replaces the naming strategy.
func (config *Config) WithNamingStrategy(ns naming.Strategy) {
	config.Strategy.Naming = ns
}

func (config *Config) logger() *slog.Logger {
	if config.Logger != nil {
		return config.Logger
	}
	return slog.Default()
}

func (config *Config) now() time.Time {
	if config.Now != nil {
		return config.Now()
	}
	return time.Now()
}

// Options converts the strategy into introspection options.
func (s StrategyConfig) Options(log *slog.Logger) helpers.Options {
	return helpers.Options{
		Naming:  s.Naming,
		Include: s.Include,
		Exclude: s.Exclude,
		Logger:  log,
	}
}

// SuperClass returns the fully qualified service super interface.
func (s StrategyConfig) SuperClass() string {
	if strings.TrimSpace(s.SuperServiceClass) != "" {
		return strings.TrimSpace(s.SuperServiceClass)
	}
	if strings.EqualFold(strings.TrimSpace(s.ServiceIDType), LongType) {
		return longSuperService
	}
	return stringSuperService
}

// IDType normalizes IDGenType, anything unknown becomes ID_WORKER.
func (s StrategyConfig) IDType() string {
	switch strings.ToUpper(strings.TrimSpace(s.IDGenType)) {
	case IDAuto:
		return IDAuto
	case IDInput:
		return IDInput
	case IDUUID:
		return IDUUID
	default:
		return IDWorker
	}
}
