package mybatis_gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapper-gen/mybatis_gen/dialect"
	"mapper-gen/mybatis_gen/helpers"
	"mapper-gen/mybatis_gen/naming"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, dialect.MySQL, cfg.DataSource.DBType)
	assert.Equal(t, naming.NoChange, cfg.Strategy.Naming)
	assert.Equal(t, "com.baomidou", cfg.PackageInfo.Parent)
	assert.Equal(t, "mapper.xml", cfg.PackageInfo.XML)
	assert.Equal(t, "service.impl", cfg.PackageInfo.ServiceImpl)
	assert.True(t, cfg.EnableCache)
	assert.False(t, cfg.FileOverride)
	assert.False(t, cfg.OpenOutputDir)
	assert.Equal(t, "author", cfg.Author)
	assert.NoError(t, cfg.Validate())
}

func TestStrategyConfig_SuperClass(t *testing.T) {
	tests := []struct {
		name     string
		strategy StrategyConfig
		want     string
	}{
		{name: "string id", strategy: StrategyConfig{ServiceIDType: StringType}, want: "com.baomidou.framework.service.ICommonService"},
		{name: "long id", strategy: StrategyConfig{ServiceIDType: "LongType"}, want: "com.baomidou.framework.service.ISuperService"},
		{name: "blank id", strategy: StrategyConfig{}, want: "com.baomidou.framework.service.ICommonService"},
		{name: "explicit", strategy: StrategyConfig{ServiceIDType: LongType, SuperServiceClass: " com.example.IBase "}, want: "com.example.IBase"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.strategy.SuperClass())
		})
	}
}

func TestStrategyConfig_IDType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"auto", IDAuto},
		{"INPUT", IDInput},
		{" uuid ", IDUUID},
		{"id_worker", IDWorker},
		{"", IDWorker},
		{"sequence", IDWorker},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StrategyConfig{IDGenType: tt.in}.IDType())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		anyErr  bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "naming normalized", mutate: func(c *Config) { c.WithNamingStrategy("Underline_To_Camel") }},
		{name: "unknown naming", mutate: func(c *Config) { c.WithNamingStrategy("camel") }, anyErr: true},
		{
			name: "include and exclude",
			mutate: func(c *Config) {
				c.WithInclude("a")
				c.WithExclude("b")
			},
			wantErr: helpers.ErrIncludeExclude,
		},
		{
			name: "blank exclude still counts",
			mutate: func(c *Config) {
				c.WithInclude("a")
				c.WithExclude(" ")
			},
			wantErr: helpers.ErrIncludeExclude,
		},
		{
			name: "blank include still counts",
			mutate: func(c *Config) {
				c.WithInclude(" ")
				c.WithExclude("t_log")
			},
			wantErr: helpers.ErrIncludeExclude,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateNormalizesNaming(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WithNamingStrategy("REMOVE_PREFIX")
	require.NoError(t, cfg.Validate())
	assert.Equal(t, naming.RemovePrefix, cfg.Strategy.Naming)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("MAPPER_GEN_TEST_PASSWORD", "s3cret")
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	content := `
dataSource:
  dbType: oracle
  host: db.local
  port: 1521
  username: scott
  password: ${MAPPER_GEN_TEST_PASSWORD}
  database: ORCL
strategy:
  naming: remove_prefix_and_camel
  include: [T_USER, T_ROLE]
packageInfo:
  parent: com.example
  service: ""
outputDir: /tmp/gen
fileOverride: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, dialect.Oracle, cfg.DataSource.DBType)
	assert.Equal(t, "s3cret", cfg.DataSource.Password)
	assert.Equal(t, 1521, cfg.DataSource.Port)
	assert.Equal(t, naming.RemovePrefixAndCamel, cfg.Strategy.Naming)
	assert.Equal(t, []string{"T_USER", "T_ROLE"}, cfg.Strategy.Include)
	assert.Equal(t, "com.example", cfg.PackageInfo.Parent)
	assert.Equal(t, "", cfg.PackageInfo.Service)
	assert.Equal(t, "entity", cfg.PackageInfo.Entity)
	assert.Equal(t, "/tmp/gen", cfg.OutputDir)
	assert.True(t, cfg.FileOverride)
	assert.True(t, cfg.EnableCache)
	assert.Equal(t, "author", cfg.Author)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: [unclosed"), 0644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	cfg := DefaultConfig()
	cfg.Strategy.Exclude = []string{"t_log"}
	require.NoError(t, SaveConfig(path, &cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"t_log"}, loaded.Strategy.Exclude)
	assert.Equal(t, cfg.PackageInfo, loaded.PackageInfo)
}
