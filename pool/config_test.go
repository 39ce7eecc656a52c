package pool

import (
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapper-gen/mybatis_gen/dialect"
)

func TestConfig_MySQLDSN(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		wantAddr string
		wantDB   string
		wantErr  bool
	}{
		{
			name:     "discrete fields",
			config:   Config{DBType: "MySQL", Host: "127.0.0.1", Username: "root", Password: "p@ss", Database: "shop"},
			wantAddr: "127.0.0.1:3306",
			wantDB:   "shop",
		},
		{
			name:     "custom port",
			config:   Config{Host: "db.local", Port: 3307, Username: "app", Database: "crm", Params: map[string]string{"charset": "utf8mb4"}},
			wantAddr: "db.local:3307",
			wantDB:   "crm",
		},
		{
			name:     "url",
			config:   Config{DBType: dialect.MySQL, URL: "root:secret@tcp(10.0.0.1:3306)/box?parseTime=true"},
			wantAddr: "10.0.0.1:3306",
			wantDB:   "box",
		},
		{name: "bad url", config: Config{URL: "root:secret@tcp(10.0.0.1:3306"}, wantErr: true},
		{name: "no host", config: Config{Username: "root"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := tt.config.DSN()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			parsed, err := mysql.ParseDSN(dsn)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, parsed.Addr)
			assert.Equal(t, tt.wantDB, parsed.DBName)
		})
	}
}

func TestConfig_MySQLDSNKeepsCredentials(t *testing.T) {
	dsn, err := Config{Host: "h", Username: "root", Password: "p@ss:word"}.DSN()
	require.NoError(t, err)
	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "root", parsed.User)
	assert.Equal(t, "p@ss:word", parsed.Passwd)
}

func TestConfig_OracleDSN(t *testing.T) {
	dsn, err := Config{DBType: "oracle", Host: "db.local", Username: "scott", Password: "tiger", Database: "ORCL"}.DSN()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dsn, "oracle://scott:tiger@"))
	assert.Contains(t, dsn, "db.local:1521/ORCL")

	dsn, err = Config{DBType: "ORACLE", URL: "oracle://u:p@h:1522/XE"}.DSN()
	require.NoError(t, err)
	assert.Equal(t, "oracle://u:p@h:1522/XE", dsn)

	_, err = Config{DBType: "oracle"}.DSN()
	assert.Error(t, err)
}

func TestConfig_Dialect(t *testing.T) {
	assert.Equal(t, dialect.Oracle, Config{DBType: " Oracle "}.Dialect().Name)
	assert.Equal(t, dialect.MySQL, Config{DBType: "db2"}.Dialect().Name)
	assert.Equal(t, dialect.MySQL, Config{}.Dialect().Name)
}
