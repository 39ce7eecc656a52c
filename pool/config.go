package pool

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	go_ora "github.com/sijms/go-ora/v2"

	"mapper-gen/mybatis_gen/dialect"
)

const (
	defaultMySQLPort  = 3306
	defaultOraclePort = 1521
)

// Config describes where the schema lives. URL wins over the discrete fields.
type Config struct {
	DBType   string            `yaml:"dbType"`
	URL      string            `yaml:"url"`
	Host     string            `yaml:"host"`
	Port     int               `yaml:"port"`
	Username string            `yaml:"username"`
	Password string            `yaml:"password"`
	Database string            `yaml:"database"` // schema on mysql, service name on oracle
	Params   map[string]string `yaml:"params"`
}

// Dialect returns the catalog row for DBType, mysql when unknown.
func (c Config) Dialect() dialect.Dialect {
	return dialect.Lookup(c.DBType)
}

// DSN builds the driver connection string.
func (c Config) DSN() (string, error) {
	if c.Dialect().Name == dialect.Oracle {
		return c.oracleDSN()
	}
	return c.mysqlDSN()
}

func (c Config) mysqlDSN() (string, error) {
	if url := strings.TrimSpace(c.URL); url != "" {
		if _, err := mysql.ParseDSN(url); err != nil {
			return "", fmt.Errorf("invalid mysql url: %w", err)
		}
		return url, nil
	}
	if strings.TrimSpace(c.Host) == "" {
		return "", fmt.Errorf("mysql data source needs a url or a host")
	}
	cfg := mysql.NewConfig()
	cfg.User = c.Username
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Host, strconv.Itoa(port(c.Port, defaultMySQLPort)))
	cfg.DBName = c.Database
	if len(c.Params) > 0 {
		cfg.Params = c.Params
	}
	return cfg.FormatDSN(), nil
}

func (c Config) oracleDSN() (string, error) {
	if url := strings.TrimSpace(c.URL); url != "" {
		return url, nil
	}
	if strings.TrimSpace(c.Host) == "" {
		return "", fmt.Errorf("oracle data source needs a url or a host")
	}
	return go_ora.BuildUrl(c.Host, port(c.Port, defaultOraclePort), c.Database, c.Username, c.Password, c.Params), nil
}

func port(p, def int) int {
	if p <= 0 {
		return def
	}
	return p
}
