// Package pool opens the database handle the generator reads the schema from.
package pool

import (
	"fmt"

	oracle "github.com/godoes/gorm-oracle"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mapper-gen/mybatis_gen/dialect"
)

// Open returns a gorm handle limited to a single connection, so metadata
// queries never run concurrently. The caller owns the handle.
func Open(c Config, log logger.Interface) (*gorm.DB, error) {
	dsn, err := c.DSN()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Default.LogMode(logger.Silent)
	}
	var dialector gorm.Dialector
	switch c.Dialect().Name {
	case dialect.Oracle:
		dialector = oracle.Open(dsn)
	default:
		dialector = mysql.Open(dsn)
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: log})
	if err != nil {
		return nil, fmt.Errorf("failed to connect %s: %w", c.Dialect().Name, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	return db, nil
}
