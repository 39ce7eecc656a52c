package helpers

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrIncludeExclude is returned before any query when both table lists are set.
	ErrIncludeExclude = errors.New("include and exclude cannot both be configured")
	// ErrDataAccess matches every *QueryError.
	ErrDataAccess = errors.New("data access failure")
)

// QueryError wraps a failed metadata query.
type QueryError struct {
	Table string // empty for the table listing
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("list tables (%s): %v", e.Query, e.Err)
	}
	return fmt.Sprintf("list columns of %s (%s): %v", e.Table, e.Query, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

func (e *QueryError) Is(target error) bool { return target == ErrDataAccess }

// Code returns the server error number of a mysql failure, 0 for anything else.
func (e *QueryError) Code() uint16 {
	var me *mysql.MySQLError
	if errors.As(e.Err, &me) {
		return me.Number
	}
	return 0
}
