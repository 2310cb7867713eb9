package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
	"modernc.org/sqlite"

	"github.com/roach88/staffroll/internal/roster"
)

// Extended result codes shared by both drivers.
const (
	codeConstraintPrimaryKey = 1555
	codeConstraintUnique     = 2067
)

// isUniqueViolation reports whether err is a primary-key or unique constraint
// failure from either driver.
func isUniqueViolation(err error) bool {
	var cgoErr sqlite3.Error
	if errors.As(err, &cgoErr) {
		return cgoErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			cgoErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	var pureErr *sqlite.Error
	if errors.As(err, &pureErr) {
		return pureErr.Code() == codeConstraintPrimaryKey || pureErr.Code() == codeConstraintUnique
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// storageError wraps a driver error for op, passing sql.ErrNoRows through
// unchanged so callers can still map it.
func storageError(op string, err error) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return roster.NewStorageError(op, err)
}
