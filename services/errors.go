package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when a referenced entity does not exist. Services
// wrap it with the entity and id, so callers match with errors.Is.
var ErrNotFound = errors.New("record not found")

const mysqlDupEntryCode = 1062

// ValidationError reports one or more domain-invariant violations as a
// field → message map, suitable for a structured error response.
type ValidationError struct {
	Fields map[string]string
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) add(field, message string) {
	e.Fields[field] = message
}

// orNil lets validators accumulate failures and return a single error.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func validationErrorf(field, format string, args ...interface{}) *ValidationError {
	ve := newValidationError()
	ve.add(field, fmt.Sprintf(format, args...))
	return ve
}

// DuplicateError reports a uniqueness violation on a single field.
type DuplicateError struct {
	Field   string
	Message string
}

func (e *DuplicateError) Error() string {
	return e.Field + ": " + e.Message
}

// isDuplicateKey recognizes unique-constraint violations from MySQL (typed
// error 1062) and from SQLite's UNIQUE failure message used in tests.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDupEntryCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

func notFoundErr(entity string, id uint) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}
