package roster

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateKey  = errors.New("employee id already exists")
	ErrNotFound      = errors.New("employee not found")
	ErrInvalidFormat = errors.New("joining date must be YYYY-MM")
	ErrStorage       = errors.New("storage error")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNameMismatch  = errors.New("employee name does not match id")
)

// StorageError reports a failure of the underlying database.
//
// It matches ErrStorage through errors.Is and unwraps to the driver error, so
// callers can tell "not there" from "could not look".
type StorageError struct {
	// Op names the store operation, e.g. "insert" or "list".
	Op string

	// Err is the driver or connection error.
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorage, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports ErrStorage as a match in addition to the wrapped chain.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NewStorageError wraps err as a StorageError for op.
// Returns nil when err is nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// ValidationError describes one field that breaks the record contract.
type ValidationError struct {
	Field   string
	Message string

	// Cause is the taxonomy member this failure belongs to.
	// ErrInvalidFormat for joining dates, ErrInvalidInput otherwise.
	Cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is makes every ValidationError match ErrInvalidInput, whatever its Cause.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Cause:   ErrInvalidInput,
	}
}

// IsStorageError returns true if err is (or wraps) a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// Error kinds returned by Kind. They are stable strings used in CLI output
// and scenario files.
const (
	KindDuplicateKey  = "duplicate_key"
	KindNotFound      = "not_found"
	KindInvalidFormat = "invalid_format"
	KindInvalidInput  = "invalid_input"
	KindNameMismatch  = "name_mismatch"
	KindStorage       = "storage"
	KindUnknown       = "unknown"
)

// Kind names the taxonomy member err belongs to. Returns "" for nil.
// A malformed joining date reports KindInvalidFormat even though it also
// matches ErrInvalidInput.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicateKey):
		return KindDuplicateKey
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidFormat):
		return KindInvalidFormat
	case errors.Is(err, ErrNameMismatch):
		return KindNameMismatch
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrStorage):
		return KindStorage
	default:
		return KindUnknown
	}
}
