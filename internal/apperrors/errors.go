package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the acting user lacks the capability for the requested action.
var ErrForbidden = errors.New("permission denied")

// ErrSync indicates that a bank balance could not be persisted. The in-memory
// balance has already been reverted when this error is returned.
var ErrSync = errors.New("bank balance sync failed")

// ErrPersistence indicates a failed write of a transaction record.
var ErrPersistence = errors.New("persistence failed")

// ErrRecompute indicates that a recomputed client ledger could not be stored.
// Recomputation is idempotent, so retrying the whole recompute is safe.
var ErrRecompute = errors.New("ledger recompute failed")

// ErrUpload indicates that a receipt file could not be uploaded.
var ErrUpload = errors.New("receipt upload failed")

// ErrInternal is returned for unexpected failures that must not leak details.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
