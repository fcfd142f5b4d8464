package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// RejectionError reports a mutation refused by the data: a duplicate natural key,
// a scheduling conflict, a duplicate enrollment or a missing referenced row.
// Callers only learn that the request did not succeed.
type RejectionError struct {
	Reason string
}

func NewRejection(reason string) *RejectionError {
	return &RejectionError{Reason: reason}
}

func (err *RejectionError) Error() string {
	return err.Reason
}

// ErrTxConflict rejects a transaction aborted by a concurrent one.
var ErrTxConflict = NewRejection("the data changed concurrently")

// IsRejection reports whether err (or its cause) is a *RejectionError.
func IsRejection(err error) bool {
	var rej *RejectionError
	return errors.As(err, &rej)
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
