package model

import (
	"errors"
	"fmt"
)

// Domain errors. Every failure of a domain operation reaches its caller as
// (or wrapping) one of these; none is swallowed and none retries.
var (
	// ErrNotFound means a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock means a sale would drive an item's stock negative.
	// The operation performs zero writes.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidFormat means an import payload could not be parsed into
	// known record variants. The operation performs zero writes.
	ErrInvalidFormat = errors.New("invalid import format")
)

// ValidationError reports bad user input on a single field. It is
// recoverable; the caller re-submits the action.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validationf builds a ValidationError for a field.
func Validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
