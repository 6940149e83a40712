package relocation

import (
	"errors"
	"fmt"
)

// ValidationError rejects an operation before any store write happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrDecisionInFlight means a second decision was attempted on a transfer
// while the first was still waiting on the store.
var ErrDecisionInFlight = errors.New("a decision for this transfer is already in flight")
