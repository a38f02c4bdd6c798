// Package apperrors defines the domain error taxonomy. Services return these
// errors; the API layer is the only place that translates them to HTTP status
// codes. Unauthorized access is deliberately surfaced as the kind-specific
// not-found error so callers cannot probe for foreign-owned ids.
package apperrors

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrModuleNotFound  = errors.New("module not found")
	ErrDeviceNotFound  = errors.New("device not found")

	// ErrConflict signals a duplicate username or email on registration
	ErrConflict = errors.New("username or email already registered")

	// ErrBadUpdateData signals a partial update with no fields present
	ErrBadUpdateData = errors.New("update payload contains no fields")

	ErrUnauthenticated = errors.New("authentication required")
)

// ValidationError reports a payload that is well-formed but semantically
// invalid, such as a unit that does not belong to its measurement type.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidation builds a ValidationError with the given reason
func NewValidation(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsNotFound reports whether err is any of the kind-specific not-found errors
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrModuleNotFound) ||
		errors.Is(err, ErrDeviceNotFound)
}
