package services

import "errors"

// Service-level error taxonomy. Handlers map these onto HTTP statuses;
// anything unrecognized surfaces as an internal storage error.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnauthorized  = errors.New("not authorized for this resource")
	ErrNotAvailable  = errors.New("vehicle is not available for the requested dates")
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrEmailTaken    = errors.New("email already registered")
	ErrBadCredential = errors.New("invalid email or password")
)

// ValidationError carries a caller-facing description of a malformed or
// out-of-range input. Always recoverable by the caller, never retried here.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidationError reports whether err is a validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
