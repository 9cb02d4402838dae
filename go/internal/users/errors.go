package users

import "errors"

// ErrValidation marks a request rejected before reaching the store
var ErrValidation = errors.New("validation failed")

// ValidationError carries the message shown to the caller
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
