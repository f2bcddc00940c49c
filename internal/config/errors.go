package config

import (
	"errors"
	"fmt"
)

// ErrMissingConfiguration marks configuration that must be present before
// any processing starts.
var ErrMissingConfiguration = errors.New("missing required configuration")

// AppError carries a short machine code alongside the message.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewMissingConfigError(message string) *AppError {
	return &AppError{
		Code:    "CONFIG_ERROR",
		Message: message,
		Cause:   ErrMissingConfiguration,
	}
}
