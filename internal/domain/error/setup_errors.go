// Package error defines domain-specific errors for the Walletive application.
package error

import "errors"

// Setup domain errors.
var (
	// ErrSetupAlreadyCompleted is returned when a survey is submitted after setup finished.
	ErrSetupAlreadyCompleted = errors.New("setup already completed")
)

// SetupErrorCode defines error codes for setup errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SetupErrorCode string

const (
	ErrCodeSetupAlreadyCompleted SetupErrorCode = "SET-010001"
)

// SetupError represents a setup error with code and message.
type SetupError struct {
	Code    SetupErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SetupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SetupError) Unwrap() error {
	return e.Err
}

// NewSetupError creates a new SetupError with the given code and message.
func NewSetupError(code SetupErrorCode, message string, err error) *SetupError {
	return &SetupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
