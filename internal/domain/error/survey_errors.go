// Package error defines domain-specific errors for the Walletive application.
package error

import "errors"

// Survey domain errors.
var (
	// ErrBlankText is returned when a text answer is empty after trimming.
	ErrBlankText = errors.New("answer cannot be blank")

	// ErrInvalidNumber is returned when an answer is not a non-negative number.
	ErrInvalidNumber = errors.New("answer must be a non-negative number")

	// ErrInvalidInteger is returned when an answer is not a positive integer.
	ErrInvalidInteger = errors.New("answer must be a positive integer")

	// ErrInvalidChoice is returned when a yes/no answer is not one of the two choices.
	ErrInvalidChoice = errors.New("answer must be one of the offered choices")

	// ErrSurveyCompleted is returned when answering a survey that already reached its end.
	ErrSurveyCompleted = errors.New("survey already completed")

	// ErrSurveyIncomplete is returned when a submission is built from an unfinished survey.
	ErrSurveyIncomplete = errors.New("survey is not complete")

	// ErrMissingAnswer is returned when a required answer is absent from a submission.
	ErrMissingAnswer = errors.New("required answer is missing")

	// ErrSessionNotFound is returned when a survey session does not exist or expired.
	ErrSessionNotFound = errors.New("survey session not found")
)

// SurveyErrorCode defines error codes for survey errors.
// Format: SRV-XXYYYY where XX is category and YYYY is specific error.
type SurveyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBlankText      SurveyErrorCode = "SRV-010001"
	ErrCodeInvalidNumber  SurveyErrorCode = "SRV-010002"
	ErrCodeInvalidInteger SurveyErrorCode = "SRV-010003"
	ErrCodeInvalidChoice  SurveyErrorCode = "SRV-010004"
	ErrCodeMissingAnswer  SurveyErrorCode = "SRV-010005"
	ErrCodeInvalidRequest SurveyErrorCode = "SRV-010006"

	// State errors (02XXXX)
	ErrCodeSurveyCompleted  SurveyErrorCode = "SRV-020001"
	ErrCodeSurveyIncomplete SurveyErrorCode = "SRV-020002"
	ErrCodeSessionNotFound  SurveyErrorCode = "SRV-020003"

	// Persistence errors (03XXXX)
	ErrCodeSubmissionFailed SurveyErrorCode = "SRV-030001"

	// Request errors (04XXXX)
	ErrCodeRateLimited SurveyErrorCode = "SRV-040001"
)

// SurveyError represents a survey error with code and message.
type SurveyError struct {
	Code    SurveyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SurveyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SurveyError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether the error is an input validation failure
// that should be resolved by prompting the same question again.
func (e *SurveyError) IsValidation() bool {
	switch e.Code {
	case ErrCodeBlankText, ErrCodeInvalidNumber, ErrCodeInvalidInteger, ErrCodeInvalidChoice:
		return true
	}
	return false
}

// NewSurveyError creates a new SurveyError with the given code and message.
func NewSurveyError(code SurveyErrorCode, message string, err error) *SurveyError {
	return &SurveyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
