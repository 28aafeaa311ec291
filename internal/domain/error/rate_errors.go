package error

import "errors"

// Currency rate domain errors.
var (
	// ErrRateUnavailable is returned when the external rate collaborator cannot
	// be reached. Callers may fall back to a manually supplied rate; this is
	// not a core failure.
	ErrRateUnavailable = errors.New("currency rate service unavailable")
)

// RateErrorCode defines error codes for currency rate errors.
type RateErrorCode string

const (
	// External fetch errors (03XXXX)
	ErrCodeRateUnavailable RateErrorCode = "RATE-030001"
)

// RateError represents a currency rate error with code and message.
type RateError struct {
	Code    RateErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RateError) Unwrap() error {
	return e.Err
}

// NewRateError creates a new RateError with the given code and message.
func NewRateError(code RateErrorCode, message string, err error) *RateError {
	return &RateError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
