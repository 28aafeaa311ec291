// Package error defines domain-specific errors for the Condo Ledger application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrUnitNotFound is returned when a billing unit does not exist in the catalog.
	ErrUnitNotFound = errors.New("unit not found")

	// ErrNegativePaidAmount is returned when a charge reports more paid than owed,
	// or a negative paid amount. Statement totals are never silently corrected.
	ErrNegativePaidAmount = errors.New("charge paid amount out of range")

	// ErrStatementImbalance is returned when the statement walk leaves the pool
	// negative, which indicates corrupted payment or reservation records.
	ErrStatementImbalance = errors.New("statement pool went negative")
)

// LedgerErrorCode defines error codes for statement building errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Not-found errors (01XXXX)
	ErrCodeUnitNotFound LedgerErrorCode = "LGR-010001"

	// Consistency errors (02XXXX)
	ErrCodeNegativePaidAmount LedgerErrorCode = "LGR-020001"
	ErrCodeStatementImbalance LedgerErrorCode = "LGR-020002"
)

// LedgerError represents a statement building error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
