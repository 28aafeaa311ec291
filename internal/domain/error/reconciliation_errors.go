package error

import "errors"

// Reconciliation domain errors.
var (
	// ErrBankTransactionNotFound is returned when a bank transaction is not found.
	ErrBankTransactionNotFound = errors.New("bank transaction not found")

	// ErrInvalidPeriod is returned when the reconciliation period is empty or
	// inverted.
	ErrInvalidPeriod = errors.New("invalid reconciliation period")

	// ErrEmptyStatement is returned when a bank statement import carries no rows.
	ErrEmptyStatement = errors.New("bank statement contains no movements")
)

// ReconciliationErrorCode defines error codes for reconciliation errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type ReconciliationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod  ReconciliationErrorCode = "REC-010001"
	ErrCodeEmptyStatement ReconciliationErrorCode = "REC-010002"

	// Not-found errors (02XXXX)
	ErrCodeBankTransactionNotFound ReconciliationErrorCode = "REC-020001"
)

// ReconciliationError represents a reconciliation error with code and message.
type ReconciliationError struct {
	Code    ReconciliationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReconciliationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// NewReconciliationError creates a new ReconciliationError with the given code and message.
func NewReconciliationError(code ReconciliationErrorCode, message string, err error) *ReconciliationError {
	return &ReconciliationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
