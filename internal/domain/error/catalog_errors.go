package error

import "errors"

// Charge catalog domain errors.
var (
	// ErrProjectNotFound is returned when a special project does not exist.
	ErrProjectNotFound = errors.New("special project not found")

	// ErrDuplicateUnitNumber is returned when a unit number is already taken.
	ErrDuplicateUnitNumber = errors.New("unit number already exists")

	// ErrDuplicatePeriodLabel is returned when a billing period label is
	// already registered.
	ErrDuplicatePeriodLabel = errors.New("billing period already exists")

	// ErrInvalidAliquot is returned when a unit's aliquot is not in (0, 1].
	ErrInvalidAliquot = errors.New("aliquot must be greater than zero and at most one")

	// ErrInvalidPeriodLabel is returned when a billing period label is not in
	// YYYY-MM form.
	ErrInvalidPeriodLabel = errors.New("period label must be in YYYY-MM form")

	// ErrInvalidInstallmentCount is returned when a special project has a
	// non-positive installment count.
	ErrInvalidInstallmentCount = errors.New("installment count must be positive")

	// ErrExpenseNotFound is returned when an expense does not exist.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when an expense amount is not positive.
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")
)

// CatalogErrorCode defines error codes for charge catalog errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CatalogErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDuplicateUnitNumber     CatalogErrorCode = "CAT-010001"
	ErrCodeDuplicatePeriodLabel    CatalogErrorCode = "CAT-010002"
	ErrCodeInvalidAliquot          CatalogErrorCode = "CAT-010003"
	ErrCodeInvalidPeriodLabel      CatalogErrorCode = "CAT-010004"
	ErrCodeInvalidInstallmentCount CatalogErrorCode = "CAT-010005"
	ErrCodeInvalidExpenseAmount    CatalogErrorCode = "CAT-010006"

	// Not-found errors (02XXXX)
	ErrCodeProjectNotFound CatalogErrorCode = "CAT-020001"
	ErrCodeExpenseNotFound CatalogErrorCode = "CAT-020002"
)

// CatalogError represents a charge catalog error with code and message.
type CatalogError struct {
	Code    CatalogErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a new CatalogError with the given code and message.
func NewCatalogError(code CatalogErrorCode, message string, err error) *CatalogError {
	return &CatalogError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
