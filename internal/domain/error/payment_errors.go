package error

import "errors"

// Payment domain errors.
var (
	// ErrNoChargesSelected is returned when a payment is registered without
	// selecting any charge to settle.
	ErrNoChargesSelected = errors.New("no charges selected")

	// ErrInvalidPaymentAmount is returned when the computed payment amount is
	// zero or negative.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

	// ErrMissingPaymentReference is returned when the payment reference is empty.
	ErrMissingPaymentReference = errors.New("payment reference is required")

	// ErrMissingRate is returned when a secondary-currency amount is given
	// without a conversion rate.
	ErrMissingRate = errors.New("conversion rate is required for secondary-currency payments")

	// ErrChargeNotFound is returned when a selected charge is not among the
	// unit's pending charges.
	ErrChargeNotFound = errors.New("selected charge not found")

	// ErrPaymentNotFound is returned when a payment is not found in the system.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrDuplicatePaymentReference is returned when a payment with the same
	// reference already exists for the unit.
	ErrDuplicatePaymentReference = errors.New("payment reference already registered")

	// ErrInconsistentDualAmount is returned when a direct amount and a
	// secondary-currency pair are both supplied but disagree.
	ErrInconsistentDualAmount = errors.New("amount does not match the secondary-currency conversion")
)

// PaymentErrorCode defines error codes for payment errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNoChargesSelected         PaymentErrorCode = "PAY-010001"
	ErrCodeInvalidPaymentAmount      PaymentErrorCode = "PAY-010002"
	ErrCodeMissingPaymentReference   PaymentErrorCode = "PAY-010003"
	ErrCodeMissingRate               PaymentErrorCode = "PAY-010004"
	ErrCodeDuplicatePaymentReference PaymentErrorCode = "PAY-010005"
	ErrCodeInconsistentDualAmount    PaymentErrorCode = "PAY-010006"

	// Not-found errors (02XXXX)
	ErrCodeChargeNotFound  PaymentErrorCode = "PAY-020001"
	ErrCodePaymentNotFound PaymentErrorCode = "PAY-020002"
)

// PaymentError represents a payment error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
