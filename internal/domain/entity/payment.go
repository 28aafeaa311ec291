package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the verification state of a received payment.
type PaymentStatus string

const (
	// PaymentStatusReported is a payment recorded from a resident's report,
	// not yet confirmed against a bank movement.
	PaymentStatusReported PaymentStatus = "reported"
	// PaymentStatusVerified is a payment confirmed by reconciliation.
	PaymentStatusVerified PaymentStatus = "verified"
)

// PaymentMethod identifies how a payment was made.
type PaymentMethod string

const (
	PaymentMethodTransfer     PaymentMethod = "transfer"
	PaymentMethodMobile       PaymentMethod = "mobile"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodInternational PaymentMethod = "international"
)

// Payment represents a value received from a unit on a date. Amount is always
// expressed in the unit of account; SecondaryAmount and Rate are carried when
// the payment was made in the secondary currency.
type Payment struct {
	ID              uuid.UUID
	UnitID          uuid.UUID
	Date            time.Time
	Amount          decimal.Decimal
	SecondaryAmount *decimal.Decimal
	Rate            *decimal.Decimal
	Reference       string
	Method          PaymentMethod
	Status          PaymentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewPayment creates a new Payment entity in the reported state.
func NewPayment(
	unitID uuid.UUID,
	date time.Time,
	amount decimal.Decimal,
	secondaryAmount *decimal.Decimal,
	rate *decimal.Decimal,
	reference string,
	method PaymentMethod,
) *Payment {
	now := time.Now().UTC()

	return &Payment{
		ID:              uuid.New(),
		UnitID:          unitID,
		Date:            date,
		Amount:          amount,
		SecondaryAmount: secondaryAmount,
		Rate:            rate,
		Reference:       reference,
		Method:          method,
		Status:          PaymentStatusReported,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
