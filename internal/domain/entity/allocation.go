package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Allocation links one payment to one recurring charge with the exact amount
// of that payment applied to that charge. Allocations are written at payment
// time and never mutated, only deleted together with their payment.
type Allocation struct {
	ID        uuid.UUID
	PaymentID uuid.UUID
	ChargeID  string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// NewAllocation creates a new Allocation entity.
func NewAllocation(paymentID uuid.UUID, chargeID string, amount decimal.Decimal) *Allocation {
	return &Allocation{
		ID:        uuid.New(),
		PaymentID: paymentID,
		ChargeID:  chargeID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}

// SpecialInstallmentPayment links one payment to one capital-project
// installment. Unlike common-pool allocations it additionally carries the
// proportional secondary-currency amount, and it is the only record that can
// settle a special installment.
type SpecialInstallmentPayment struct {
	ID                uuid.UUID
	ProjectID         uuid.UUID
	UnitID            uuid.UUID
	PaymentID         uuid.UUID
	InstallmentNumber int
	Amount            decimal.Decimal
	SecondaryAmount   *decimal.Decimal
	CreatedAt         time.Time
}

// NewSpecialInstallmentPayment creates a new SpecialInstallmentPayment entity.
func NewSpecialInstallmentPayment(
	projectID uuid.UUID,
	unitID uuid.UUID,
	paymentID uuid.UUID,
	installmentNumber int,
	amount decimal.Decimal,
	secondaryAmount *decimal.Decimal,
) *SpecialInstallmentPayment {
	return &SpecialInstallmentPayment{
		ID:                uuid.New(),
		ProjectID:         projectID,
		UnitID:            unitID,
		PaymentID:         paymentID,
		InstallmentNumber: installmentNumber,
		Amount:            amount,
		SecondaryAmount:   secondaryAmount,
		CreatedAt:         time.Now().UTC(),
	}
}
