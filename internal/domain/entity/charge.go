// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeKind discriminates the charge variants carried on a unit's statement.
type ChargeKind string

const (
	// ChargeKindHistorical is the pre-system arrears carried into the ledger.
	ChargeKindHistorical ChargeKind = "historical"
	// ChargeKindRecurring is a periodic due derived from a billing period.
	ChargeKindRecurring ChargeKind = "recurring"
	// ChargeKindSpecialInstallment is one installment of a capital project.
	ChargeKindSpecialInstallment ChargeKind = "special_installment"
	// ChargeKindSurplusCredit is a synthetic negative charge representing
	// funds held but not yet tied to any charge.
	ChargeKindSurplusCredit ChargeKind = "surplus_credit"
)

// ChargeStatus represents the derived settlement state of a charge.
type ChargeStatus string

const (
	ChargeStatusPending ChargeStatus = "pending"
	ChargeStatusPaid    ChargeStatus = "paid"
)

// paidTolerance absorbs rounding residue when deciding whether a charge is
// fully settled.
var paidTolerance = decimal.NewFromFloat(0.05)

// Charge represents a monetary obligation owed by a unit. Charges are
// materialized on each statement build from the charge catalog; they are not
// persisted as a standalone entity.
type Charge struct {
	ID               string
	Kind             ChargeKind
	Label            string
	Amount           decimal.Decimal
	PaidAmount       decimal.Decimal
	ChronologicalKey int

	// Set only for special installment charges.
	ProjectID         *uuid.UUID
	InstallmentNumber *int
}

// Outstanding returns the unpaid remainder of the charge.
func (c *Charge) Outstanding() decimal.Decimal {
	return c.Amount.Sub(c.PaidAmount)
}

// Status derives the settlement state of the charge. A charge counts as paid
// once its outstanding amount falls within the rounding tolerance.
func (c *Charge) Status() ChargeStatus {
	if c.Outstanding().LessThanOrEqual(paidTolerance) {
		return ChargeStatusPaid
	}
	return ChargeStatusPending
}

// IsSpecial reports whether the charge is a capital-project installment.
func (c *Charge) IsSpecial() bool {
	return c.Kind == ChargeKindSpecialInstallment
}
