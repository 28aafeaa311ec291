package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Unit represents a billing unit (an apartment) in the association.
// StartingBalance is the signed balance carried in from before the system:
// positive means arrears owed, negative means a pre-existing credit.
// Aliquot is the unit's proportional share of each period's total expense.
type Unit struct {
	ID              uuid.UUID
	Number          string
	Tower           string
	OwnerName       string
	Aliquot         decimal.Decimal
	StartingBalance decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUnit creates a new Unit entity.
func NewUnit(number, tower, ownerName string, aliquot, startingBalance decimal.Decimal) *Unit {
	now := time.Now().UTC()

	return &Unit{
		ID:              uuid.New(),
		Number:          number,
		Tower:           tower,
		OwnerName:       ownerName,
		Aliquot:         aliquot,
		StartingBalance: startingBalance,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// StartingCredit returns the positive credit portion of the starting balance,
// or zero when the unit carried arrears instead.
func (u *Unit) StartingCredit() decimal.Decimal {
	if u.StartingBalance.IsNegative() {
		return u.StartingBalance.Neg()
	}
	return decimal.Zero
}

// StartingDebt returns the positive arrears portion of the starting balance,
// or zero when the unit carried a credit instead.
func (u *Unit) StartingDebt() decimal.Decimal {
	if u.StartingBalance.IsPositive() {
		return u.StartingBalance
	}
	return decimal.Zero
}
