package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingPeriod represents one month of recurring association expenses.
// Label is the period name in "YYYY-MM" form; TotalAmount is the full
// recurring expense for the period, split across units by their aliquots.
type BillingPeriod struct {
	ID          uuid.UUID
	Label       string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBillingPeriod creates a new BillingPeriod entity.
func NewBillingPeriod(label string, totalAmount decimal.Decimal) *BillingPeriod {
	now := time.Now().UTC()

	return &BillingPeriod{
		ID:          uuid.New(),
		Label:       label,
		TotalAmount: totalAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
