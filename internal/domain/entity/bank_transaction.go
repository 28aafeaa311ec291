package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankTransactionStatus represents the reconciliation state of an externally
// reported bank movement.
type BankTransactionStatus string

const (
	BankTransactionStatusPending BankTransactionStatus = "pending"
	BankTransactionStatusMatched BankTransactionStatus = "matched"
	BankTransactionStatusIgnored BankTransactionStatus = "ignored"
)

// MatchType identifies which reconciliation strategy produced a match.
type MatchType string

const (
	// MatchTypeReference is an exact trailing-digits reference match.
	MatchTypeReference MatchType = "reference"
	// MatchTypeAmount is an amount-plus-date-proximity match with a unique
	// candidate.
	MatchTypeAmount MatchType = "amount"
)

// BankTransaction represents an externally reported bank movement. Amount is
// signed: deposits positive, debits negative. Match annotations are the only
// mutable part and may be reset to pending in bulk.
type BankTransaction struct {
	ID               uuid.UUID
	Date             time.Time
	Description      string
	Amount           decimal.Decimal
	Reference        string
	Status           BankTransactionStatus
	MatchedPaymentID *uuid.UUID
	MatchType        *MatchType
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewBankTransaction creates a new BankTransaction entity in the pending state.
func NewBankTransaction(date time.Time, description string, amount decimal.Decimal, reference string) *BankTransaction {
	now := time.Now().UTC()

	return &BankTransaction{
		ID:          uuid.New(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Reference:   reference,
		Status:      BankTransactionStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
