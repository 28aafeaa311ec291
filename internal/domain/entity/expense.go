package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseStatus represents the payment state of an association expense.
type ExpenseStatus string

const (
	ExpenseStatusPending ExpenseStatus = "pending"
	ExpenseStatusPaid    ExpenseStatus = "paid"
)

// Expense represents money the association paid out (maintenance, utilities,
// supplier invoices). Paid expenses form the outgoing side of bank
// reconciliation.
type Expense struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Reference   string
	Status      ExpenseStatus
	Reconciled  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity in the pending state.
func NewExpense(date time.Time, description string, amount decimal.Decimal, reference string) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Reference:   reference,
		Status:      ExpenseStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
