package valueobject

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SystemTransactionKind discriminates the two internal movement feeds that
// participate in bank reconciliation.
type SystemTransactionKind string

const (
	// SystemTransactionIncome is a payment received from a unit.
	SystemTransactionIncome SystemTransactionKind = "income"
	// SystemTransactionExpense is a paid association expense.
	SystemTransactionExpense SystemTransactionKind = "expense"
)

// SystemTransaction is the reconciliation view of an internally recorded
// movement: a received payment (income) or a paid expense. Amount is signed,
// income positive and expenses negative.
type SystemTransaction struct {
	ID        uuid.UUID
	Date      time.Time
	Amount    decimal.Decimal
	Reference string
	Kind      SystemTransactionKind
}
