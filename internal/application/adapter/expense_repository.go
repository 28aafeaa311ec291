package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/condoledger/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create persists a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByPeriod retrieves expenses whose date falls within [from, to],
	// ordered by date ascending.
	FindByPeriod(ctx context.Context, from, to time.Time) ([]*entity.Expense, error)

	// FindPaidUnreconciledByPeriod retrieves paid expenses not yet matched to
	// a bank movement for the period.
	FindPaidUnreconciledByPeriod(ctx context.Context, from, to time.Time) ([]*entity.Expense, error)

	// MarkPaid transitions an expense to the paid status.
	MarkPaid(ctx context.Context, id uuid.UUID) error

	// MarkReconciled flags an expense as matched to a bank movement.
	MarkReconciled(ctx context.Context, id uuid.UUID) error
}
