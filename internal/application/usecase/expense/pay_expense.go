package expense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/condoledger/backend/internal/application/adapter"
)

// PayExpenseInput represents the input for marking an expense as paid.
type PayExpenseInput struct {
	ExpenseID uuid.UUID
}

// PayExpenseUseCase transitions an expense to the paid state, entering it
// into the reconciliation candidate pool.
type PayExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewPayExpenseUseCase creates a new PayExpenseUseCase instance.
func NewPayExpenseUseCase(expenseRepo adapter.ExpenseRepository) *PayExpenseUseCase {
	return &PayExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute marks the expense as paid.
func (uc *PayExpenseUseCase) Execute(ctx context.Context, input PayExpenseInput) error {
	exp, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return err
	}

	if err := uc.expenseRepo.MarkPaid(ctx, exp.ID); err != nil {
		return fmt.Errorf("failed to mark expense paid: %w", err)
	}

	slog.Info("Expense marked paid", "expenseID", exp.ID, "amount", exp.Amount)
	return nil
}
