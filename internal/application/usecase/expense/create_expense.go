// Package expense contains association expense use cases. Paid expenses form
// the outgoing side of bank reconciliation.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/adapter"
	"github.com/condoledger/backend/internal/domain/entity"
	domainerror "github.com/condoledger/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for recording an expense.
type CreateExpenseInput struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Reference   string
}

// CreateExpenseOutput represents the result of recording an expense.
type CreateExpenseOutput struct {
	ExpenseID uuid.UUID
}

// CreateExpenseUseCase records a new association expense in the pending state.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute records the expense.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	exp := entity.NewExpense(input.Date, input.Description, input.Amount.Round(2), input.Reference)

	if err := uc.expenseRepo.Create(ctx, exp); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{ExpenseID: exp.ID}, nil
}
