package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/adapter"
	"github.com/condoledger/backend/internal/domain/entity"
)

// ListExpensesInput represents the period to list.
type ListExpensesInput struct {
	From time.Time
	To   time.Time
}

// ExpenseOutput represents one expense in a listing.
type ExpenseOutput struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Reference   string
	Status      entity.ExpenseStatus
	Reconciled  bool
}

// ListExpensesOutput represents the result of listing expenses.
type ListExpensesOutput struct {
	Expenses []ExpenseOutput
	Total    decimal.Decimal
}

// ListExpensesUseCase lists the association expenses for a period.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute lists expenses for the period.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindByPeriod(ctx, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	output := &ListExpensesOutput{
		Expenses: make([]ExpenseOutput, 0, len(expenses)),
		Total:    decimal.Zero,
	}
	for _, e := range expenses {
		output.Expenses = append(output.Expenses, ExpenseOutput{
			ID:          e.ID,
			Date:        e.Date,
			Description: e.Description,
			Amount:      e.Amount,
			Reference:   e.Reference,
			Status:      e.Status,
			Reconciled:  e.Reconciled,
		})
		output.Total = output.Total.Add(e.Amount).Round(2)
	}

	return output, nil
}
