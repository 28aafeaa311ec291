package dto

import (
	"github.com/condoledger/backend/internal/application/usecase/expense"
)

// CreateExpenseRequestDTO represents the request for POST /expenses.
type CreateExpenseRequestDTO struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Reference   string `json:"reference"`
}

// CreateExpenseResponseDTO represents the response for POST /expenses.
type CreateExpenseResponseDTO struct {
	ID string `json:"id"`
}

// ExpenseDTO represents one expense in a listing.
type ExpenseDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Reference   string `json:"reference,omitempty"`
	Status      string `json:"status"`
	Reconciled  bool   `json:"reconciled"`
}

// ListExpensesResponseDTO represents the response for GET /expenses.
type ListExpensesResponseDTO struct {
	Expenses []ExpenseDTO `json:"expenses"`
	Total    string       `json:"total"`
}

// ToListExpensesResponseDTO converts the list expenses output to its response.
func ToListExpensesResponseDTO(output *expense.ListExpensesOutput) ListExpensesResponseDTO {
	expenses := make([]ExpenseDTO, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = ExpenseDTO{
			ID:          e.ID.String(),
			Date:        e.Date.Format("2006-01-02"),
			Description: e.Description,
			Amount:      e.Amount.StringFixed(2),
			Reference:   e.Reference,
			Status:      string(e.Status),
			Reconciled:  e.Reconciled,
		}
	}

	return ListExpensesResponseDTO{
		Expenses: expenses,
		Total:    output.Total.StringFixed(2),
	}
}
