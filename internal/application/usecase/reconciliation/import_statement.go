package reconciliation

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/adapter"
	"github.com/condoledger/backend/internal/domain/entity"
	domainerror "github.com/condoledger/backend/internal/domain/error"
)

// BankMovementInput is one well-formed statement row. Parsing and column
// handling belong to the import collaborator; this boundary only accepts
// records.
type BankMovementInput struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Reference   string
}

// ImportStatementInput represents the input for a bank statement import.
type ImportStatementInput struct {
	Movements []BankMovementInput
}

// ImportStatementOutput represents the result of a bank statement import.
type ImportStatementOutput struct {
	ImportedCount int
}

// ImportStatementUseCase records externally reported bank movements in the
// pending state, ready for the next matching run.
type ImportStatementUseCase struct {
	bankRepo adapter.BankTransactionRepository
}

// NewImportStatementUseCase creates a new ImportStatementUseCase instance.
func NewImportStatementUseCase(bankRepo adapter.BankTransactionRepository) *ImportStatementUseCase {
	return &ImportStatementUseCase{
		bankRepo: bankRepo,
	}
}

// Execute persists the statement rows.
func (uc *ImportStatementUseCase) Execute(ctx context.Context, input ImportStatementInput) (*ImportStatementOutput, error) {
	if len(input.Movements) == 0 {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeEmptyStatement,
			"bank statement contains no movements",
			domainerror.ErrEmptyStatement,
		)
	}

	transactions := make([]*entity.BankTransaction, 0, len(input.Movements))
	for _, m := range input.Movements {
		transactions = append(transactions, entity.NewBankTransaction(
			m.Date,
			m.Description,
			m.Amount.Round(2),
			m.Reference,
		))
	}

	if err := uc.bankRepo.CreateBatch(ctx, transactions); err != nil {
		return nil, fmt.Errorf("failed to import bank statement: %w", err)
	}

	return &ImportStatementOutput{ImportedCount: len(transactions)}, nil
}
