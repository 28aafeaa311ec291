package reconciliation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/adapter"
)

// GetPendingInput represents the period to inspect.
type GetPendingInput struct {
	From time.Time
	To   time.Time
}

// PendingMovementOutput represents one pending bank movement.
type PendingMovementOutput struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Reference   string
}

// GetPendingOutput represents the pending bank movements for a period.
type GetPendingOutput struct {
	Movements []PendingMovementOutput
}

// GetPendingUseCase lists the bank movements still awaiting a match.
type GetPendingUseCase struct {
	bankRepo adapter.BankTransactionRepository
}

// NewGetPendingUseCase creates a new GetPendingUseCase instance.
func NewGetPendingUseCase(bankRepo adapter.BankTransactionRepository) *GetPendingUseCase {
	return &GetPendingUseCase{
		bankRepo: bankRepo,
	}
}

// Execute lists pending movements for the period.
func (uc *GetPendingUseCase) Execute(ctx context.Context, input GetPendingInput) (*GetPendingOutput, error) {
	pending, err := uc.bankRepo.FindPendingByPeriod(ctx, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending bank movements: %w", err)
	}

	output := &GetPendingOutput{
		Movements: make([]PendingMovementOutput, 0, len(pending)),
	}
	for _, bt := range pending {
		output.Movements = append(output.Movements, PendingMovementOutput{
			ID:          bt.ID,
			Date:        bt.Date,
			Description: bt.Description,
			Amount:      bt.Amount,
			Reference:   bt.Reference,
		})
	}

	return output, nil
}
