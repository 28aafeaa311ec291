package reconciliation

import (
	"context"
	"fmt"
	"time"

	"github.com/condoledger/backend/internal/application/adapter"
	"github.com/condoledger/backend/internal/domain/entity"
)

// GetSummaryInput represents the period to summarize.
type GetSummaryInput struct {
	From time.Time
	To   time.Time
}

// GetSummaryOutput represents reconciliation counts for a period.
type GetSummaryOutput struct {
	Pending int64
	Matched int64
	Ignored int64
}

// GetSummaryUseCase reports the reconciliation state of a period.
type GetSummaryUseCase struct {
	bankRepo adapter.BankTransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(bankRepo adapter.BankTransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		bankRepo: bankRepo,
	}
}

// Execute computes the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	counts, err := uc.bankRepo.CountByStatus(ctx, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("failed to count bank movements: %w", err)
	}

	return &GetSummaryOutput{
		Pending: counts[entity.BankTransactionStatusPending],
		Matched: counts[entity.BankTransactionStatusMatched],
		Ignored: counts[entity.BankTransactionStatusIgnored],
	}, nil
}
