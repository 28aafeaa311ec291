package reconciliation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/condoledger/backend/internal/application/adapter"
	domainerror "github.com/condoledger/backend/internal/domain/error"
)

// ResetMatchesInput represents the period whose match annotations to clear.
type ResetMatchesInput struct {
	From time.Time
	To   time.Time
}

// ResetMatchesOutput represents the result of a bulk reset.
type ResetMatchesOutput struct {
	ResetCount int64
}

// ResetMatchesUseCase returns every matched bank movement in a period to
// pending, clearing its match annotations. Only the bank side is touched;
// verified payments keep their status.
type ResetMatchesUseCase struct {
	bankRepo adapter.BankTransactionRepository
}

// NewResetMatchesUseCase creates a new ResetMatchesUseCase instance.
func NewResetMatchesUseCase(bankRepo adapter.BankTransactionRepository) *ResetMatchesUseCase {
	return &ResetMatchesUseCase{
		bankRepo: bankRepo,
	}
}

// Execute performs the bulk reset.
func (uc *ResetMatchesUseCase) Execute(ctx context.Context, input ResetMatchesInput) (*ResetMatchesOutput, error) {
	if input.To.Before(input.From) {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidPeriod,
			"period end precedes period start",
			domainerror.ErrInvalidPeriod,
		)
	}

	count, err := uc.bankRepo.ResetMatches(ctx, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("failed to reset match annotations: %w", err)
	}

	slog.Info("Match annotations reset",
		"from", input.From.Format("2006-01-02"),
		"to", input.To.Format("2006-01-02"),
		"count", count,
	)

	return &ResetMatchesOutput{ResetCount: count}, nil
}
