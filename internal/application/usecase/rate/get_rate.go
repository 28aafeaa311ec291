// Package rate contains the currency rate lookup use case.
package rate

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/adapter"
)

// GetRateOutput represents the current secondary-currency rate.
type GetRateOutput struct {
	Rate      decimal.Decimal
	FetchedAt time.Time
}

// GetRateUseCase looks up the current secondary-currency conversion rate from
// the external rate collaborator. When the collaborator is unreachable the
// error carries domainerror.ErrRateUnavailable and the caller is expected to
// fall back to a manually supplied rate.
type GetRateUseCase struct {
	rateService adapter.RateService
}

// NewGetRateUseCase creates a new GetRateUseCase instance.
func NewGetRateUseCase(rateService adapter.RateService) *GetRateUseCase {
	return &GetRateUseCase{
		rateService: rateService,
	}
}

// Execute fetches the current rate.
func (uc *GetRateUseCase) Execute(ctx context.Context) (*GetRateOutput, error) {
	current, err := uc.rateService.CurrentRate(ctx)
	if err != nil {
		return nil, err
	}

	return &GetRateOutput{
		Rate:      current.Value,
		FetchedAt: current.FetchedAt,
	}, nil
}
