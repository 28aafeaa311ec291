package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Rate represents a secondary-currency conversion rate at a point in time.
type Rate struct {
	Value     decimal.Decimal
	FetchedAt time.Time
}

// RateService defines the interface to the external currency rate
// collaborator. Unavailability is surfaced as domainerror.ErrRateUnavailable
// so callers can fall back to a manually supplied rate.
type RateService interface {
	// CurrentRate returns the current secondary-currency rate.
	CurrentRate(ctx context.Context) (*Rate, error)
}
