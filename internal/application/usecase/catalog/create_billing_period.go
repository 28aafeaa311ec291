package catalog

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/adapter"
	"github.com/condoledger/backend/internal/domain/entity"
	domainerror "github.com/condoledger/backend/internal/domain/error"
)

var periodLabelPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// CreateBillingPeriodInput represents the input for registering a billing period.
type CreateBillingPeriodInput struct {
	Label       string
	TotalAmount decimal.Decimal
}

// CreateBillingPeriodOutput represents the result of registering a billing period.
type CreateBillingPeriodOutput struct {
	PeriodID uuid.UUID
}

// CreateBillingPeriodUseCase registers a month of recurring expenses. The
// per-unit share is derived from each unit's aliquot at statement build time.
type CreateBillingPeriodUseCase struct {
	catalog adapter.ChargeCatalog
}

// NewCreateBillingPeriodUseCase creates a new CreateBillingPeriodUseCase instance.
func NewCreateBillingPeriodUseCase(catalog adapter.ChargeCatalog) *CreateBillingPeriodUseCase {
	return &CreateBillingPeriodUseCase{
		catalog: catalog,
	}
}

// Execute performs the billing period registration.
func (uc *CreateBillingPeriodUseCase) Execute(ctx context.Context, input CreateBillingPeriodInput) (*CreateBillingPeriodOutput, error) {
	if !periodLabelPattern.MatchString(input.Label) {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeInvalidPeriodLabel,
			fmt.Sprintf("period label %q must be in YYYY-MM form", input.Label),
			domainerror.ErrInvalidPeriodLabel,
		)
	}

	if !input.TotalAmount.IsPositive() {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"period total must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	period := entity.NewBillingPeriod(input.Label, input.TotalAmount.Round(2))

	if err := uc.catalog.CreateBillingPeriod(ctx, period); err != nil {
		return nil, fmt.Errorf("failed to create billing period: %w", err)
	}

	return &CreateBillingPeriodOutput{PeriodID: period.ID}, nil
}
