package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/domain/entity"
)

// RecurringChargeData is one billing period's charge as seen by a single
// unit: the per-unit amount is already derived from the period total and the
// unit's aliquot, rounded at derivation.
type RecurringChargeData struct {
	PeriodID uuid.UUID
	Label    string
	Amount   decimal.Decimal
}

// ChargeCatalog defines the interface to the charge sources for every unit:
// starting balances, recurring periodic dues and capital-project installment
// schedules, plus the catalog's own maintenance operations.
type ChargeCatalog interface {
	// FindUnitByID retrieves a billing unit by its ID.
	FindUnitByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error)

	// ListUnits retrieves all billing units ordered by tower and number.
	ListUnits(ctx context.Context) ([]*entity.Unit, error)

	// RecurringChargesForUnit returns the unit's share of every billing
	// period, ordered by period label ascending.
	RecurringChargesForUnit(ctx context.Context, unit *entity.Unit) ([]RecurringChargeData, error)

	// ActiveProjectsForUnit returns the active special projects that charge
	// the given unit, ordered by creation time.
	ActiveProjectsForUnit(ctx context.Context, unit *entity.Unit) ([]*entity.SpecialProject, error)

	// InstallmentPaymentsForUnit returns every special installment payment
	// recorded for the unit.
	InstallmentPaymentsForUnit(ctx context.Context, unitID uuid.UUID) ([]*entity.SpecialInstallmentPayment, error)

	// CreateUnit registers a new billing unit.
	CreateUnit(ctx context.Context, unit *entity.Unit) error

	// CreateBillingPeriod registers a new billing period.
	CreateBillingPeriod(ctx context.Context, period *entity.BillingPeriod) error

	// CreateSpecialProject registers a new capital project.
	CreateSpecialProject(ctx context.Context, project *entity.SpecialProject) error
}
