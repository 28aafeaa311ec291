// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/condoledger/backend/internal/application/adapter"
	"github.com/condoledger/backend/internal/domain/entity"
	domainerror "github.com/condoledger/backend/internal/domain/error"
	"github.com/condoledger/backend/internal/integration/persistence/model"
)

// chargeCatalog implements the adapter.ChargeCatalog interface.
type chargeCatalog struct {
	db *gorm.DB
}

// NewChargeCatalog creates a new charge catalog instance.
func NewChargeCatalog(db *gorm.DB) adapter.ChargeCatalog {
	return &chargeCatalog{
		db: db,
	}
}

// FindUnitByID retrieves a billing unit by its ID.
func (r *chargeCatalog) FindUnitByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	var unitModel model.UnitModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&unitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUnitNotFound
		}
		return nil, result.Error
	}
	return unitModel.ToEntity(), nil
}

// ListUnits retrieves all billing units ordered by tower and number.
func (r *chargeCatalog) ListUnits(ctx context.Context) ([]*entity.Unit, error) {
	var unitModels []model.UnitModel
	result := r.db.WithContext(ctx).
		Order("tower ASC, number ASC").
		Find(&unitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	units := make([]*entity.Unit, len(unitModels))
	for i, um := range unitModels {
		units[i] = um.ToEntity()
	}
	return units, nil
}

// RecurringChargesForUnit returns the unit's share of every billing period.
// The per-unit amount is the period total scaled by the unit's aliquot,
// rounded to cents at derivation.
func (r *chargeCatalog) RecurringChargesForUnit(ctx context.Context, unit *entity.Unit) ([]adapter.RecurringChargeData, error) {
	var periodModels []model.BillingPeriodModel
	result := r.db.WithContext(ctx).
		Order("label ASC").
		Find(&periodModels)
	if result.Error != nil {
		return nil, result.Error
	}

	charges := make([]adapter.RecurringChargeData, len(periodModels))
	for i, pm := range periodModels {
		charges[i] = adapter.RecurringChargeData{
			PeriodID: pm.ID,
			Label:    pm.Label,
			Amount:   pm.TotalAmount.Mul(unit.Aliquot).Round(2),
		}
	}
	return charges, nil
}

// ActiveProjectsForUnit returns the active special projects that charge the
// given unit.
func (r *chargeCatalog) ActiveProjectsForUnit(ctx context.Context, unit *entity.Unit) ([]*entity.SpecialProject, error) {
	var projectModels []model.SpecialProjectModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.SpecialProjectStatusActive)).
		Order("created_at ASC").
		Find(&projectModels)
	if result.Error != nil {
		return nil, result.Error
	}

	var projects []*entity.SpecialProject
	for _, pm := range projectModels {
		project := pm.ToEntity()
		if project.AppliesTo(unit) {
			projects = append(projects, project)
		}
	}
	return projects, nil
}

// InstallmentPaymentsForUnit returns every special installment payment
// recorded for the unit.
func (r *chargeCatalog) InstallmentPaymentsForUnit(ctx context.Context, unitID uuid.UUID) ([]*entity.SpecialInstallmentPayment, error) {
	var sipModels []model.SpecialInstallmentPaymentModel
	result := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("created_at ASC").
		Find(&sipModels)
	if result.Error != nil {
		return nil, result.Error
	}

	installments := make([]*entity.SpecialInstallmentPayment, len(sipModels))
	for i, sm := range sipModels {
		installments[i] = sm.ToEntity()
	}
	return installments, nil
}

// CreateUnit registers a new billing unit.
func (r *chargeCatalog) CreateUnit(ctx context.Context, unit *entity.Unit) error {
	unitModel := model.UnitFromEntity(unit)
	result := r.db.WithContext(ctx).Create(unitModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrDuplicateUnitNumber
		}
		return result.Error
	}
	return nil
}

// CreateBillingPeriod registers a new billing period.
func (r *chargeCatalog) CreateBillingPeriod(ctx context.Context, period *entity.BillingPeriod) error {
	periodModel := model.BillingPeriodFromEntity(period)
	result := r.db.WithContext(ctx).Create(periodModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrDuplicatePeriodLabel
		}
		return result.Error
	}
	return nil
}

// CreateSpecialProject registers a new capital project.
func (r *chargeCatalog) CreateSpecialProject(ctx context.Context, project *entity.SpecialProject) error {
	projectModel := model.SpecialProjectFromEntity(project)
	result := r.db.WithContext(ctx).Create(projectModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// isUniqueViolation reports whether the error is a unique constraint
// violation, from postgres (code 23505) or from the sqlite driver used in
// tests.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
