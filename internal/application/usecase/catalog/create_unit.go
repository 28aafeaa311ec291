// Package catalog contains charge catalog maintenance use cases. The catalog
// feeds the statement builder; these operations only accept well-formed
// records at the boundary.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/adapter"
	"github.com/condoledger/backend/internal/domain/entity"
	domainerror "github.com/condoledger/backend/internal/domain/error"
)

// CreateUnitInput represents the input for registering a billing unit.
type CreateUnitInput struct {
	Number          string
	Tower           string
	OwnerName       string
	Aliquot         decimal.Decimal
	StartingBalance decimal.Decimal
}

// CreateUnitOutput represents the result of registering a billing unit.
type CreateUnitOutput struct {
	UnitID uuid.UUID
}

// CreateUnitUseCase registers a new billing unit in the charge catalog.
type CreateUnitUseCase struct {
	catalog adapter.ChargeCatalog
}

// NewCreateUnitUseCase creates a new CreateUnitUseCase instance.
func NewCreateUnitUseCase(catalog adapter.ChargeCatalog) *CreateUnitUseCase {
	return &CreateUnitUseCase{
		catalog: catalog,
	}
}

// Execute performs the unit registration.
func (uc *CreateUnitUseCase) Execute(ctx context.Context, input CreateUnitInput) (*CreateUnitOutput, error) {
	one := decimal.NewFromInt(1)
	if !input.Aliquot.IsPositive() || input.Aliquot.GreaterThan(one) {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeInvalidAliquot,
			"aliquot must be greater than zero and at most one",
			domainerror.ErrInvalidAliquot,
		)
	}

	unit := entity.NewUnit(
		input.Number,
		input.Tower,
		input.OwnerName,
		input.Aliquot,
		input.StartingBalance.Round(2),
	)

	if err := uc.catalog.CreateUnit(ctx, unit); err != nil {
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}

	return &CreateUnitOutput{UnitID: unit.ID}, nil
}
