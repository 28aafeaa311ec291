package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/adapter"
)

// UnitOutput represents one billing unit in a listing.
type UnitOutput struct {
	ID              uuid.UUID
	Number          string
	Tower           string
	OwnerName       string
	Aliquot         decimal.Decimal
	StartingBalance decimal.Decimal
}

// ListUnitsOutput represents the result of listing billing units.
type ListUnitsOutput struct {
	Units []UnitOutput
}

// ListUnitsUseCase lists every billing unit in the catalog.
type ListUnitsUseCase struct {
	catalog adapter.ChargeCatalog
}

// NewListUnitsUseCase creates a new ListUnitsUseCase instance.
func NewListUnitsUseCase(catalog adapter.ChargeCatalog) *ListUnitsUseCase {
	return &ListUnitsUseCase{
		catalog: catalog,
	}
}

// Execute lists the units.
func (uc *ListUnitsUseCase) Execute(ctx context.Context) (*ListUnitsOutput, error) {
	units, err := uc.catalog.ListUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}

	output := &ListUnitsOutput{Units: make([]UnitOutput, 0, len(units))}
	for _, u := range units {
		output.Units = append(output.Units, UnitOutput{
			ID:              u.ID,
			Number:          u.Number,
			Tower:           u.Tower,
			OwnerName:       u.OwnerName,
			Aliquot:         u.Aliquot,
			StartingBalance: u.StartingBalance,
		})
	}

	return output, nil
}
