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

// CreateSpecialProjectInput represents the input for registering a capital project.
type CreateSpecialProjectInput struct {
	Name             string
	TotalBudget      decimal.Decimal
	InstallmentCount int
	Tower            string
}

// CreateSpecialProjectOutput represents the result of registering a capital project.
type CreateSpecialProjectOutput struct {
	ProjectID uuid.UUID
}

// CreateSpecialProjectUseCase registers a capital project with its fixed
// installment schedule.
type CreateSpecialProjectUseCase struct {
	catalog adapter.ChargeCatalog
}

// NewCreateSpecialProjectUseCase creates a new CreateSpecialProjectUseCase instance.
func NewCreateSpecialProjectUseCase(catalog adapter.ChargeCatalog) *CreateSpecialProjectUseCase {
	return &CreateSpecialProjectUseCase{
		catalog: catalog,
	}
}

// Execute performs the project registration.
func (uc *CreateSpecialProjectUseCase) Execute(ctx context.Context, input CreateSpecialProjectInput) (*CreateSpecialProjectOutput, error) {
	if input.InstallmentCount <= 0 {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"installment count must be positive",
			domainerror.ErrInvalidInstallmentCount,
		)
	}

	if !input.TotalBudget.IsPositive() {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"project budget must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	project := entity.NewSpecialProject(
		input.Name,
		input.TotalBudget.Round(2),
		input.InstallmentCount,
		input.Tower,
	)

	if err := uc.catalog.CreateSpecialProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create special project: %w", err)
	}

	return &CreateSpecialProjectOutput{ProjectID: project.ID}, nil
}
