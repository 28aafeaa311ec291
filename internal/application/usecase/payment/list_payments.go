package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/adapter"
	"github.com/condoledger/backend/internal/domain/entity"
)

// ListPaymentsInput represents the input for listing a unit's payments.
type ListPaymentsInput struct {
	UnitID uuid.UUID
}

// PaymentOutput represents a single payment in the listing.
type PaymentOutput struct {
	ID              uuid.UUID
	Date            time.Time
	Amount          decimal.Decimal
	SecondaryAmount *decimal.Decimal
	Rate            *decimal.Decimal
	Reference       string
	Method          entity.PaymentMethod
	Status          entity.PaymentStatus
}

// ListPaymentsOutput represents the result of listing payments.
type ListPaymentsOutput struct {
	Payments []PaymentOutput
	Total    decimal.Decimal
}

// ListPaymentsUseCase handles listing a unit's payment history.
type ListPaymentsUseCase struct {
	catalog     adapter.ChargeCatalog
	paymentRepo adapter.PaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(catalog adapter.ChargeCatalog, paymentRepo adapter.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		catalog:     catalog,
		paymentRepo: paymentRepo,
	}
}

// Execute lists the payment history for one unit.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	unit, err := uc.catalog.FindUnitByID(ctx, input.UnitID)
	if err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepo.FindByUnit(ctx, unit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment history: %w", err)
	}

	output := &ListPaymentsOutput{
		Payments: make([]PaymentOutput, 0, len(payments)),
		Total:    decimal.Zero,
	}
	for _, p := range payments {
		output.Payments = append(output.Payments, PaymentOutput{
			ID:              p.ID,
			Date:            p.Date,
			Amount:          p.Amount,
			SecondaryAmount: p.SecondaryAmount,
			Rate:            p.Rate,
			Reference:       p.Reference,
			Method:          p.Method,
			Status:          p.Status,
		})
		output.Total = output.Total.Add(p.Amount).Round(2)
	}

	return output, nil
}
