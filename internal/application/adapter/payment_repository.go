package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/condoledger/backend/internal/domain/entity"
)

// PaymentRepository defines the interface for payment persistence operations.
type PaymentRepository interface {
	// CreateWithAllocations persists a payment together with its allocations
	// and special installment payments in a single transaction. Either all
	// rows are written or none are.
	CreateWithAllocations(
		ctx context.Context,
		payment *entity.Payment,
		allocations []*entity.Allocation,
		installments []*entity.SpecialInstallmentPayment,
	) error

	// FindByID retrieves a payment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByUnit retrieves all payments for a unit ordered by date ascending.
	FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*entity.Payment, error)

	// FindAllocationsByPayment retrieves the allocations written for a payment.
	FindAllocationsByPayment(ctx context.Context, paymentID uuid.UUID) ([]*entity.Allocation, error)

	// FindUnverifiedByPeriod retrieves payments not yet verified whose date
	// falls within [from, to].
	FindUnverifiedByPeriod(ctx context.Context, from, to time.Time) ([]*entity.Payment, error)

	// MarkVerified promotes a payment to the verified status.
	MarkVerified(ctx context.Context, id uuid.UUID) error

	// DeleteCascade deletes a payment together with its allocations and
	// special installment payments, in a single transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}
