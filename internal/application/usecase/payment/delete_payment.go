package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/condoledger/backend/internal/application/adapter"
)

// DeletePaymentInput represents the input for deleting a payment.
type DeletePaymentInput struct {
	PaymentID uuid.UUID
}

// DeletePaymentUseCase removes a payment. Its allocations and special
// installment payments are deleted first, in the same transaction, so no
// orphaned allocation rows can survive.
type DeletePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewDeletePaymentUseCase creates a new DeletePaymentUseCase instance.
func NewDeletePaymentUseCase(paymentRepo adapter.PaymentRepository) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute performs the cascading delete.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, input DeletePaymentInput) error {
	pay, err := uc.paymentRepo.FindByID(ctx, input.PaymentID)
	if err != nil {
		return err
	}

	if err := uc.paymentRepo.DeleteCascade(ctx, pay.ID); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	slog.Info("Payment deleted", "paymentID", pay.ID, "unitID", pay.UnitID, "amount", pay.Amount)
	return nil
}
