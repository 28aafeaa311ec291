package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/condoledger/backend/internal/application/adapter"
	"github.com/condoledger/backend/internal/domain/entity"
	domainerror "github.com/condoledger/backend/internal/domain/error"
	"github.com/condoledger/backend/internal/integration/persistence/model"
)

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB) adapter.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// CreateWithAllocations persists a payment together with its allocations and
// special installment payments. All rows share one transaction.
func (r *paymentRepository) CreateWithAllocations(
	ctx context.Context,
	payment *entity.Payment,
	allocations []*entity.Allocation,
	installments []*entity.SpecialInstallmentPayment,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.PaymentFromEntity(payment)).Error; err != nil {
			return err
		}
		for _, allocation := range allocations {
			if err := tx.Create(model.AllocationFromEntity(allocation)).Error; err != nil {
				return err
			}
		}
		for _, sip := range installments {
			if err := tx.Create(model.SpecialInstallmentPaymentFromEntity(sip)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domainerror.ErrDuplicatePaymentReference
		}
		return err
	}
	return nil
}

// FindByID retrieves a payment by its ID.
func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentModel model.PaymentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// FindByUnit retrieves all payments for a unit ordered by date ascending.
func (r *paymentRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []model.PaymentModel
	result := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("date ASC, created_at ASC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.Payment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// FindAllocationsByPayment retrieves the allocations written for a payment.
func (r *paymentRepository) FindAllocationsByPayment(ctx context.Context, paymentID uuid.UUID) ([]*entity.Allocation, error) {
	var allocationModels []model.AllocationModel
	result := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Order("created_at ASC").
		Find(&allocationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	allocations := make([]*entity.Allocation, len(allocationModels))
	for i, am := range allocationModels {
		allocations[i] = am.ToEntity()
	}
	return allocations, nil
}

// FindUnverifiedByPeriod retrieves payments not yet verified whose date falls
// within [from, to].
func (r *paymentRepository) FindUnverifiedByPeriod(ctx context.Context, from, to time.Time) ([]*entity.Payment, error) {
	var paymentModels []model.PaymentModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.PaymentStatusReported)).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.Payment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// MarkVerified promotes a payment to the verified status.
func (r *paymentRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(entity.PaymentStatusVerified),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPaymentNotFound
	}
	return nil
}

// DeleteCascade deletes a payment together with its allocations and special
// installment payments. Deleting the installment rows is what returns the
// matching installments to pending on the next statement build.
func (r *paymentRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_id = ?", id).Delete(&model.AllocationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("payment_id = ?", id).Delete(&model.SpecialInstallmentPaymentModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.PaymentModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrPaymentNotFound
		}
		return nil
	})
}
