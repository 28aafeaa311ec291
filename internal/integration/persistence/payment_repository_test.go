package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/condoledger/backend/internal/domain/entity"
	domainerror "github.com/condoledger/backend/internal/domain/error"
	"github.com/condoledger/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.UnitModel{},
		&model.BillingPeriodModel{},
		&model.SpecialProjectModel{},
		&model.PaymentModel{},
		&model.AllocationModel{},
		&model.SpecialInstallmentPaymentModel{},
		&model.BankTransactionModel{},
		&model.ExpenseModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testPayment(unitID uuid.UUID, reference string) *entity.Payment {
	return entity.NewPayment(
		unitID,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		dec("150"),
		nil,
		nil,
		reference,
		entity.PaymentMethodTransfer,
	)
}

func TestPaymentRepository_CreateWithAllocations(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	unitID := uuid.New()
	payment := testPayment(unitID, "TRF-001")
	allocations := []*entity.Allocation{
		entity.NewAllocation(payment.ID, "period-1", dec("100")),
		entity.NewAllocation(payment.ID, "period-2", dec("50")),
	}
	installments := []*entity.SpecialInstallmentPayment{
		entity.NewSpecialInstallmentPayment(uuid.New(), unitID, payment.ID, 1, dec("75"), nil),
	}

	if err := repo.CreateWithAllocations(ctx, payment, allocations, installments); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, payment.ID)
	if err != nil {
		t.Fatalf("failed to find payment: %v", err)
	}
	if found.Status != entity.PaymentStatusReported {
		t.Errorf("expected reported status, got %s", found.Status)
	}

	foundAllocations, err := repo.FindAllocationsByPayment(ctx, payment.ID)
	if err != nil {
		t.Fatalf("failed to find allocations: %v", err)
	}
	if len(foundAllocations) != 2 {
		t.Errorf("expected 2 allocations, got %d", len(foundAllocations))
	}

	var sipCount int64
	db.Model(&model.SpecialInstallmentPaymentModel{}).Where("payment_id = ?", payment.ID).Count(&sipCount)
	if sipCount != 1 {
		t.Errorf("expected 1 installment row, got %d", sipCount)
	}
}

func TestPaymentRepository_DuplicateReference(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	unitID := uuid.New()
	if err := repo.CreateWithAllocations(ctx, testPayment(unitID, "TRF-001"), nil, nil); err != nil {
		t.Fatalf("first create: %v", err)
	}

	err := repo.CreateWithAllocations(ctx, testPayment(unitID, "TRF-001"), nil, nil)
	if !errors.Is(err, domainerror.ErrDuplicatePaymentReference) {
		t.Errorf("expected ErrDuplicatePaymentReference, got %v", err)
	}
}

func TestPaymentRepository_DuplicateRollsBackAllocations(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	unitID := uuid.New()
	if err := repo.CreateWithAllocations(ctx, testPayment(unitID, "TRF-001"), nil, nil); err != nil {
		t.Fatalf("first create: %v", err)
	}

	duplicate := testPayment(unitID, "TRF-001")
	allocations := []*entity.Allocation{
		entity.NewAllocation(duplicate.ID, "period-1", dec("150")),
	}
	if err := repo.CreateWithAllocations(ctx, duplicate, allocations, nil); err == nil {
		t.Fatal("expected duplicate error")
	}

	var count int64
	db.Model(&model.AllocationModel{}).Where("payment_id = ?", duplicate.ID).Count(&count)
	if count != 0 {
		t.Errorf("allocations of the failed payment must be rolled back, found %d", count)
	}
}

func TestPaymentRepository_DeleteCascade(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	unitID := uuid.New()
	payment := testPayment(unitID, "TRF-001")
	allocations := []*entity.Allocation{
		entity.NewAllocation(payment.ID, "period-1", dec("150")),
	}
	installments := []*entity.SpecialInstallmentPayment{
		entity.NewSpecialInstallmentPayment(uuid.New(), unitID, payment.ID, 1, dec("75"), nil),
	}
	if err := repo.CreateWithAllocations(ctx, payment, allocations, installments); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.DeleteCascade(ctx, payment.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.FindByID(ctx, payment.ID); !errors.Is(err, domainerror.ErrPaymentNotFound) {
		t.Errorf("expected ErrPaymentNotFound, got %v", err)
	}

	var allocationCount, sipCount int64
	db.Model(&model.AllocationModel{}).Where("payment_id = ?", payment.ID).Count(&allocationCount)
	db.Model(&model.SpecialInstallmentPaymentModel{}).Where("payment_id = ?", payment.ID).Count(&sipCount)
	if allocationCount != 0 || sipCount != 0 {
		t.Errorf("expected no dependent rows after cascade, got %d allocations and %d installments",
			allocationCount, sipCount)
	}
}

func TestPaymentRepository_DeleteCascadeUnknownPayment(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)

	err := repo.DeleteCascade(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrPaymentNotFound) {
		t.Errorf("expected ErrPaymentNotFound, got %v", err)
	}
}

func TestPaymentRepository_MarkVerified(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	payment := testPayment(uuid.New(), "TRF-001")
	if err := repo.CreateWithAllocations(ctx, payment, nil, nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.MarkVerified(ctx, payment.ID); err != nil {
		t.Fatalf("mark verified: %v", err)
	}

	found, err := repo.FindByID(ctx, payment.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Status != entity.PaymentStatusVerified {
		t.Errorf("expected verified status, got %s", found.Status)
	}

	unverified, err := repo.FindUnverifiedByPeriod(ctx,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("find unverified: %v", err)
	}
	if len(unverified) != 0 {
		t.Errorf("verified payment must leave the unverified pool, got %d", len(unverified))
	}
}
