package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/adapter"
	"github.com/condoledger/backend/internal/application/usecase/ledger"
	"github.com/condoledger/backend/internal/domain/entity"
	domainerror "github.com/condoledger/backend/internal/domain/error"
)

type fakeCatalog struct {
	unit         *entity.Unit
	recurring    []adapter.RecurringChargeData
	projects     []*entity.SpecialProject
	installments []*entity.SpecialInstallmentPayment
}

func (f *fakeCatalog) FindUnitByID(_ context.Context, id uuid.UUID) (*entity.Unit, error) {
	if f.unit == nil || f.unit.ID != id {
		return nil, domainerror.ErrUnitNotFound
	}
	return f.unit, nil
}

func (f *fakeCatalog) ListUnits(context.Context) ([]*entity.Unit, error) {
	return []*entity.Unit{f.unit}, nil
}

func (f *fakeCatalog) RecurringChargesForUnit(context.Context, *entity.Unit) ([]adapter.RecurringChargeData, error) {
	return f.recurring, nil
}

func (f *fakeCatalog) ActiveProjectsForUnit(context.Context, *entity.Unit) ([]*entity.SpecialProject, error) {
	return f.projects, nil
}

func (f *fakeCatalog) InstallmentPaymentsForUnit(context.Context, uuid.UUID) ([]*entity.SpecialInstallmentPayment, error) {
	return f.installments, nil
}

func (f *fakeCatalog) CreateUnit(context.Context, *entity.Unit) error                   { return nil }
func (f *fakeCatalog) CreateBillingPeriod(context.Context, *entity.BillingPeriod) error { return nil }
func (f *fakeCatalog) CreateSpecialProject(context.Context, *entity.SpecialProject) error {
	return nil
}

type fakePaymentRepo struct {
	payments     []*entity.Payment
	allocations  []*entity.Allocation
	installments []*entity.SpecialInstallmentPayment
}

func (f *fakePaymentRepo) CreateWithAllocations(
	_ context.Context,
	p *entity.Payment,
	allocations []*entity.Allocation,
	installments []*entity.SpecialInstallmentPayment,
) error {
	f.payments = append(f.payments, p)
	f.allocations = append(f.allocations, allocations...)
	f.installments = append(f.installments, installments...)
	return nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domainerror.ErrPaymentNotFound
}

func (f *fakePaymentRepo) FindByUnit(_ context.Context, unitID uuid.UUID) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.payments {
		if p.UnitID == unitID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) FindAllocationsByPayment(context.Context, uuid.UUID) ([]*entity.Allocation, error) {
	return f.allocations, nil
}

func (f *fakePaymentRepo) FindUnverifiedByPeriod(context.Context, time.Time, time.Time) ([]*entity.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) MarkVerified(context.Context, uuid.UUID) error  { return nil }
func (f *fakePaymentRepo) DeleteCascade(context.Context, uuid.UUID) error { return nil }

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func newUseCase(catalog *fakeCatalog, repo *fakePaymentRepo) *RegisterPaymentUseCase {
	builder := ledger.NewBuildStatementUseCase(catalog, repo)
	return NewRegisterPaymentUseCase(builder, repo)
}

func baseInput(unitID uuid.UUID, amount string, chargeIDs ...string) RegisterPaymentInput {
	return RegisterPaymentInput{
		UnitID:            unitID,
		Date:              time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:            dec(amount),
		Reference:         "TRF-00112233",
		Method:            entity.PaymentMethodTransfer,
		SelectedChargeIDs: chargeIDs,
	}
}

func TestRegisterPayment_HistoricalBeforeRecurring(t *testing.T) {
	unit := &entity.Unit{ID: uuid.New(), Number: "2-B", Aliquot: dec("0.05"), StartingBalance: dec("100")}
	period := adapter.RecurringChargeData{PeriodID: uuid.New(), Label: "2026-01", Amount: dec("50")}
	catalog := &fakeCatalog{unit: unit, recurring: []adapter.RecurringChargeData{period}}
	repo := &fakePaymentRepo{}

	uc := newUseCase(catalog, repo)
	out, err := uc.Execute(context.Background(), baseInput(unit.ID, "120", ledger.HistoricalChargeID, period.PeriodID.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Allocations) != 2 {
		t.Fatalf("expected 2 splits, got %d", len(out.Allocations))
	}
	if out.Allocations[0].Kind != entity.ChargeKindHistorical || !out.Allocations[0].Amount.Equal(dec("100")) {
		t.Errorf("expected 100 to the historical charge first, got %s to %s",
			out.Allocations[0].Amount, out.Allocations[0].Kind)
	}
	if out.Allocations[1].Kind != entity.ChargeKindRecurring || !out.Allocations[1].Amount.Equal(dec("20")) {
		t.Errorf("expected 20 to the recurring charge, got %s to %s",
			out.Allocations[1].Amount, out.Allocations[1].Kind)
	}
	if !out.HistoricalApplied.Equal(dec("100")) {
		t.Errorf("expected historical applied 100, got %s", out.HistoricalApplied)
	}
	if !out.Leftover.IsZero() {
		t.Errorf("expected no leftover, got %s", out.Leftover)
	}

	// Only the recurring split produces a persisted allocation row; the
	// historical share is reporting only.
	if len(repo.allocations) != 1 || !repo.allocations[0].Amount.Equal(dec("20")) {
		t.Fatalf("expected a single 20 allocation row, got %v", repo.allocations)
	}
	if len(repo.installments) != 0 {
		t.Errorf("expected no installment rows, got %d", len(repo.installments))
	}
}

func TestRegisterPayment_SpecialSelectionFlipsPriority(t *testing.T) {
	unit := &entity.Unit{ID: uuid.New(), Number: "2-B", Aliquot: dec("0.05"), StartingBalance: dec("100")}
	period := adapter.RecurringChargeData{PeriodID: uuid.New(), Label: "2026-01", Amount: dec("50")}
	project := entity.NewSpecialProject("Pump room", dec("4000"), 2, "")
	catalog := &fakeCatalog{
		unit:      unit,
		recurring: []adapter.RecurringChargeData{period},
		projects:  []*entity.SpecialProject{project},
	}
	repo := &fakePaymentRepo{}

	// Unit share 4000 * 0.05 = 200, 100 per installment.
	uc := newUseCase(catalog, repo)
	out, err := uc.Execute(context.Background(), baseInput(
		unit.ID, "120",
		ledger.HistoricalChargeID,
		period.PeriodID.String(),
		ledger.SpecialChargeID(project.ID, 1),
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Allocations[0].Kind != entity.ChargeKindSpecialInstallment || !out.Allocations[0].Amount.Equal(dec("100")) {
		t.Errorf("expected the installment settled first, got %s to %s",
			out.Allocations[0].Amount, out.Allocations[0].Kind)
	}
	if out.Allocations[1].Kind != entity.ChargeKindHistorical || !out.Allocations[1].Amount.Equal(dec("20")) {
		t.Errorf("expected the remaining 20 on the historical charge, got %s to %s",
			out.Allocations[1].Amount, out.Allocations[1].Kind)
	}

	if len(repo.installments) != 1 {
		t.Fatalf("expected one installment row, got %d", len(repo.installments))
	}
	row := repo.installments[0]
	if row.InstallmentNumber != 1 || !row.Amount.Equal(dec("100")) {
		t.Errorf("unexpected installment row: number=%d amount=%s", row.InstallmentNumber, row.Amount)
	}
}

func TestRegisterPayment_SecondaryCurrencyProportion(t *testing.T) {
	unit := &entity.Unit{ID: uuid.New(), Number: "3-C", Aliquot: dec("0.05"), StartingBalance: dec("0")}
	project := entity.NewSpecialProject("Facade", dec("4000"), 2, "")
	period := adapter.RecurringChargeData{PeriodID: uuid.New(), Label: "2026-01", Amount: dec("100")}
	catalog := &fakeCatalog{
		unit:      unit,
		recurring: []adapter.RecurringChargeData{period},
		projects:  []*entity.SpecialProject{project},
	}
	repo := &fakePaymentRepo{}

	input := baseInput(unit.ID, "0", ledger.SpecialChargeID(project.ID, 1), period.PeriodID.String())
	input.SecondaryAmount = decPtr("7200")
	input.Rate = decPtr("36")

	uc := newUseCase(catalog, repo)
	out, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 7200 / 36 = 200. Installment takes 100, half the payment, so half the
	// secondary amount travels with it.
	if !out.Amount.Equal(dec("200")) {
		t.Errorf("expected derived amount 200, got %s", out.Amount)
	}
	if len(repo.installments) != 1 {
		t.Fatalf("expected one installment row, got %d", len(repo.installments))
	}
	row := repo.installments[0]
	if row.SecondaryAmount == nil || !row.SecondaryAmount.Equal(dec("3600")) {
		t.Errorf("expected proportional secondary amount 3600, got %v", row.SecondaryAmount)
	}
}

func TestRegisterPayment_AllocationsNeverExceedPayment(t *testing.T) {
	unit := &entity.Unit{ID: uuid.New(), Number: "4-D", Aliquot: dec("0.05"), StartingBalance: dec("0")}
	periods := []adapter.RecurringChargeData{
		{PeriodID: uuid.New(), Label: "2026-01", Amount: dec("33.33")},
		{PeriodID: uuid.New(), Label: "2026-02", Amount: dec("33.33")},
		{PeriodID: uuid.New(), Label: "2026-03", Amount: dec("33.33")},
	}
	catalog := &fakeCatalog{unit: unit, recurring: periods}
	repo := &fakePaymentRepo{}

	uc := newUseCase(catalog, repo)
	out, err := uc.Execute(context.Background(), baseInput(
		unit.ID, "70.10",
		periods[0].PeriodID.String(), periods[1].PeriodID.String(), periods[2].PeriodID.String(),
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := decimal.Zero
	for _, a := range out.Allocations {
		total = total.Add(a.Amount)
	}
	if total.GreaterThan(dec("70.10")) {
		t.Errorf("allocations %s exceed the payment amount", total)
	}
	if !total.Add(out.Leftover).Equal(dec("70.10")) {
		t.Errorf("allocations %s plus leftover %s do not account for the payment", total, out.Leftover)
	}
}

func TestRegisterPayment_ValidationFailures(t *testing.T) {
	unit := &entity.Unit{ID: uuid.New(), Number: "5-E", Aliquot: dec("0.05"), StartingBalance: dec("100")}
	catalog := &fakeCatalog{unit: unit}
	repo := &fakePaymentRepo{}
	uc := newUseCase(catalog, repo)

	tests := []struct {
		name    string
		mutate  func(*RegisterPaymentInput)
		wantErr error
	}{
		{
			name:    "no charges selected",
			mutate:  func(in *RegisterPaymentInput) { in.SelectedChargeIDs = nil },
			wantErr: domainerror.ErrNoChargesSelected,
		},
		{
			name:    "empty reference",
			mutate:  func(in *RegisterPaymentInput) { in.Reference = "   " },
			wantErr: domainerror.ErrMissingPaymentReference,
		},
		{
			name:    "non-positive amount",
			mutate:  func(in *RegisterPaymentInput) { in.Amount = dec("-5") },
			wantErr: domainerror.ErrInvalidPaymentAmount,
		},
		{
			name: "secondary amount without rate",
			mutate: func(in *RegisterPaymentInput) {
				in.Amount = decimal.Zero
				in.SecondaryAmount = decPtr("3600")
			},
			wantErr: domainerror.ErrMissingRate,
		},
		{
			name: "conflicting dual amounts",
			mutate: func(in *RegisterPaymentInput) {
				in.SecondaryAmount = decPtr("3600")
				in.Rate = decPtr("36")
			},
			wantErr: domainerror.ErrInconsistentDualAmount,
		},
		{
			name: "unknown charge",
			mutate: func(in *RegisterPaymentInput) {
				in.SelectedChargeIDs = []string{"no-such-charge"}
			},
			wantErr: domainerror.ErrChargeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := baseInput(unit.ID, "50", ledger.HistoricalChargeID)
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if len(repo.payments) != 0 {
				t.Error("no payment should be written on validation failure")
			}
		})
	}
}

func TestRegisterPayment_AgreeingDualAmountsAccepted(t *testing.T) {
	unit := &entity.Unit{ID: uuid.New(), Number: "6-F", Aliquot: dec("0.05"), StartingBalance: dec("100")}
	catalog := &fakeCatalog{unit: unit}
	repo := &fakePaymentRepo{}

	input := baseInput(unit.ID, "100", ledger.HistoricalChargeID)
	input.SecondaryAmount = decPtr("3600")
	input.Rate = decPtr("36")

	uc := newUseCase(catalog, repo)
	out, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Amount.Equal(dec("100")) {
		t.Errorf("expected amount 100, got %s", out.Amount)
	}
}

func TestRegisterPayment_OrderSelection(t *testing.T) {
	historical := &entity.Charge{ID: "h", Kind: entity.ChargeKindHistorical, ChronologicalKey: 0}
	older := &entity.Charge{ID: "r1", Kind: entity.ChargeKindRecurring, ChronologicalKey: 202601}
	newer := &entity.Charge{ID: "r2", Kind: entity.ChargeKindRecurring, ChronologicalKey: 202602}
	special := &entity.Charge{ID: "s", Kind: entity.ChargeKindSpecialInstallment, ChronologicalKey: 1000001}

	t.Run("without special", func(t *testing.T) {
		selection := []*entity.Charge{newer, older, historical}
		orderSelection(selection)

		want := []string{"h", "r1", "r2"}
		for i, id := range want {
			if selection[i].ID != id {
				t.Errorf("position %d: expected %s, got %s", i, id, selection[i].ID)
			}
		}
	})

	t.Run("with special", func(t *testing.T) {
		selection := []*entity.Charge{newer, older, historical, special}
		orderSelection(selection)

		want := []string{"s", "h", "r1", "r2"}
		for i, id := range want {
			if selection[i].ID != id {
				t.Errorf("position %d: expected %s, got %s", i, id, selection[i].ID)
			}
		}
	})
}
