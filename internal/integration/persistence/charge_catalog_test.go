package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/condoledger/backend/internal/domain/entity"
	domainerror "github.com/condoledger/backend/internal/domain/error"
)

func TestChargeCatalog_RecurringChargesScaleByAliquot(t *testing.T) {
	db := openTestDB(t)
	catalog := NewChargeCatalog(db)
	ctx := context.Background()

	unit := entity.NewUnit("2-B", "A", "Ana Morales", dec("0.0333"), dec("0"))
	if err := catalog.CreateUnit(ctx, unit); err != nil {
		t.Fatalf("create unit: %v", err)
	}
	if err := catalog.CreateBillingPeriod(ctx, entity.NewBillingPeriod("2026-01", dec("10000"))); err != nil {
		t.Fatalf("create period: %v", err)
	}
	if err := catalog.CreateBillingPeriod(ctx, entity.NewBillingPeriod("2026-02", dec("12500"))); err != nil {
		t.Fatalf("create period: %v", err)
	}

	charges, err := catalog.RecurringChargesForUnit(ctx, unit)
	if err != nil {
		t.Fatalf("recurring charges: %v", err)
	}
	if len(charges) != 2 {
		t.Fatalf("expected 2 charges, got %d", len(charges))
	}

	// 10000 * 0.0333 = 333, 12500 * 0.0333 = 416.25, ordered by label.
	if charges[0].Label != "2026-01" || !charges[0].Amount.Equal(dec("333")) {
		t.Errorf("unexpected first charge: %s %s", charges[0].Label, charges[0].Amount)
	}
	if charges[1].Label != "2026-02" || !charges[1].Amount.Equal(dec("416.25")) {
		t.Errorf("unexpected second charge: %s %s", charges[1].Label, charges[1].Amount)
	}
}

func TestChargeCatalog_DuplicateUnitNumber(t *testing.T) {
	db := openTestDB(t)
	catalog := NewChargeCatalog(db)
	ctx := context.Background()

	if err := catalog.CreateUnit(ctx, entity.NewUnit("2-B", "A", "Ana Morales", dec("0.05"), dec("0"))); err != nil {
		t.Fatalf("create unit: %v", err)
	}

	err := catalog.CreateUnit(ctx, entity.NewUnit("2-B", "A", "Luis Paredes", dec("0.04"), dec("0")))
	if !errors.Is(err, domainerror.ErrDuplicateUnitNumber) {
		t.Errorf("expected ErrDuplicateUnitNumber, got %v", err)
	}
}

func TestChargeCatalog_DuplicatePeriodLabel(t *testing.T) {
	db := openTestDB(t)
	catalog := NewChargeCatalog(db)
	ctx := context.Background()

	if err := catalog.CreateBillingPeriod(ctx, entity.NewBillingPeriod("2026-01", dec("10000"))); err != nil {
		t.Fatalf("create period: %v", err)
	}

	err := catalog.CreateBillingPeriod(ctx, entity.NewBillingPeriod("2026-01", dec("9000")))
	if !errors.Is(err, domainerror.ErrDuplicatePeriodLabel) {
		t.Errorf("expected ErrDuplicatePeriodLabel, got %v", err)
	}
}

func TestChargeCatalog_ActiveProjectsFilterByTower(t *testing.T) {
	db := openTestDB(t)
	catalog := NewChargeCatalog(db)
	ctx := context.Background()

	unit := entity.NewUnit("2-B", "A", "Ana Morales", dec("0.05"), dec("0"))
	if err := catalog.CreateUnit(ctx, unit); err != nil {
		t.Fatalf("create unit: %v", err)
	}

	all := entity.NewSpecialProject("Pump room", dec("10000"), 4, "")
	towerA := entity.NewSpecialProject("Tower A facade", dec("8000"), 2, "A")
	towerB := entity.NewSpecialProject("Tower B facade", dec("8000"), 2, "B")
	cancelled := entity.NewSpecialProject("Abandoned", dec("5000"), 2, "")
	cancelled.Status = entity.SpecialProjectStatusCancelled

	for _, p := range []*entity.SpecialProject{all, towerA, towerB, cancelled} {
		if err := catalog.CreateSpecialProject(ctx, p); err != nil {
			t.Fatalf("create project %s: %v", p.Name, err)
		}
	}

	projects, err := catalog.ActiveProjectsForUnit(ctx, unit)
	if err != nil {
		t.Fatalf("active projects: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	names := map[string]bool{}
	for _, p := range projects {
		names[p.Name] = true
	}
	if !names["Pump room"] || !names["Tower A facade"] {
		t.Errorf("unexpected project set: %v", names)
	}
}

func TestChargeCatalog_FindUnitByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	catalog := NewChargeCatalog(db)

	_, err := catalog.FindUnitByID(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrUnitNotFound) {
		t.Errorf("expected ErrUnitNotFound, got %v", err)
	}
}
