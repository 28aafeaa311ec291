package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/adapter"
	"github.com/condoledger/backend/internal/domain/entity"
	domainerror "github.com/condoledger/backend/internal/domain/error"
)

// HistoricalChargeID is the synthetic charge ID for pre-system arrears.
const HistoricalChargeID = "historical"

// SurplusChargeID is the synthetic charge ID for unapplied funds.
const SurplusChargeID = "surplus"

// SpecialChargeID builds the synthetic charge ID for one capital-project
// installment.
func SpecialChargeID(projectID uuid.UUID, installment int) string {
	return fmt.Sprintf("%s#%d", projectID, installment)
}

// BuildStatementInput represents the input for building a unit's statement.
type BuildStatementInput struct {
	UnitID uuid.UUID
}

// PaymentSummary describes the most recent payment on a statement.
type PaymentSummary struct {
	Amount decimal.Decimal
	Date   time.Time
}

// BuildStatementOutput represents a unit's balanced account statement.
type BuildStatementOutput struct {
	Unit *entity.Unit

	// Display is the presentation ordering: surplus credit first when
	// positive, then the historical charge, then recurring charges newest
	// first, then special installments oldest first.
	Display []*entity.Charge

	// Charges is the raw chronological list consumed by the payment
	// allocator: historical, recurring ascending, then special installments.
	Charges []*entity.Charge

	TotalOwed              decimal.Decimal
	SurplusCredit          decimal.Decimal
	CurrentRecurringAmount decimal.Decimal
	LastPayment            *PaymentSummary
}

// BuildStatementUseCase folds all charge sources and the payment history for
// one unit into a deterministic account statement. The build is a pure
// function of its inputs: identical catalog entries and payment history
// always produce an identical statement.
type BuildStatementUseCase struct {
	catalog     adapter.ChargeCatalog
	paymentRepo adapter.PaymentRepository
}

// NewBuildStatementUseCase creates a new BuildStatementUseCase instance.
func NewBuildStatementUseCase(catalog adapter.ChargeCatalog, paymentRepo adapter.PaymentRepository) *BuildStatementUseCase {
	return &BuildStatementUseCase{
		catalog:     catalog,
		paymentRepo: paymentRepo,
	}
}

// Execute builds the statement for one unit.
func (uc *BuildStatementUseCase) Execute(ctx context.Context, input BuildStatementInput) (*BuildStatementOutput, error) {
	unit, err := uc.catalog.FindUnitByID(ctx, input.UnitID)
	if err != nil {
		return nil, err
	}

	recurring, err := uc.catalog.RecurringChargesForUnit(ctx, unit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring charges: %w", err)
	}

	projects, err := uc.catalog.ActiveProjectsForUnit(ctx, unit)
	if err != nil {
		return nil, fmt.Errorf("failed to load special projects: %w", err)
	}

	installments, err := uc.catalog.InstallmentPaymentsForUnit(ctx, unit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load installment payments: %w", err)
	}

	payments, err := uc.paymentRepo.FindByUnit(ctx, unit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment history: %w", err)
	}

	// The common pool: everything received, minus funds reserved for special
	// installments, plus any pre-existing credit. Fungible until applied.
	totalReceived := decimal.Zero
	for _, p := range payments {
		if p.Amount.IsNegative() {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeStatementImbalance,
				fmt.Sprintf("payment %s has a negative amount", p.ID),
				domainerror.ErrStatementImbalance,
			)
		}
		totalReceived = totalReceived.Add(p.Amount).Round(2)
	}

	totalReserved := decimal.Zero
	for _, ip := range installments {
		totalReserved = totalReserved.Add(ip.Amount).Round(2)
	}

	fuel := totalReceived.Sub(totalReserved).Add(unit.StartingCredit()).Round(2)
	if fuel.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeStatementImbalance,
			"reserved installment funds exceed payments received",
			domainerror.ErrStatementImbalance,
		)
	}

	chronological := uc.buildChronologicalCharges(unit, recurring)

	totalOwed := decimal.Zero
	for _, charge := range chronological {
		applied := decimal.Min(fuel, charge.Outstanding()).Round(2)
		if applied.IsPositive() {
			charge.PaidAmount = charge.PaidAmount.Add(applied).Round(2)
			fuel = fuel.Sub(applied).Round(2)
		}
		if charge.PaidAmount.IsNegative() || charge.PaidAmount.GreaterThan(charge.Amount) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeNegativePaidAmount,
				fmt.Sprintf("charge %s paid amount %s out of range", charge.ID, charge.PaidAmount),
				domainerror.ErrNegativePaidAmount,
			)
		}
		if charge.Status() == entity.ChargeStatusPending {
			totalOwed = totalOwed.Add(charge.Outstanding().Round(2)).Round(2)
		}
	}

	// Special installments never draw on the pool: each is settled only by an
	// explicit installment payment record for that exact installment.
	special := uc.buildSpecialCharges(unit, projects, installments)
	for _, charge := range special {
		if charge.Status() == entity.ChargeStatusPending {
			totalOwed = totalOwed.Add(charge.Amount).Round(2)
		}
	}

	surplus := decimal.Zero
	if fuel.IsPositive() {
		surplus = fuel
	}

	all := append(append([]*entity.Charge{}, chronological...), special...)

	return &BuildStatementOutput{
		Unit:                   unit,
		Display:                buildDisplayList(chronological, special, surplus),
		Charges:                all,
		TotalOwed:              totalOwed,
		SurplusCredit:          surplus,
		CurrentRecurringAmount: latestRecurringAmount(chronological),
		LastPayment:            latestPayment(payments),
	}, nil
}

// buildChronologicalCharges materializes the pool-funded charge list: the
// historical charge at the lowest key, then every recurring charge ascending.
func (uc *BuildStatementUseCase) buildChronologicalCharges(unit *entity.Unit, recurring []adapter.RecurringChargeData) []*entity.Charge {
	charges := make([]*entity.Charge, 0, len(recurring)+1)

	if unit.StartingDebt().IsPositive() {
		charges = append(charges, &entity.Charge{
			ID:               HistoricalChargeID,
			Kind:             entity.ChargeKindHistorical,
			Label:            "Balance prior to system",
			Amount:           unit.StartingDebt().Round(2),
			PaidAmount:       decimal.Zero,
			ChronologicalKey: historicalChargeKey,
		})
	}

	for _, rc := range recurring {
		charges = append(charges, &entity.Charge{
			ID:               rc.PeriodID.String(),
			Kind:             entity.ChargeKindRecurring,
			Label:            rc.Label,
			Amount:           rc.Amount.Round(2),
			PaidAmount:       decimal.Zero,
			ChronologicalKey: chronologicalKey(rc.Label),
		})
	}

	sort.SliceStable(charges, func(i, j int) bool {
		return charges[i].ChronologicalKey < charges[j].ChronologicalKey
	})

	return charges
}

// buildSpecialCharges materializes one charge per project installment. A
// charge is settled when at least one installment payment record exists for
// that exact installment.
func (uc *BuildStatementUseCase) buildSpecialCharges(
	unit *entity.Unit,
	projects []*entity.SpecialProject,
	installments []*entity.SpecialInstallmentPayment,
) []*entity.Charge {
	settled := make(map[string]bool, len(installments))
	for _, ip := range installments {
		settled[SpecialChargeID(ip.ProjectID, ip.InstallmentNumber)] = true
	}

	var charges []*entity.Charge
	for _, project := range projects {
		if project.InstallmentCount <= 0 {
			continue
		}

		unitShare := project.TotalBudget.Mul(unit.Aliquot).Round(2)
		installmentAmount := unitShare.Div(decimal.NewFromInt(int64(project.InstallmentCount))).Round(2)

		for n := 1; n <= project.InstallmentCount; n++ {
			id := SpecialChargeID(project.ID, n)
			paid := decimal.Zero
			if settled[id] {
				paid = installmentAmount
			}

			projectID := project.ID
			number := n
			charges = append(charges, &entity.Charge{
				ID:                id,
				Kind:              entity.ChargeKindSpecialInstallment,
				Label:             fmt.Sprintf("%s (%d/%d)", project.Name, n, project.InstallmentCount),
				Amount:            installmentAmount,
				PaidAmount:        paid,
				ChronologicalKey:  specialChargeKeyBase + n,
				ProjectID:         &projectID,
				InstallmentNumber: &number,
			})
		}
	}

	return charges
}

// buildDisplayList orders charges for presentation: surplus credit first when
// positive, then historical, then recurring newest first, then special
// installments oldest first.
func buildDisplayList(chronological, special []*entity.Charge, surplus decimal.Decimal) []*entity.Charge {
	display := make([]*entity.Charge, 0, len(chronological)+len(special)+1)

	if surplus.IsPositive() {
		display = append(display, &entity.Charge{
			ID:               SurplusChargeID,
			Kind:             entity.ChargeKindSurplusCredit,
			Label:            "Available credit",
			Amount:           surplus.Neg(),
			PaidAmount:       decimal.Zero,
			ChronologicalKey: historicalChargeKey,
		})
	}

	for _, c := range chronological {
		if c.Kind == entity.ChargeKindHistorical {
			display = append(display, c)
		}
	}

	recurring := make([]*entity.Charge, 0, len(chronological))
	for _, c := range chronological {
		if c.Kind == entity.ChargeKindRecurring {
			recurring = append(recurring, c)
		}
	}
	sort.SliceStable(recurring, func(i, j int) bool {
		return recurring[i].ChronologicalKey > recurring[j].ChronologicalKey
	})
	display = append(display, recurring...)

	ordered := make([]*entity.Charge, len(special))
	copy(ordered, special)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ChronologicalKey < ordered[j].ChronologicalKey
	})
	display = append(display, ordered...)

	return display
}

func latestRecurringAmount(charges []*entity.Charge) decimal.Decimal {
	latest := decimal.Zero
	bestKey := -1
	for _, c := range charges {
		if c.Kind == entity.ChargeKindRecurring && c.ChronologicalKey > bestKey {
			bestKey = c.ChronologicalKey
			latest = c.Amount
		}
	}
	return latest
}

func latestPayment(payments []*entity.Payment) *PaymentSummary {
	var latest *entity.Payment
	for _, p := range payments {
		if latest == nil || p.Date.After(latest.Date) {
			latest = p
		}
	}
	if latest == nil {
		return nil
	}
	return &PaymentSummary{Amount: latest.Amount, Date: latest.Date}
}
