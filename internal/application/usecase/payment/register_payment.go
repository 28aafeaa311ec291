// Package payment contains payment registration and allocation use cases.
package payment

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/adapter"
	"github.com/condoledger/backend/internal/application/usecase/ledger"
	"github.com/condoledger/backend/internal/domain/entity"
	domainerror "github.com/condoledger/backend/internal/domain/error"
)

// allocationStopThreshold ends the allocation walk once the remaining amount
// is no longer worth splitting.
var allocationStopThreshold = decimal.NewFromFloat(0.001)

// dualAmountTolerance bounds how far a supplied amount may drift from its
// secondary-currency conversion before the pair is rejected.
var dualAmountTolerance = decimal.NewFromFloat(0.01)

// RegisterPaymentInput represents the input for registering a payment.
// Amount is the unit-of-account amount; when zero, SecondaryAmount and Rate
// must be supplied and the amount is derived from them.
type RegisterPaymentInput struct {
	UnitID            uuid.UUID
	Date              time.Time
	Amount            decimal.Decimal
	SecondaryAmount   *decimal.Decimal
	Rate              *decimal.Decimal
	Reference         string
	Method            entity.PaymentMethod
	SelectedChargeIDs []string
}

// AllocationOutput describes one split of the payment.
type AllocationOutput struct {
	ChargeID string
	Label    string
	Kind     entity.ChargeKind
	Amount   decimal.Decimal
}

// RegisterPaymentOutput represents the result of registering a payment.
type RegisterPaymentOutput struct {
	PaymentID         uuid.UUID
	Amount            decimal.Decimal
	Allocations       []AllocationOutput
	HistoricalApplied decimal.Decimal
	Leftover          decimal.Decimal
}

// RegisterPaymentUseCase records a payment and splits it across the selected
// outstanding charges under the priority policy. All writes for one
// registration happen in a single transaction, and registrations for the
// same unit are serialized.
type RegisterPaymentUseCase struct {
	statementBuilder *ledger.BuildStatementUseCase
	paymentRepo      adapter.PaymentRepository

	unitLocks sync.Map // uuid.UUID -> *sync.Mutex
}

// NewRegisterPaymentUseCase creates a new RegisterPaymentUseCase instance.
func NewRegisterPaymentUseCase(
	statementBuilder *ledger.BuildStatementUseCase,
	paymentRepo adapter.PaymentRepository,
) *RegisterPaymentUseCase {
	return &RegisterPaymentUseCase{
		statementBuilder: statementBuilder,
		paymentRepo:      paymentRepo,
	}
}

// Execute performs the payment registration.
func (uc *RegisterPaymentUseCase) Execute(ctx context.Context, input RegisterPaymentInput) (*RegisterPaymentOutput, error) {
	if len(input.SelectedChargeIDs) == 0 {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeNoChargesSelected,
			"at least one charge must be selected",
			domainerror.ErrNoChargesSelected,
		)
	}

	if strings.TrimSpace(input.Reference) == "" {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeMissingPaymentReference,
			"payment reference is required",
			domainerror.ErrMissingPaymentReference,
		)
	}

	amount, err := uc.resolveAmount(input)
	if err != nil {
		return nil, err
	}

	// Two concurrent registrations against the same unit would race on which
	// charges are still pending; serialize them per unit.
	lock := uc.lockForUnit(input.UnitID)
	lock.Lock()
	defer lock.Unlock()

	statement, err := uc.statementBuilder.Execute(ctx, ledger.BuildStatementInput{UnitID: input.UnitID})
	if err != nil {
		return nil, err
	}

	selected, err := uc.resolveSelection(statement, input.SelectedChargeIDs)
	if err != nil {
		return nil, err
	}

	orderSelection(selected)

	pay := entity.NewPayment(
		input.UnitID,
		input.Date,
		amount,
		input.SecondaryAmount,
		input.Rate,
		strings.TrimSpace(input.Reference),
		input.Method,
	)

	var (
		allocations       []*entity.Allocation
		installments      []*entity.SpecialInstallmentPayment
		outputs           []AllocationOutput
		historicalApplied = decimal.Zero
		remaining         = amount
	)

	for _, charge := range selected {
		if remaining.LessThanOrEqual(allocationStopThreshold) {
			break
		}

		allocate := decimal.Min(remaining, charge.Outstanding()).Round(2)
		if !allocate.IsPositive() {
			continue
		}

		switch charge.Kind {
		case entity.ChargeKindRecurring:
			allocations = append(allocations, entity.NewAllocation(pay.ID, charge.ID, allocate))

		case entity.ChargeKindSpecialInstallment:
			var secondary *decimal.Decimal
			if input.SecondaryAmount != nil {
				s := input.SecondaryAmount.Mul(allocate.Div(amount)).Round(2)
				secondary = &s
			}
			installments = append(installments, entity.NewSpecialInstallmentPayment(
				*charge.ProjectID,
				input.UnitID,
				pay.ID,
				*charge.InstallmentNumber,
				allocate,
				secondary,
			))

		case entity.ChargeKindHistorical:
			// Reported only: the starting balance stays a fixed baseline and
			// the common pool absorbs the funds on the next build.
			historicalApplied = historicalApplied.Add(allocate).Round(2)
		}

		outputs = append(outputs, AllocationOutput{
			ChargeID: charge.ID,
			Label:    charge.Label,
			Kind:     charge.Kind,
			Amount:   allocate,
		})
		remaining = remaining.Sub(allocate).Round(2)
	}

	if err := uc.paymentRepo.CreateWithAllocations(ctx, pay, allocations, installments); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	return &RegisterPaymentOutput{
		PaymentID:         pay.ID,
		Amount:            amount,
		Allocations:       outputs,
		HistoricalApplied: historicalApplied,
		Leftover:          remaining,
	}, nil
}

// resolveAmount computes the unit-of-account amount, deriving it from the
// secondary currency when no direct amount was given. A supplied amount and a
// secondary-currency pair must agree within a cent.
func (uc *RegisterPaymentUseCase) resolveAmount(input RegisterPaymentInput) (decimal.Decimal, error) {
	amount := input.Amount

	if input.SecondaryAmount != nil {
		if input.Rate == nil || !input.Rate.IsPositive() {
			return decimal.Zero, domainerror.NewPaymentError(
				domainerror.ErrCodeMissingRate,
				"a positive conversion rate is required with a secondary-currency amount",
				domainerror.ErrMissingRate,
			)
		}
		derived := input.SecondaryAmount.Div(*input.Rate).Round(2)
		if amount.IsZero() {
			amount = derived
		} else if amount.Round(2).Sub(derived).Abs().GreaterThan(dualAmountTolerance) {
			return decimal.Zero, domainerror.NewPaymentError(
				domainerror.ErrCodeInconsistentDualAmount,
				"amount disagrees with the secondary-currency conversion",
				domainerror.ErrInconsistentDualAmount,
			)
		}
	}

	if !amount.IsPositive() {
		return decimal.Zero, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be positive",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

	return amount.Round(2), nil
}

// resolveSelection maps the selected charge IDs onto the statement's pending
// charges. Unknown IDs abort the operation before any write.
func (uc *RegisterPaymentUseCase) resolveSelection(statement *ledger.BuildStatementOutput, ids []string) ([]*entity.Charge, error) {
	byID := make(map[string]*entity.Charge, len(statement.Charges))
	for _, c := range statement.Charges {
		byID[c.ID] = c
	}

	selected := make([]*entity.Charge, 0, len(ids))
	for _, id := range ids {
		charge, ok := byID[id]
		if !ok {
			return nil, domainerror.NewPaymentError(
				domainerror.ErrCodeChargeNotFound,
				fmt.Sprintf("charge %s not found on the unit's statement", id),
				domainerror.ErrChargeNotFound,
			)
		}
		if charge.Status() != entity.ChargeStatusPending {
			continue
		}
		selected = append(selected, charge)
	}

	if len(selected) == 0 {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeNoChargesSelected,
			"none of the selected charges is pending",
			domainerror.ErrNoChargesSelected,
		)
	}

	return selected, nil
}

// orderSelection sorts the selection under the allocation priority policy:
// when a special installment is selected, specials come first, then
// historical, then recurring; otherwise historical, recurring, specials.
// Ties resolve oldest first.
func orderSelection(selected []*entity.Charge) {
	hasSpecial := false
	for _, c := range selected {
		if c.IsSpecial() {
			hasSpecial = true
			break
		}
	}

	priority := func(c *entity.Charge) int {
		switch c.Kind {
		case entity.ChargeKindSpecialInstallment:
			if hasSpecial {
				return 0
			}
			return 2
		case entity.ChargeKindHistorical:
			if hasSpecial {
				return 1
			}
			return 0
		default:
			if hasSpecial {
				return 2
			}
			return 1
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		pi, pj := priority(selected[i]), priority(selected[j])
		if pi != pj {
			return pi < pj
		}
		return selected[i].ChronologicalKey < selected[j].ChronologicalKey
	})
}

func (uc *RegisterPaymentUseCase) lockForUnit(unitID uuid.UUID) *sync.Mutex {
	actual, _ := uc.unitLocks.LoadOrStore(unitID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
