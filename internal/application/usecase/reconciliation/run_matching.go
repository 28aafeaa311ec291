// Package reconciliation contains bank reconciliation use cases.
package reconciliation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/condoledger/backend/internal/application/adapter"
	"github.com/condoledger/backend/internal/domain/entity"
	domainerror "github.com/condoledger/backend/internal/domain/error"
	"github.com/condoledger/backend/internal/domain/valueobject"
)

// RunMatchingInput represents the period to reconcile.
type RunMatchingInput struct {
	From time.Time
	To   time.Time
}

// MatchOutput describes one pairing produced by a run.
type MatchOutput struct {
	BankTransactionID   string
	SystemTransactionID string
	Kind                valueobject.SystemTransactionKind
	MatchType           entity.MatchType
}

// RunMatchingOutput represents the result of a matching run.
type RunMatchingOutput struct {
	Matches            []MatchOutput
	MatchedByReference int
	MatchedByAmount    int
	UnmatchedBank      int
	UnmatchedSystem    int
}

// RunMatchingUseCase pairs externally reported bank movements with internally
// recorded payments and expenses. Phase one matches on trailing reference
// digits; phase two matches on amount and date proximity, and only when the
// candidate is unique. Matched records are excluded from every later pool, so
// re-running after a partial failure is a no-op for work already done.
type RunMatchingUseCase struct {
	bankRepo    adapter.BankTransactionRepository
	paymentRepo adapter.PaymentRepository
	expenseRepo adapter.ExpenseRepository
	config      valueobject.MatchingConfig
}

// NewRunMatchingUseCase creates a new RunMatchingUseCase instance.
func NewRunMatchingUseCase(
	bankRepo adapter.BankTransactionRepository,
	paymentRepo adapter.PaymentRepository,
	expenseRepo adapter.ExpenseRepository,
) *RunMatchingUseCase {
	return &RunMatchingUseCase{
		bankRepo:    bankRepo,
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
		config:      valueobject.DefaultMatchingConfig(),
	}
}

// Execute runs both matching phases over the period.
func (uc *RunMatchingUseCase) Execute(ctx context.Context, input RunMatchingInput) (*RunMatchingOutput, error) {
	if input.To.Before(input.From) {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidPeriod,
			"period end precedes period start",
			domainerror.ErrInvalidPeriod,
		)
	}

	bank, err := uc.bankRepo.FindPendingByPeriod(ctx, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending bank movements: %w", err)
	}

	candidates, err := uc.loadCandidates(ctx, input.From, input.To)
	if err != nil {
		return nil, err
	}

	output := &RunMatchingOutput{}

	unmatchedBank, err := uc.matchByReference(ctx, bank, candidates, output)
	if err != nil {
		return nil, err
	}

	if err := uc.matchByAmount(ctx, unmatchedBank, candidates, output); err != nil {
		return nil, err
	}

	output.UnmatchedSystem = len(candidates.remaining)

	slog.Info("Reconciliation run completed",
		"from", input.From.Format("2006-01-02"),
		"to", input.To.Format("2006-01-02"),
		"byReference", output.MatchedByReference,
		"byAmount", output.MatchedByAmount,
		"unmatchedBank", output.UnmatchedBank,
		"unmatchedSystem", output.UnmatchedSystem,
	)

	return output, nil
}

// candidatePool holds the not-yet-consumed system transactions for a run.
type candidatePool struct {
	remaining []valueobject.SystemTransaction
}

func (p *candidatePool) consume(i int) valueobject.SystemTransaction {
	tx := p.remaining[i]
	p.remaining = append(p.remaining[:i], p.remaining[i+1:]...)
	return tx
}

// loadCandidates builds the system transaction pool: unverified payments as
// income, paid unreconciled expenses as negative-amount expense movements.
func (uc *RunMatchingUseCase) loadCandidates(ctx context.Context, from, to time.Time) (*candidatePool, error) {
	payments, err := uc.paymentRepo.FindUnverifiedByPeriod(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load unverified payments: %w", err)
	}

	expenses, err := uc.expenseRepo.FindPaidUnreconciledByPeriod(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load unreconciled expenses: %w", err)
	}

	pool := &candidatePool{
		remaining: make([]valueobject.SystemTransaction, 0, len(payments)+len(expenses)),
	}
	for _, p := range payments {
		pool.remaining = append(pool.remaining, valueobject.SystemTransaction{
			ID:        p.ID,
			Date:      p.Date,
			Amount:    p.Amount,
			Reference: p.Reference,
			Kind:      valueobject.SystemTransactionIncome,
		})
	}
	for _, e := range expenses {
		pool.remaining = append(pool.remaining, valueobject.SystemTransaction{
			ID:        e.ID,
			Date:      e.Date,
			Amount:    e.Amount.Neg(),
			Reference: e.Reference,
			Kind:      valueobject.SystemTransactionExpense,
		})
	}

	return pool, nil
}

// matchByReference is phase one: exact equality of the trailing reference
// characters. Returns the bank movements still unmatched.
func (uc *RunMatchingUseCase) matchByReference(
	ctx context.Context,
	bank []*entity.BankTransaction,
	pool *candidatePool,
	output *RunMatchingOutput,
) ([]*entity.BankTransaction, error) {
	var unmatched []*entity.BankTransaction

	for _, bt := range bank {
		bankKey, ok := uc.config.ReferenceKey(bt.Reference)
		if !ok {
			unmatched = append(unmatched, bt)
			continue
		}

		found := -1
		for i, sys := range pool.remaining {
			sysKey, ok := uc.config.ReferenceKey(sys.Reference)
			if ok && sysKey == bankKey {
				found = i
				break
			}
		}

		if found < 0 {
			unmatched = append(unmatched, bt)
			continue
		}

		sys := pool.consume(found)
		if err := uc.commitMatch(ctx, bt, sys, entity.MatchTypeReference, output); err != nil {
			return nil, err
		}
	}

	return unmatched, nil
}

// matchByAmount is phase two: magnitude equality within tolerance plus date
// proximity. A bank movement is matched only when exactly one candidate
// qualifies; ambiguity is never auto-resolved.
func (uc *RunMatchingUseCase) matchByAmount(
	ctx context.Context,
	bank []*entity.BankTransaction,
	pool *candidatePool,
	output *RunMatchingOutput,
) error {
	for _, bt := range bank {
		found := -1
		multiple := false
		for i, sys := range pool.remaining {
			if uc.config.IsAmountMatch(sys.Amount, bt.Amount) && uc.config.IsDateMatch(sys.Date, bt.Date) {
				if found >= 0 {
					multiple = true
					break
				}
				found = i
			}
		}

		if found < 0 || multiple {
			output.UnmatchedBank++
			continue
		}

		sys := pool.consume(found)
		if err := uc.commitMatch(ctx, bt, sys, entity.MatchTypeAmount, output); err != nil {
			return err
		}
	}

	return nil
}

// commitMatch persists one pairing: the bank movement is annotated, and an
// income match additionally promotes the payment to verified.
func (uc *RunMatchingUseCase) commitMatch(
	ctx context.Context,
	bt *entity.BankTransaction,
	sys valueobject.SystemTransaction,
	matchType entity.MatchType,
	output *RunMatchingOutput,
) error {
	if err := uc.bankRepo.MarkMatched(ctx, bt.ID, sys.ID, matchType); err != nil {
		return fmt.Errorf("failed to annotate bank movement %s: %w", bt.ID, err)
	}

	switch sys.Kind {
	case valueobject.SystemTransactionIncome:
		if err := uc.paymentRepo.MarkVerified(ctx, sys.ID); err != nil {
			return fmt.Errorf("failed to verify payment %s: %w", sys.ID, err)
		}
	case valueobject.SystemTransactionExpense:
		if err := uc.expenseRepo.MarkReconciled(ctx, sys.ID); err != nil {
			return fmt.Errorf("failed to reconcile expense %s: %w", sys.ID, err)
		}
	}

	switch matchType {
	case entity.MatchTypeReference:
		output.MatchedByReference++
	case entity.MatchTypeAmount:
		output.MatchedByAmount++
	}

	output.Matches = append(output.Matches, MatchOutput{
		BankTransactionID:   bt.ID.String(),
		SystemTransactionID: sys.ID.String(),
		Kind:                sys.Kind,
		MatchType:           matchType,
	})

	return nil
}
