package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/condoledger/backend/internal/domain/entity"
)

func marchPeriod() (time.Time, time.Time) {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
}

func TestBankTransactionRepository_ResetMatches(t *testing.T) {
	db := openTestDB(t)
	repo := NewBankTransactionRepository(db)
	ctx := context.Background()
	from, to := marchPeriod()

	matched := entity.NewBankTransaction(from.AddDate(0, 0, 2), "transfer", dec("150"), "REF-1")
	pending := entity.NewBankTransaction(from.AddDate(0, 0, 3), "transfer", dec("90"), "REF-2")
	if err := repo.CreateBatch(ctx, []*entity.BankTransaction{matched, pending}); err != nil {
		t.Fatalf("create batch: %v", err)
	}
	if err := repo.MarkMatched(ctx, matched.ID, uuid.New(), entity.MatchTypeReference); err != nil {
		t.Fatalf("mark matched: %v", err)
	}

	reset, err := repo.ResetMatches(ctx, from, to)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if reset != 1 {
		t.Errorf("expected 1 reset row, got %d", reset)
	}

	found, err := repo.FindPendingByPeriod(ctx, from, to)
	if err != nil {
		t.Fatalf("find pending: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected both movements pending after reset, got %d", len(found))
	}
	for _, bt := range found {
		if bt.MatchedPaymentID != nil || bt.MatchType != nil {
			t.Errorf("movement %s still carries match annotations", bt.ID)
		}
	}
}

func TestBankTransactionRepository_CountByStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewBankTransactionRepository(db)
	ctx := context.Background()
	from, to := marchPeriod()

	first := entity.NewBankTransaction(from.AddDate(0, 0, 1), "transfer", dec("150"), "REF-1")
	second := entity.NewBankTransaction(from.AddDate(0, 0, 2), "transfer", dec("90"), "REF-2")
	outside := entity.NewBankTransaction(to.AddDate(0, 1, 0), "transfer", dec("30"), "REF-3")
	if err := repo.CreateBatch(ctx, []*entity.BankTransaction{first, second, outside}); err != nil {
		t.Fatalf("create batch: %v", err)
	}
	if err := repo.MarkMatched(ctx, first.ID, uuid.New(), entity.MatchTypeAmount); err != nil {
		t.Fatalf("mark matched: %v", err)
	}

	counts, err := repo.CountByStatus(ctx, from, to)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[entity.BankTransactionStatusMatched] != 1 {
		t.Errorf("expected 1 matched, got %d", counts[entity.BankTransactionStatusMatched])
	}
	if counts[entity.BankTransactionStatusPending] != 1 {
		t.Errorf("expected 1 pending, got %d", counts[entity.BankTransactionStatusPending])
	}
}
