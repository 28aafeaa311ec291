package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/condoledger/backend/internal/domain/entity"
)

// BankTransactionRepository defines the interface for bank movement
// persistence operations.
type BankTransactionRepository interface {
	// CreateBatch persists a batch of imported bank movements.
	CreateBatch(ctx context.Context, transactions []*entity.BankTransaction) error

	// FindPendingByPeriod retrieves pending bank movements whose date falls
	// within [from, to], ordered by date ascending.
	FindPendingByPeriod(ctx context.Context, from, to time.Time) ([]*entity.BankTransaction, error)

	// MarkMatched annotates a bank movement as matched against a system
	// transaction.
	MarkMatched(ctx context.Context, id, matchedPaymentID uuid.UUID, matchType entity.MatchType) error

	// ResetMatches clears match annotations for the period, returning every
	// matched movement to pending. Returns the number of rows reset.
	ResetMatches(ctx context.Context, from, to time.Time) (int64, error)

	// CountByStatus returns the number of movements per status for the period.
	CountByStatus(ctx context.Context, from, to time.Time) (map[entity.BankTransactionStatus]int64, error)
}
