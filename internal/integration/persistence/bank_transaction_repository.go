package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/condoledger/backend/internal/application/adapter"
	"github.com/condoledger/backend/internal/domain/entity"
	domainerror "github.com/condoledger/backend/internal/domain/error"
	"github.com/condoledger/backend/internal/integration/persistence/model"
)

// bankTransactionRepository implements the adapter.BankTransactionRepository
// interface.
type bankTransactionRepository struct {
	db *gorm.DB
}

// NewBankTransactionRepository creates a new bank transaction repository instance.
func NewBankTransactionRepository(db *gorm.DB) adapter.BankTransactionRepository {
	return &bankTransactionRepository{
		db: db,
	}
}

// CreateBatch persists a batch of imported bank movements atomically.
func (r *bankTransactionRepository) CreateBatch(ctx context.Context, transactions []*entity.BankTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, bt := range transactions {
			if err := tx.Create(model.BankTransactionFromEntity(bt)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindPendingByPeriod retrieves pending bank movements whose date falls
// within [from, to], ordered by date ascending.
func (r *bankTransactionRepository) FindPendingByPeriod(ctx context.Context, from, to time.Time) ([]*entity.BankTransaction, error) {
	var btModels []model.BankTransactionModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.BankTransactionStatusPending)).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, created_at ASC").
		Find(&btModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.BankTransaction, len(btModels))
	for i, bm := range btModels {
		transactions[i] = bm.ToEntity()
	}
	return transactions, nil
}

// MarkMatched annotates a bank movement as matched against a system transaction.
func (r *bankTransactionRepository) MarkMatched(ctx context.Context, id, matchedPaymentID uuid.UUID, matchType entity.MatchType) error {
	result := r.db.WithContext(ctx).
		Model(&model.BankTransactionModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":             string(entity.BankTransactionStatusMatched),
			"matched_payment_id": matchedPaymentID,
			"match_type":         string(matchType),
			"updated_at":         time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBankTransactionNotFound
	}
	return nil
}

// ResetMatches clears match annotations for the period, returning every
// matched movement to pending.
func (r *bankTransactionRepository) ResetMatches(ctx context.Context, from, to time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.BankTransactionModel{}).
		Where("status = ?", string(entity.BankTransactionStatusMatched)).
		Where("date >= ? AND date <= ?", from, to).
		Updates(map[string]interface{}{
			"status":             string(entity.BankTransactionStatusPending),
			"matched_payment_id": nil,
			"match_type":         nil,
			"updated_at":         time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CountByStatus returns the number of movements per status for the period.
func (r *bankTransactionRepository) CountByStatus(ctx context.Context, from, to time.Time) (map[entity.BankTransactionStatus]int64, error) {
	var rows []struct {
		Status string `gorm:"column:status"`
		Count  int64  `gorm:"column:count"`
	}
	result := r.db.WithContext(ctx).
		Model(&model.BankTransactionModel{}).
		Select("status, COUNT(*) as count").
		Where("date >= ? AND date <= ?", from, to).
		Group("status").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[entity.BankTransactionStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.BankTransactionStatus(row.Status)] = row.Count
	}
	return counts, nil
}
