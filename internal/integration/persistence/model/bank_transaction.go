package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/domain/entity"
)

// BankTransactionModel represents the bank_transactions table in the database.
type BankTransactionModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date             time.Time       `gorm:"type:date;not null;index"`
	Description      string          `gorm:"type:varchar(255)"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Reference        string          `gorm:"type:varchar(100)"`
	Status           string          `gorm:"type:varchar(10);not null;index"`
	MatchedPaymentID *uuid.UUID      `gorm:"type:uuid;index"`
	MatchType        *string         `gorm:"type:varchar(10)"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BankTransactionModel.
func (BankTransactionModel) TableName() string {
	return "bank_transactions"
}

// ToEntity converts a BankTransactionModel to a domain BankTransaction entity.
func (m *BankTransactionModel) ToEntity() *entity.BankTransaction {
	var matchType *entity.MatchType
	if m.MatchType != nil {
		mt := entity.MatchType(*m.MatchType)
		matchType = &mt
	}

	return &entity.BankTransaction{
		ID:               m.ID,
		Date:             m.Date,
		Description:      m.Description,
		Amount:           m.Amount,
		Reference:        m.Reference,
		Status:           entity.BankTransactionStatus(m.Status),
		MatchedPaymentID: m.MatchedPaymentID,
		MatchType:        matchType,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// BankTransactionFromEntity creates a BankTransactionModel from a domain entity.
func BankTransactionFromEntity(bt *entity.BankTransaction) *BankTransactionModel {
	var matchType *string
	if bt.MatchType != nil {
		mt := string(*bt.MatchType)
		matchType = &mt
	}

	return &BankTransactionModel{
		ID:               bt.ID,
		Date:             bt.Date,
		Description:      bt.Description,
		Amount:           bt.Amount,
		Reference:        bt.Reference,
		Status:           string(bt.Status),
		MatchedPaymentID: bt.MatchedPaymentID,
		MatchType:        matchType,
		CreatedAt:        bt.CreatedAt,
		UpdatedAt:        bt.UpdatedAt,
	}
}
