package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/domain/entity"
)

// BillingPeriodModel represents the billing_periods table in the database.
type BillingPeriodModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Label       string          `gorm:"type:varchar(7);not null;uniqueIndex"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BillingPeriodModel.
func (BillingPeriodModel) TableName() string {
	return "billing_periods"
}

// ToEntity converts a BillingPeriodModel to a domain BillingPeriod entity.
func (m *BillingPeriodModel) ToEntity() *entity.BillingPeriod {
	return &entity.BillingPeriod{
		ID:          m.ID,
		Label:       m.Label,
		TotalAmount: m.TotalAmount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// BillingPeriodFromEntity creates a BillingPeriodModel from a domain BillingPeriod entity.
func BillingPeriodFromEntity(period *entity.BillingPeriod) *BillingPeriodModel {
	return &BillingPeriodModel{
		ID:          period.ID,
		Label:       period.Label,
		TotalAmount: period.TotalAmount,
		CreatedAt:   period.CreatedAt,
		UpdatedAt:   period.UpdatedAt,
	}
}
