package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/domain/entity"
)

// PaymentModel represents the payments table in the database.
type PaymentModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UnitID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	Date            time.Time        `gorm:"type:date;not null;index"`
	Amount          decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	SecondaryAmount *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Rate            *decimal.Decimal `gorm:"type:decimal(15,6)"`
	Reference       string           `gorm:"type:varchar(100);not null;uniqueIndex"`
	Method          string           `gorm:"type:varchar(15);not null"`
	Status          string           `gorm:"type:varchar(10);not null;index"`
	CreatedAt       time.Time        `gorm:"not null"`
	UpdatedAt       time.Time        `gorm:"not null"`

	Unit *UnitModel `gorm:"foreignKey:UnitID;references:ID"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:              m.ID,
		UnitID:          m.UnitID,
		Date:            m.Date,
		Amount:          m.Amount,
		SecondaryAmount: m.SecondaryAmount,
		Rate:            m.Rate,
		Reference:       m.Reference,
		Method:          entity.PaymentMethod(m.Method),
		Status:          entity.PaymentStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// PaymentFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentFromEntity(payment *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:              payment.ID,
		UnitID:          payment.UnitID,
		Date:            payment.Date,
		Amount:          payment.Amount,
		SecondaryAmount: payment.SecondaryAmount,
		Rate:            payment.Rate,
		Reference:       payment.Reference,
		Method:          string(payment.Method),
		Status:          string(payment.Status),
		CreatedAt:       payment.CreatedAt,
		UpdatedAt:       payment.UpdatedAt,
	}
}
