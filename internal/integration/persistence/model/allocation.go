package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/domain/entity"
)

// AllocationModel represents the allocations table in the database.
type AllocationModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PaymentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ChargeID  string          `gorm:"type:varchar(50);not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`

	Payment *PaymentModel `gorm:"foreignKey:PaymentID;references:ID"`
}

// TableName returns the table name for the AllocationModel.
func (AllocationModel) TableName() string {
	return "allocations"
}

// ToEntity converts an AllocationModel to a domain Allocation entity.
func (m *AllocationModel) ToEntity() *entity.Allocation {
	return &entity.Allocation{
		ID:        m.ID,
		PaymentID: m.PaymentID,
		ChargeID:  m.ChargeID,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

// AllocationFromEntity creates an AllocationModel from a domain Allocation entity.
func AllocationFromEntity(allocation *entity.Allocation) *AllocationModel {
	return &AllocationModel{
		ID:        allocation.ID,
		PaymentID: allocation.PaymentID,
		ChargeID:  allocation.ChargeID,
		Amount:    allocation.Amount,
		CreatedAt: allocation.CreatedAt,
	}
}

// SpecialInstallmentPaymentModel represents the special_installment_payments
// table in the database.
type SpecialInstallmentPaymentModel struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ProjectID         uuid.UUID        `gorm:"type:uuid;not null;index:idx_sip_project_unit"`
	UnitID            uuid.UUID        `gorm:"type:uuid;not null;index:idx_sip_project_unit"`
	PaymentID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	InstallmentNumber int              `gorm:"not null"`
	Amount            decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	SecondaryAmount   *decimal.Decimal `gorm:"type:decimal(15,2)"`
	CreatedAt         time.Time        `gorm:"not null"`

	Project *SpecialProjectModel `gorm:"foreignKey:ProjectID;references:ID"`
	Payment *PaymentModel        `gorm:"foreignKey:PaymentID;references:ID"`
}

// TableName returns the table name for the SpecialInstallmentPaymentModel.
func (SpecialInstallmentPaymentModel) TableName() string {
	return "special_installment_payments"
}

// ToEntity converts a SpecialInstallmentPaymentModel to a domain entity.
func (m *SpecialInstallmentPaymentModel) ToEntity() *entity.SpecialInstallmentPayment {
	return &entity.SpecialInstallmentPayment{
		ID:                m.ID,
		ProjectID:         m.ProjectID,
		UnitID:            m.UnitID,
		PaymentID:         m.PaymentID,
		InstallmentNumber: m.InstallmentNumber,
		Amount:            m.Amount,
		SecondaryAmount:   m.SecondaryAmount,
		CreatedAt:         m.CreatedAt,
	}
}

// SpecialInstallmentPaymentFromEntity creates a SpecialInstallmentPaymentModel
// from a domain entity.
func SpecialInstallmentPaymentFromEntity(sip *entity.SpecialInstallmentPayment) *SpecialInstallmentPaymentModel {
	return &SpecialInstallmentPaymentModel{
		ID:                sip.ID,
		ProjectID:         sip.ProjectID,
		UnitID:            sip.UnitID,
		PaymentID:         sip.PaymentID,
		InstallmentNumber: sip.InstallmentNumber,
		Amount:            sip.Amount,
		SecondaryAmount:   sip.SecondaryAmount,
		CreatedAt:         sip.CreatedAt,
	}
}
