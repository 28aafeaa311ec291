// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/domain/entity"
)

// UnitModel represents the units table in the database.
type UnitModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number          string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	Tower           string          `gorm:"type:varchar(20)"`
	OwnerName       string          `gorm:"type:varchar(255);not null"`
	Aliquot         decimal.Decimal `gorm:"type:decimal(10,6);not null"`
	StartingBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the UnitModel.
func (UnitModel) TableName() string {
	return "units"
}

// ToEntity converts a UnitModel to a domain Unit entity.
func (m *UnitModel) ToEntity() *entity.Unit {
	return &entity.Unit{
		ID:              m.ID,
		Number:          m.Number,
		Tower:           m.Tower,
		OwnerName:       m.OwnerName,
		Aliquot:         m.Aliquot,
		StartingBalance: m.StartingBalance,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// UnitFromEntity creates a UnitModel from a domain Unit entity.
func UnitFromEntity(unit *entity.Unit) *UnitModel {
	return &UnitModel{
		ID:              unit.ID,
		Number:          unit.Number,
		Tower:           unit.Tower,
		OwnerName:       unit.OwnerName,
		Aliquot:         unit.Aliquot,
		StartingBalance: unit.StartingBalance,
		CreatedAt:       unit.CreatedAt,
		UpdatedAt:       unit.UpdatedAt,
	}
}
