package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/domain/entity"
)

// SpecialProjectModel represents the special_projects table in the database.
type SpecialProjectModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name             string          `gorm:"type:varchar(255);not null"`
	TotalBudget      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InstallmentCount int             `gorm:"not null"`
	Tower            string          `gorm:"type:varchar(20)"`
	Status           string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SpecialProjectModel.
func (SpecialProjectModel) TableName() string {
	return "special_projects"
}

// ToEntity converts a SpecialProjectModel to a domain SpecialProject entity.
func (m *SpecialProjectModel) ToEntity() *entity.SpecialProject {
	return &entity.SpecialProject{
		ID:               m.ID,
		Name:             m.Name,
		TotalBudget:      m.TotalBudget,
		InstallmentCount: m.InstallmentCount,
		Tower:            m.Tower,
		Status:           entity.SpecialProjectStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// SpecialProjectFromEntity creates a SpecialProjectModel from a domain SpecialProject entity.
func SpecialProjectFromEntity(project *entity.SpecialProject) *SpecialProjectModel {
	return &SpecialProjectModel{
		ID:               project.ID,
		Name:             project.Name,
		TotalBudget:      project.TotalBudget,
		InstallmentCount: project.InstallmentCount,
		Tower:            project.Tower,
		Status:           string(project.Status),
		CreatedAt:        project.CreatedAt,
		UpdatedAt:        project.UpdatedAt,
	}
}
