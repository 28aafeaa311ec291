package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpecialProjectStatus represents the lifecycle state of a capital project.
type SpecialProjectStatus string

const (
	SpecialProjectStatusActive    SpecialProjectStatus = "active"
	SpecialProjectStatusCompleted SpecialProjectStatus = "completed"
	SpecialProjectStatusCancelled SpecialProjectStatus = "cancelled"
)

// SpecialProject represents a capital project funded by fixed-schedule
// installments. A project scoped to a tower only charges the units of that
// tower; an empty Tower charges every unit.
type SpecialProject struct {
	ID               uuid.UUID
	Name             string
	TotalBudget      decimal.Decimal
	InstallmentCount int
	Tower            string
	Status           SpecialProjectStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewSpecialProject creates a new SpecialProject entity in the active state.
func NewSpecialProject(name string, totalBudget decimal.Decimal, installmentCount int, tower string) *SpecialProject {
	now := time.Now().UTC()

	return &SpecialProject{
		ID:               uuid.New(),
		Name:             name,
		TotalBudget:      totalBudget,
		InstallmentCount: installmentCount,
		Tower:            tower,
		Status:           SpecialProjectStatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// AppliesTo reports whether the project charges the given unit.
func (p *SpecialProject) AppliesTo(unit *Unit) bool {
	return p.Tower == "" || p.Tower == unit.Tower
}
