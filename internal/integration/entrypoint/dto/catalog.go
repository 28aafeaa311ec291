package dto

// CreateUnitRequestDTO represents the request for POST /units.
type CreateUnitRequestDTO struct {
	Number          string `json:"number" binding:"required"`
	Tower           string `json:"tower"`
	OwnerName       string `json:"owner_name" binding:"required"`
	Aliquot         string `json:"aliquot" binding:"required"`
	StartingBalance string `json:"starting_balance"`
}

// CreateUnitResponseDTO represents the response for POST /units.
type CreateUnitResponseDTO struct {
	ID string `json:"id"`
}

// UnitDTO represents one billing unit in a listing.
type UnitDTO struct {
	ID              string `json:"id"`
	Number          string `json:"number"`
	Tower           string `json:"tower,omitempty"`
	OwnerName       string `json:"owner_name"`
	Aliquot         string `json:"aliquot"`
	StartingBalance string `json:"starting_balance"`
}

// ListUnitsResponseDTO represents the response for GET /units.
type ListUnitsResponseDTO struct {
	Units []UnitDTO `json:"units"`
}

// CreateBillingPeriodRequestDTO represents the request for POST /billing-periods.
type CreateBillingPeriodRequestDTO struct {
	Label       string `json:"label" binding:"required"`
	TotalAmount string `json:"total_amount" binding:"required"`
}

// CreateBillingPeriodResponseDTO represents the response for POST /billing-periods.
type CreateBillingPeriodResponseDTO struct {
	ID string `json:"id"`
}

// CreateSpecialProjectRequestDTO represents the request for POST /special-projects.
type CreateSpecialProjectRequestDTO struct {
	Name             string `json:"name" binding:"required"`
	TotalBudget      string `json:"total_budget" binding:"required"`
	InstallmentCount int    `json:"installment_count" binding:"required"`
	Tower            string `json:"tower"`
}

// CreateSpecialProjectResponseDTO represents the response for POST /special-projects.
type CreateSpecialProjectResponseDTO struct {
	ID string `json:"id"`
}
