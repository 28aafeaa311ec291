package dto

import (
	"github.com/condoledger/backend/internal/application/usecase/ledger"
	"github.com/condoledger/backend/internal/domain/entity"
)

// StatementChargeDTO represents one line of a unit's statement.
type StatementChargeDTO struct {
	ID                string `json:"id"`
	Kind              string `json:"kind"`
	Label             string `json:"label"`
	Amount            string `json:"amount"`
	PaidAmount        string `json:"paid_amount"`
	Outstanding       string `json:"outstanding"`
	Status            string `json:"status"`
	ProjectID         string `json:"project_id,omitempty"`
	InstallmentNumber *int   `json:"installment_number,omitempty"`
}

// LastPaymentDTO represents the most recent payment on a statement.
type LastPaymentDTO struct {
	Amount string `json:"amount"`
	Date   string `json:"date"`
}

// GetStatementResponseDTO represents the response for GET /units/:id/statement.
type GetStatementResponseDTO struct {
	UnitID                 string               `json:"unit_id"`
	UnitNumber             string               `json:"unit_number"`
	Tower                  string               `json:"tower,omitempty"`
	OwnerName              string               `json:"owner_name"`
	Charges                []StatementChargeDTO `json:"charges"`
	TotalOwed              string               `json:"total_owed"`
	SurplusCredit          string               `json:"surplus_credit"`
	CurrentRecurringAmount string               `json:"current_recurring_amount"`
	LastPayment            *LastPaymentDTO      `json:"last_payment,omitempty"`
}

// ToStatementChargeDTO converts a domain charge to its statement line.
func ToStatementChargeDTO(charge *entity.Charge) StatementChargeDTO {
	dto := StatementChargeDTO{
		ID:          charge.ID,
		Kind:        string(charge.Kind),
		Label:       charge.Label,
		Amount:      charge.Amount.StringFixed(2),
		PaidAmount:  charge.PaidAmount.StringFixed(2),
		Outstanding: charge.Outstanding().StringFixed(2),
		Status:      string(charge.Status()),
	}
	if charge.ProjectID != nil {
		dto.ProjectID = charge.ProjectID.String()
	}
	dto.InstallmentNumber = charge.InstallmentNumber
	return dto
}

// ToGetStatementResponseDTO converts the statement builder output to its response.
func ToGetStatementResponseDTO(output *ledger.BuildStatementOutput) GetStatementResponseDTO {
	charges := make([]StatementChargeDTO, len(output.Display))
	for i, c := range output.Display {
		charges[i] = ToStatementChargeDTO(c)
	}

	response := GetStatementResponseDTO{
		UnitID:                 output.Unit.ID.String(),
		UnitNumber:             output.Unit.Number,
		Tower:                  output.Unit.Tower,
		OwnerName:              output.Unit.OwnerName,
		Charges:                charges,
		TotalOwed:              output.TotalOwed.StringFixed(2),
		SurplusCredit:          output.SurplusCredit.StringFixed(2),
		CurrentRecurringAmount: output.CurrentRecurringAmount.StringFixed(2),
	}
	if output.LastPayment != nil {
		response.LastPayment = &LastPaymentDTO{
			Amount: output.LastPayment.Amount.StringFixed(2),
			Date:   output.LastPayment.Date.Format("2006-01-02"),
		}
	}
	return response
}
