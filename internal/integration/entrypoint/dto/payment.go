package dto

import (
	"github.com/condoledger/backend/internal/application/usecase/payment"
)

// RegisterPaymentRequestDTO represents the request for POST /units/:id/payments.
// Amount may be omitted when secondary_amount and rate are supplied.
type RegisterPaymentRequestDTO struct {
	Date              string   `json:"date" binding:"required"`
	Amount            string   `json:"amount"`
	SecondaryAmount   string   `json:"secondary_amount"`
	Rate              string   `json:"rate"`
	Reference         string   `json:"reference" binding:"required"`
	Method            string   `json:"method" binding:"required"`
	SelectedChargeIDs []string `json:"selected_charge_ids" binding:"required"`
}

// PaymentAllocationDTO represents one split of a registered payment.
type PaymentAllocationDTO struct {
	ChargeID string `json:"charge_id"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Amount   string `json:"amount"`
}

// RegisterPaymentResponseDTO represents the response for POST /units/:id/payments.
type RegisterPaymentResponseDTO struct {
	PaymentID         string                 `json:"payment_id"`
	Amount            string                 `json:"amount"`
	Allocations       []PaymentAllocationDTO `json:"allocations"`
	HistoricalApplied string                 `json:"historical_applied"`
	Leftover          string                 `json:"leftover"`
}

// PaymentDTO represents one payment in a listing.
type PaymentDTO struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Amount          string `json:"amount"`
	SecondaryAmount string `json:"secondary_amount,omitempty"`
	Rate            string `json:"rate,omitempty"`
	Reference       string `json:"reference"`
	Method          string `json:"method"`
	Status          string `json:"status"`
}

// ListPaymentsResponseDTO represents the response for GET /units/:id/payments.
type ListPaymentsResponseDTO struct {
	Payments []PaymentDTO `json:"payments"`
	Total    string       `json:"total"`
}

// ToRegisterPaymentResponseDTO converts the register payment output to its response.
func ToRegisterPaymentResponseDTO(output *payment.RegisterPaymentOutput) RegisterPaymentResponseDTO {
	allocations := make([]PaymentAllocationDTO, len(output.Allocations))
	for i, a := range output.Allocations {
		allocations[i] = PaymentAllocationDTO{
			ChargeID: a.ChargeID,
			Label:    a.Label,
			Kind:     string(a.Kind),
			Amount:   a.Amount.StringFixed(2),
		}
	}

	return RegisterPaymentResponseDTO{
		PaymentID:         output.PaymentID.String(),
		Amount:            output.Amount.StringFixed(2),
		Allocations:       allocations,
		HistoricalApplied: output.HistoricalApplied.StringFixed(2),
		Leftover:          output.Leftover.StringFixed(2),
	}
}

// ToListPaymentsResponseDTO converts the list payments output to its response.
func ToListPaymentsResponseDTO(output *payment.ListPaymentsOutput) ListPaymentsResponseDTO {
	payments := make([]PaymentDTO, len(output.Payments))
	for i, p := range output.Payments {
		dto := PaymentDTO{
			ID:        p.ID.String(),
			Date:      p.Date.Format("2006-01-02"),
			Amount:    p.Amount.StringFixed(2),
			Reference: p.Reference,
			Method:    string(p.Method),
			Status:    string(p.Status),
		}
		if p.SecondaryAmount != nil {
			dto.SecondaryAmount = p.SecondaryAmount.StringFixed(2)
		}
		if p.Rate != nil {
			dto.Rate = p.Rate.String()
		}
		payments[i] = dto
	}

	return ListPaymentsResponseDTO{
		Payments: payments,
		Total:    output.Total.StringFixed(2),
	}
}
