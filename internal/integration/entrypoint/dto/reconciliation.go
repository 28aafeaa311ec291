package dto

import (
	"github.com/condoledger/backend/internal/application/usecase/reconciliation"
)

// BankMovementDTO represents one row of an imported bank statement.
type BankMovementDTO struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
	Amount      string `json:"amount" binding:"required"`
	Reference   string `json:"reference"`
}

// ImportStatementRequestDTO represents the request for POST /reconciliation/import.
type ImportStatementRequestDTO struct {
	Movements []BankMovementDTO `json:"movements" binding:"required"`
}

// ImportStatementResponseDTO represents the response for POST /reconciliation/import.
type ImportStatementResponseDTO struct {
	ImportedCount int `json:"imported_count"`
}

// MatchDTO represents one pairing produced by a matching run.
type MatchDTO struct {
	BankTransactionID   string `json:"bank_transaction_id"`
	SystemTransactionID string `json:"system_transaction_id"`
	Kind                string `json:"kind"`
	MatchType           string `json:"match_type"`
}

// RunMatchingResponseDTO represents the response for POST /reconciliation/run.
type RunMatchingResponseDTO struct {
	Matches            []MatchDTO `json:"matches"`
	MatchedByReference int        `json:"matched_by_reference"`
	MatchedByAmount    int        `json:"matched_by_amount"`
	UnmatchedBank      int        `json:"unmatched_bank"`
	UnmatchedSystem    int        `json:"unmatched_system"`
}

// ResetMatchesResponseDTO represents the response for POST /reconciliation/reset.
type ResetMatchesResponseDTO struct {
	ResetCount int64 `json:"reset_count"`
}

// PendingMovementDTO represents one pending bank movement.
type PendingMovementDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Reference   string `json:"reference"`
}

// GetPendingResponseDTO represents the response for GET /reconciliation/pending.
type GetPendingResponseDTO struct {
	Movements []PendingMovementDTO `json:"movements"`
}

// GetSummaryResponseDTO represents the response for GET /reconciliation/summary.
type GetSummaryResponseDTO struct {
	Pending int64 `json:"pending"`
	Matched int64 `json:"matched"`
	Ignored int64 `json:"ignored"`
}

// ToRunMatchingResponseDTO converts the matching run output to its response.
func ToRunMatchingResponseDTO(output *reconciliation.RunMatchingOutput) RunMatchingResponseDTO {
	matches := make([]MatchDTO, len(output.Matches))
	for i, m := range output.Matches {
		matches[i] = MatchDTO{
			BankTransactionID:   m.BankTransactionID,
			SystemTransactionID: m.SystemTransactionID,
			Kind:                string(m.Kind),
			MatchType:           string(m.MatchType),
		}
	}

	return RunMatchingResponseDTO{
		Matches:            matches,
		MatchedByReference: output.MatchedByReference,
		MatchedByAmount:    output.MatchedByAmount,
		UnmatchedBank:      output.UnmatchedBank,
		UnmatchedSystem:    output.UnmatchedSystem,
	}
}

// ToGetPendingResponseDTO converts the pending listing output to its response.
func ToGetPendingResponseDTO(output *reconciliation.GetPendingOutput) GetPendingResponseDTO {
	movements := make([]PendingMovementDTO, len(output.Movements))
	for i, m := range output.Movements {
		movements[i] = PendingMovementDTO{
			ID:          m.ID.String(),
			Date:        m.Date.Format("2006-01-02"),
			Description: m.Description,
			Amount:      m.Amount.StringFixed(2),
			Reference:   m.Reference,
		}
	}
	return GetPendingResponseDTO{Movements: movements}
}
