package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/usecase/reconciliation"
	domainerror "github.com/condoledger/backend/internal/domain/error"
	"github.com/condoledger/backend/internal/integration/entrypoint/dto"
)

// ReconciliationController handles bank reconciliation endpoints.
type ReconciliationController struct {
	importStatementUseCase *reconciliation.ImportStatementUseCase
	runMatchingUseCase     *reconciliation.RunMatchingUseCase
	resetMatchesUseCase    *reconciliation.ResetMatchesUseCase
	getPendingUseCase      *reconciliation.GetPendingUseCase
	getSummaryUseCase      *reconciliation.GetSummaryUseCase
}

// NewReconciliationController creates a new reconciliation controller instance.
func NewReconciliationController(
	importStatementUseCase *reconciliation.ImportStatementUseCase,
	runMatchingUseCase *reconciliation.RunMatchingUseCase,
	resetMatchesUseCase *reconciliation.ResetMatchesUseCase,
	getPendingUseCase *reconciliation.GetPendingUseCase,
	getSummaryUseCase *reconciliation.GetSummaryUseCase,
) *ReconciliationController {
	return &ReconciliationController{
		importStatementUseCase: importStatementUseCase,
		runMatchingUseCase:     runMatchingUseCase,
		resetMatchesUseCase:    resetMatchesUseCase,
		getPendingUseCase:      getPendingUseCase,
		getSummaryUseCase:      getSummaryUseCase,
	}
}

// ImportStatement handles POST /reconciliation/import requests.
func (c *ReconciliationController) ImportStatement(ctx *gin.Context) {
	var req dto.ImportStatementRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	movements := make([]reconciliation.BankMovementInput, 0, len(req.Movements))
	for _, m := range req.Movements {
		date, err := time.Parse("2006-01-02", m.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid movement date, expected YYYY-MM-DD",
			})
			return
		}
		amount, err := decimal.NewFromString(m.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid movement amount format",
			})
			return
		}
		movements = append(movements, reconciliation.BankMovementInput{
			Date:        date,
			Description: m.Description,
			Amount:      amount,
			Reference:   m.Reference,
		})
	}

	output, err := c.importStatementUseCase.Execute(ctx.Request.Context(), reconciliation.ImportStatementInput{
		Movements: movements,
	})
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ImportStatementResponseDTO{ImportedCount: output.ImportedCount})
}

// RunMatching handles POST /reconciliation/run requests.
func (c *ReconciliationController) RunMatching(ctx *gin.Context) {
	from, to, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	output, err := c.runMatchingUseCase.Execute(ctx.Request.Context(), reconciliation.RunMatchingInput{
		From: from,
		To:   to,
	})
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRunMatchingResponseDTO(output))
}

// ResetMatches handles POST /reconciliation/reset requests.
func (c *ReconciliationController) ResetMatches(ctx *gin.Context) {
	from, to, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	output, err := c.resetMatchesUseCase.Execute(ctx.Request.Context(), reconciliation.ResetMatchesInput{
		From: from,
		To:   to,
	})
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ResetMatchesResponseDTO{ResetCount: output.ResetCount})
}

// GetPending handles GET /reconciliation/pending requests.
func (c *ReconciliationController) GetPending(ctx *gin.Context) {
	from, to, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	output, err := c.getPendingUseCase.Execute(ctx.Request.Context(), reconciliation.GetPendingInput{
		From: from,
		To:   to,
	})
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGetPendingResponseDTO(output))
}

// GetSummary handles GET /reconciliation/summary requests.
func (c *ReconciliationController) GetSummary(ctx *gin.Context) {
	from, to, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), reconciliation.GetSummaryInput{
		From: from,
		To:   to,
	})
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GetSummaryResponseDTO{
		Pending: output.Pending,
		Matched: output.Matched,
		Ignored: output.Ignored,
	})
}

// parsePeriod reads the from/to query parameters. On failure it writes the
// error response and returns ok=false.
func parsePeriod(ctx *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.Parse("2006-01-02", ctx.Query("from"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid or missing 'from' parameter, expected YYYY-MM-DD",
		})
		return time.Time{}, time.Time{}, false
	}

	to, err := time.Parse("2006-01-02", ctx.Query("to"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid or missing 'to' parameter, expected YYYY-MM-DD",
		})
		return time.Time{}, time.Time{}, false
	}

	return from, to, true
}

// handleReconciliationError maps reconciliation errors to HTTP responses.
func (c *ReconciliationController) handleReconciliationError(ctx *gin.Context, err error) {
	var recErr *domainerror.ReconciliationError
	if errors.As(err, &recErr) {
		statusCode := http.StatusBadRequest
		if recErr.Code == domainerror.ErrCodeBankTransactionNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
