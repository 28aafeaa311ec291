// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/usecase/catalog"
	"github.com/condoledger/backend/internal/application/usecase/ledger"
	domainerror "github.com/condoledger/backend/internal/domain/error"
	"github.com/condoledger/backend/internal/integration/entrypoint/dto"
)

// StatementController handles unit and statement endpoints.
type StatementController struct {
	buildStatementUseCase *ledger.BuildStatementUseCase
	createUnitUseCase     *catalog.CreateUnitUseCase
	listUnitsUseCase      *catalog.ListUnitsUseCase
}

// NewStatementController creates a new statement controller instance.
func NewStatementController(
	buildStatementUseCase *ledger.BuildStatementUseCase,
	createUnitUseCase *catalog.CreateUnitUseCase,
	listUnitsUseCase *catalog.ListUnitsUseCase,
) *StatementController {
	return &StatementController{
		buildStatementUseCase: buildStatementUseCase,
		createUnitUseCase:     createUnitUseCase,
		listUnitsUseCase:      listUnitsUseCase,
	}
}

// GetStatement handles GET /units/:id/statement requests.
func (c *StatementController) GetStatement(ctx *gin.Context) {
	unitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid unit ID format",
		})
		return
	}

	output, err := c.buildStatementUseCase.Execute(ctx.Request.Context(), ledger.BuildStatementInput{
		UnitID: unitID,
	})
	if err != nil {
		c.handleStatementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGetStatementResponseDTO(output))
}

// CreateUnit handles POST /units requests.
func (c *StatementController) CreateUnit(ctx *gin.Context) {
	var req dto.CreateUnitRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	aliquot, err := decimal.NewFromString(req.Aliquot)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid aliquot format",
		})
		return
	}

	startingBalance := decimal.Zero
	if req.StartingBalance != "" {
		startingBalance, err = decimal.NewFromString(req.StartingBalance)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid starting balance format",
			})
			return
		}
	}

	output, err := c.createUnitUseCase.Execute(ctx.Request.Context(), catalog.CreateUnitInput{
		Number:          req.Number,
		Tower:           req.Tower,
		OwnerName:       req.OwnerName,
		Aliquot:         aliquot,
		StartingBalance: startingBalance,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateUnitResponseDTO{ID: output.UnitID.String()})
}

// ListUnits handles GET /units requests.
func (c *StatementController) ListUnits(ctx *gin.Context) {
	output, err := c.listUnitsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	units := make([]dto.UnitDTO, len(output.Units))
	for i, u := range output.Units {
		units[i] = dto.UnitDTO{
			ID:              u.ID.String(),
			Number:          u.Number,
			Tower:           u.Tower,
			OwnerName:       u.OwnerName,
			Aliquot:         u.Aliquot.String(),
			StartingBalance: u.StartingBalance.StringFixed(2),
		}
	}

	ctx.JSON(http.StatusOK, dto.ListUnitsResponseDTO{Units: units})
}

// handleStatementError maps statement errors to HTTP responses.
func (c *StatementController) handleStatementError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		statusCode := http.StatusInternalServerError
		if ledgerErr.Code == domainerror.ErrCodeUnitNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrUnitNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Unit not found",
			Code:  string(domainerror.ErrCodeUnitNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// handleCatalogError maps catalog errors to HTTP responses.
func handleCatalogError(ctx *gin.Context, err error) {
	var catalogErr *domainerror.CatalogError
	if errors.As(err, &catalogErr) {
		statusCode := http.StatusBadRequest
		switch catalogErr.Code {
		case domainerror.ErrCodeDuplicateUnitNumber, domainerror.ErrCodeDuplicatePeriodLabel:
			statusCode = http.StatusConflict
		case domainerror.ErrCodeProjectNotFound, domainerror.ErrCodeExpenseNotFound:
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catalogErr.Message,
			Code:  string(catalogErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrDuplicateUnitNumber):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "A unit with this number already exists",
			Code:  string(domainerror.ErrCodeDuplicateUnitNumber),
		})
	case errors.Is(err, domainerror.ErrDuplicatePeriodLabel):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "A billing period with this label already exists",
			Code:  string(domainerror.ErrCodeDuplicatePeriodLabel),
		})
	case errors.Is(err, domainerror.ErrExpenseNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Expense not found",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
