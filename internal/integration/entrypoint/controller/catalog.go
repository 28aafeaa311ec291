package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/usecase/catalog"
	"github.com/condoledger/backend/internal/integration/entrypoint/dto"
)

// CatalogController handles billing period and special project endpoints.
type CatalogController struct {
	createBillingPeriodUseCase  *catalog.CreateBillingPeriodUseCase
	createSpecialProjectUseCase *catalog.CreateSpecialProjectUseCase
}

// NewCatalogController creates a new catalog controller instance.
func NewCatalogController(
	createBillingPeriodUseCase *catalog.CreateBillingPeriodUseCase,
	createSpecialProjectUseCase *catalog.CreateSpecialProjectUseCase,
) *CatalogController {
	return &CatalogController{
		createBillingPeriodUseCase:  createBillingPeriodUseCase,
		createSpecialProjectUseCase: createSpecialProjectUseCase,
	}
}

// CreateBillingPeriod handles POST /billing-periods requests.
func (c *CatalogController) CreateBillingPeriod(ctx *gin.Context) {
	var req dto.CreateBillingPeriodRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	totalAmount, err := decimal.NewFromString(req.TotalAmount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid total amount format",
		})
		return
	}

	output, err := c.createBillingPeriodUseCase.Execute(ctx.Request.Context(), catalog.CreateBillingPeriodInput{
		Label:       req.Label,
		TotalAmount: totalAmount,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateBillingPeriodResponseDTO{ID: output.PeriodID.String()})
}

// CreateSpecialProject handles POST /special-projects requests.
func (c *CatalogController) CreateSpecialProject(ctx *gin.Context) {
	var req dto.CreateSpecialProjectRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	totalBudget, err := decimal.NewFromString(req.TotalBudget)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid total budget format",
		})
		return
	}

	output, err := c.createSpecialProjectUseCase.Execute(ctx.Request.Context(), catalog.CreateSpecialProjectInput{
		Name:             req.Name,
		TotalBudget:      totalBudget,
		InstallmentCount: req.InstallmentCount,
		Tower:            req.Tower,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateSpecialProjectResponseDTO{ID: output.ProjectID.String()})
}
