package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/usecase/expense"
	"github.com/condoledger/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles association expense endpoints.
type ExpenseController struct {
	createExpenseUseCase *expense.CreateExpenseUseCase
	listExpensesUseCase  *expense.ListExpensesUseCase
	payExpenseUseCase    *expense.PayExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createExpenseUseCase *expense.CreateExpenseUseCase,
	listExpensesUseCase *expense.ListExpensesUseCase,
	payExpenseUseCase *expense.PayExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createExpenseUseCase: createExpenseUseCase,
		listExpensesUseCase:  listExpensesUseCase,
		payExpenseUseCase:    payExpenseUseCase,
	}
}

// CreateExpense handles POST /expenses requests.
func (c *ExpenseController) CreateExpense(ctx *gin.Context) {
	var req dto.CreateExpenseRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
		})
		return
	}

	output, err := c.createExpenseUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		Date:        date,
		Description: req.Description,
		Amount:      amount,
		Reference:   req.Reference,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateExpenseResponseDTO{ID: output.ExpenseID.String()})
}

// ListExpenses handles GET /expenses requests.
func (c *ExpenseController) ListExpenses(ctx *gin.Context) {
	from, to, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	output, err := c.listExpensesUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		From: from,
		To:   to,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListExpensesResponseDTO(output))
}

// PayExpense handles POST /expenses/:id/pay requests.
func (c *ExpenseController) PayExpense(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	if err := c.payExpenseUseCase.Execute(ctx.Request.Context(), expense.PayExpenseInput{
		ExpenseID: expenseID,
	}); err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
