package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/usecase/payment"
	"github.com/condoledger/backend/internal/domain/entity"
	domainerror "github.com/condoledger/backend/internal/domain/error"
	"github.com/condoledger/backend/internal/integration/entrypoint/dto"
)

// PaymentController handles payment endpoints.
type PaymentController struct {
	registerPaymentUseCase *payment.RegisterPaymentUseCase
	listPaymentsUseCase    *payment.ListPaymentsUseCase
	deletePaymentUseCase   *payment.DeletePaymentUseCase
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	registerPaymentUseCase *payment.RegisterPaymentUseCase,
	listPaymentsUseCase *payment.ListPaymentsUseCase,
	deletePaymentUseCase *payment.DeletePaymentUseCase,
) *PaymentController {
	return &PaymentController{
		registerPaymentUseCase: registerPaymentUseCase,
		listPaymentsUseCase:    listPaymentsUseCase,
		deletePaymentUseCase:   deletePaymentUseCase,
	}
}

// RegisterPayment handles POST /units/:id/payments requests.
func (c *PaymentController) RegisterPayment(ctx *gin.Context) {
	unitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid unit ID format",
		})
		return
	}

	var req dto.RegisterPaymentRequestDTO
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

	input := payment.RegisterPaymentInput{
		UnitID:            unitID,
		Date:              date,
		Reference:         req.Reference,
		Method:            entity.PaymentMethod(req.Method),
		SelectedChargeIDs: req.SelectedChargeIDs,
	}

	if req.Amount != "" {
		amount, err := decimal.NewFromString(req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount format",
			})
			return
		}
		input.Amount = amount
	}
	if req.SecondaryAmount != "" {
		secondary, err := decimal.NewFromString(req.SecondaryAmount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid secondary amount format",
			})
			return
		}
		input.SecondaryAmount = &secondary
	}
	if req.Rate != "" {
		rate, err := decimal.NewFromString(req.Rate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid rate format",
			})
			return
		}
		input.Rate = &rate
	}

	output, err := c.registerPaymentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRegisterPaymentResponseDTO(output))
}

// ListPayments handles GET /units/:id/payments requests.
func (c *PaymentController) ListPayments(ctx *gin.Context) {
	unitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid unit ID format",
		})
		return
	}

	output, err := c.listPaymentsUseCase.Execute(ctx.Request.Context(), payment.ListPaymentsInput{
		UnitID: unitID,
	})
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListPaymentsResponseDTO(output))
}

// DeletePayment handles DELETE /payments/:id requests.
func (c *PaymentController) DeletePayment(ctx *gin.Context) {
	paymentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment ID format",
		})
		return
	}

	if err := c.deletePaymentUseCase.Execute(ctx.Request.Context(), payment.DeletePaymentInput{
		PaymentID: paymentID,
	}); err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handlePaymentError maps payment errors to HTTP responses.
func (c *PaymentController) handlePaymentError(ctx *gin.Context, err error) {
	var paymentErr *domainerror.PaymentError
	if errors.As(err, &paymentErr) {
		ctx.JSON(c.statusCodeForPaymentError(paymentErr.Code), dto.ErrorResponse{
			Error: paymentErr.Message,
			Code:  string(paymentErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrUnitNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Unit not found",
			Code:  string(domainerror.ErrCodeUnitNotFound),
		})
	case errors.Is(err, domainerror.ErrPaymentNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Payment not found",
			Code:  string(domainerror.ErrCodePaymentNotFound),
		})
	case errors.Is(err, domainerror.ErrDuplicatePaymentReference):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "A payment with this reference already exists",
			Code:  string(domainerror.ErrCodeDuplicatePaymentReference),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// statusCodeForPaymentError maps payment error codes to HTTP status codes.
func (c *PaymentController) statusCodeForPaymentError(code domainerror.PaymentErrorCode) int {
	switch code {
	case domainerror.ErrCodeChargeNotFound, domainerror.ErrCodePaymentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicatePaymentReference:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
