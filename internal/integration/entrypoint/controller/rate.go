package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/condoledger/backend/internal/application/usecase/rate"
	domainerror "github.com/condoledger/backend/internal/domain/error"
	"github.com/condoledger/backend/internal/integration/entrypoint/dto"
)

// RateController handles currency rate endpoints.
type RateController struct {
	getRateUseCase *rate.GetRateUseCase
}

// NewRateController creates a new rate controller instance.
func NewRateController(getRateUseCase *rate.GetRateUseCase) *RateController {
	return &RateController{
		getRateUseCase: getRateUseCase,
	}
}

// GetRate handles GET /rate requests. When the external provider is down and
// no cached rate exists, 503 tells the client to supply a manual rate.
func (c *RateController) GetRate(ctx *gin.Context) {
	output, err := c.getRateUseCase.Execute(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, domainerror.ErrRateUnavailable) {
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: "Currency rate service unavailable",
				Code:  string(domainerror.ErrCodeRateUnavailable),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.GetRateResponseDTO{
		Rate:      output.Rate.String(),
		FetchedAt: output.FetchedAt.Format(time.RFC3339),
	})
}
