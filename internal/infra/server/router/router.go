// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/condoledger/backend/internal/integration/entrypoint/controller"
	"github.com/condoledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	statementController      *controller.StatementController
	catalogController        *controller.CatalogController
	paymentController        *controller.PaymentController
	expenseController        *controller.ExpenseController
	reconciliationController *controller.ReconciliationController
	rateController           *controller.RateController
	importRateLimiter        *middleware.RateLimiter
	authMiddleware           *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	statementController *controller.StatementController,
	catalogController *controller.CatalogController,
	paymentController *controller.PaymentController,
	expenseController *controller.ExpenseController,
	reconciliationController *controller.ReconciliationController,
	rateController *controller.RateController,
	importRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:         healthController,
		statementController:      statementController,
		catalogController:        catalogController,
		paymentController:        paymentController,
		expenseController:        expenseController,
		reconciliationController: reconciliationController,
		rateController:           rateController,
		importRateLimiter:        importRateLimiter,
		authMiddleware:           authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Unit and statement routes (require authentication)
		if r.statementController != nil && r.authMiddleware != nil {
			units := v1.Group("/units")
			units.Use(r.authMiddleware.Authenticate())
			{
				units.POST("", r.statementController.CreateUnit)
				units.GET("", r.statementController.ListUnits)
				units.GET("/:id/statement", r.statementController.GetStatement)

				if r.paymentController != nil {
					units.POST("/:id/payments", r.paymentController.RegisterPayment)
					units.GET("/:id/payments", r.paymentController.ListPayments)
				}
			}
		}

		// Payment routes addressed by payment ID (require authentication)
		if r.paymentController != nil && r.authMiddleware != nil {
			payments := v1.Group("/payments")
			payments.Use(r.authMiddleware.Authenticate())
			{
				payments.DELETE("/:id", r.paymentController.DeletePayment)
			}
		}

		// Charge catalog routes (require authentication)
		if r.catalogController != nil && r.authMiddleware != nil {
			periods := v1.Group("/billing-periods")
			periods.Use(r.authMiddleware.Authenticate())
			{
				periods.POST("", r.catalogController.CreateBillingPeriod)
			}

			projects := v1.Group("/special-projects")
			projects.Use(r.authMiddleware.Authenticate())
			{
				projects.POST("", r.catalogController.CreateSpecialProject)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.POST("", r.expenseController.CreateExpense)
				expenses.GET("", r.expenseController.ListExpenses)
				expenses.POST("/:id/pay", r.expenseController.PayExpense)
			}
		}

		// Reconciliation routes (require authentication)
		if r.reconciliationController != nil && r.authMiddleware != nil {
			reconciliation := v1.Group("/reconciliation")
			reconciliation.Use(r.authMiddleware.Authenticate())
			{
				if r.importRateLimiter != nil {
					reconciliation.POST("/import", r.importRateLimiter.Middleware(), r.reconciliationController.ImportStatement)
				} else {
					reconciliation.POST("/import", r.reconciliationController.ImportStatement)
				}
				reconciliation.POST("/run", r.reconciliationController.RunMatching)
				reconciliation.POST("/reset", r.reconciliationController.ResetMatches)
				reconciliation.GET("/pending", r.reconciliationController.GetPending)
				reconciliation.GET("/summary", r.reconciliationController.GetSummary)
			}
		}

		// Currency rate routes (require authentication)
		if r.rateController != nil && r.authMiddleware != nil {
			rate := v1.Group("/rate")
			rate.Use(r.authMiddleware.Authenticate())
			{
				rate.GET("", r.rateController.GetRate)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
