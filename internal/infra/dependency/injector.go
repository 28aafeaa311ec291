// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/condoledger/backend/config"
	"github.com/condoledger/backend/internal/application/usecase/catalog"
	"github.com/condoledger/backend/internal/application/usecase/expense"
	"github.com/condoledger/backend/internal/application/usecase/ledger"
	"github.com/condoledger/backend/internal/application/usecase/payment"
	"github.com/condoledger/backend/internal/application/usecase/rate"
	"github.com/condoledger/backend/internal/application/usecase/reconciliation"
	"github.com/condoledger/backend/internal/infra/server/router"
	"github.com/condoledger/backend/internal/integration/adapters"
	"github.com/condoledger/backend/internal/integration/entrypoint/controller"
	"github.com/condoledger/backend/internal/integration/entrypoint/middleware"
	"github.com/condoledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, cache *redis.Client) *Injector {
	// Create repositories
	chargeCatalog := persistence.NewChargeCatalog(db)
	paymentRepo := persistence.NewPaymentRepository(db)
	bankRepo := persistence.NewBankTransactionRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	rateService := adapters.NewRateClient(cfg.Rate.ProviderURL, cache)

	// Create ledger use cases
	buildStatementUseCase := ledger.NewBuildStatementUseCase(chargeCatalog, paymentRepo)

	// Create catalog use cases
	createUnitUseCase := catalog.NewCreateUnitUseCase(chargeCatalog)
	listUnitsUseCase := catalog.NewListUnitsUseCase(chargeCatalog)
	createBillingPeriodUseCase := catalog.NewCreateBillingPeriodUseCase(chargeCatalog)
	createSpecialProjectUseCase := catalog.NewCreateSpecialProjectUseCase(chargeCatalog)

	// Create payment use cases
	registerPaymentUseCase := payment.NewRegisterPaymentUseCase(buildStatementUseCase, paymentRepo)
	listPaymentsUseCase := payment.NewListPaymentsUseCase(chargeCatalog, paymentRepo)
	deletePaymentUseCase := payment.NewDeletePaymentUseCase(paymentRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	payExpenseUseCase := expense.NewPayExpenseUseCase(expenseRepo)

	// Create reconciliation use cases
	importStatementUseCase := reconciliation.NewImportStatementUseCase(bankRepo)
	runMatchingUseCase := reconciliation.NewRunMatchingUseCase(bankRepo, paymentRepo, expenseRepo)
	resetMatchesUseCase := reconciliation.NewResetMatchesUseCase(bankRepo)
	getPendingUseCase := reconciliation.NewGetPendingUseCase(bankRepo)
	getSummaryUseCase := reconciliation.NewGetSummaryUseCase(bankRepo)

	// Create rate use case
	getRateUseCase := rate.NewGetRateUseCase(rateService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})
	statementController := controller.NewStatementController(
		buildStatementUseCase,
		createUnitUseCase,
		listUnitsUseCase,
	)
	catalogController := controller.NewCatalogController(
		createBillingPeriodUseCase,
		createSpecialProjectUseCase,
	)
	paymentController := controller.NewPaymentController(
		registerPaymentUseCase,
		listPaymentsUseCase,
		deletePaymentUseCase,
	)
	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		payExpenseUseCase,
	)
	reconciliationController := controller.NewReconciliationController(
		importStatementUseCase,
		runMatchingUseCase,
		resetMatchesUseCase,
		getPendingUseCase,
		getSummaryUseCase,
	)
	rateController := controller.NewRateController(getRateUseCase)

	// Create middleware
	importRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		statementController,
		catalogController,
		paymentController,
		expenseController,
		reconciliationController,
		rateController,
		importRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
