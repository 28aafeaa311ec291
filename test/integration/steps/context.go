// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/config"
	"github.com/condoledger/backend/internal/infra/dependency"
	"github.com/condoledger/backend/internal/integration/persistence/model"
	"github.com/condoledger/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var (
	serverOnce     sync.Once
	sharedDB       *mock.Db
	sharedRedis    *redis.Client
	sharedProvider *mock.RateProvider
	sharedServer   *httptest.Server
)

// startServer builds the full application against the in-memory database and
// miniredis, once for the whole suite. Scenarios share the server and reset
// state in Before hooks.
func startServer() {
	serverOnce.Do(func() {
		sharedDB = mock.NewDb(map[string]any{
			"units":                        &model.UnitModel{},
			"billing_periods":              &model.BillingPeriodModel{},
			"special_projects":             &model.SpecialProjectModel{},
			"payments":                     &model.PaymentModel{},
			"allocations":                  &model.AllocationModel{},
			"special_installment_payments": &model.SpecialInstallmentPaymentModel{},
			"bank_transactions":            &model.BankTransactionModel{},
			"expenses":                     &model.ExpenseModel{},
		})
		sharedRedis = mock.NewRedis()
		sharedProvider = mock.NewRateProvider()

		cfg := config.Load()
		cfg.JWT.Secret = testJWTSecret
		cfg.Rate.ProviderURL = sharedProvider.URL()

		injector := dependency.NewInjector(cfg, sharedDB.DbConn, sharedRedis)
		engine := injector.Router.Setup("test")
		sharedServer = httptest.NewServer(engine)
	})
}

// testContext holds per-scenario state.
type testContext struct {
	response     *http.Response
	responseBody []byte
	accessToken  string
	placeholders map[string]string
}

type contextKey struct{}

func getTestContext(ctx context.Context) *testContext {
	if tc, ok := ctx.Value(contextKey{}).(*testContext); ok {
		return tc
	}
	return nil
}

func setTestContext(ctx context.Context, tc *testContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		startServer()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		startServer()
		if err := sharedDB.ClearDB(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(sharedRedis); err != nil {
			return ctx, err
		}
		sharedProvider.SetRate("36.50")

		// Date placeholders let features exercise date-window behavior
		// without hardcoding today's date.
		now := time.Now().UTC()
		tc := &testContext{
			placeholders: map[string]string{
				"today":        now.Format("2006-01-02"),
				"window_start": now.AddDate(0, 0, -7).Format("2006-01-02"),
				"window_end":   now.AddDate(0, 0, 7).Format("2006-01-02"),
			},
		}
		return setTestContext(ctx, tc), nil
	})

	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^a unit exists with number "([^"]*)" and aliquot "([^"]*)"$`, aUnitExists)
	ctx.Step(`^a unit exists with number "([^"]*)", aliquot "([^"]*)" and starting balance "([^"]*)"$`, aUnitExistsWithStartingBalance)
	ctx.Step(`^a billing period "([^"]*)" exists with total "([^"]*)"$`, aBillingPeriodExists)
	ctx.Step(`^a paid expense of "([^"]*)" with description "([^"]*)" exists$`, aPaidExpenseExists)
	ctx.Step(`^the rate provider is unavailable$`, theRateProviderIsUnavailable)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, iStoreTheResponseFieldAs)
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
}

// signAccessToken issues a token the way the external identity provider does.
func signAccessToken() (string, error) {
	claims := jwt.MapClaims{
		"user_id":    uuid.New().String(),
		"email":      "admin@condoledger.test",
		"token_type": "access",
		"exp":        time.Now().Add(15 * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

// replacePlaceholders substitutes {name} markers with stored values.
func (tc *testContext) replacePlaceholders(content string) string {
	for name, value := range tc.placeholders {
		content = strings.ReplaceAll(content, "{"+name+"}", value)
	}
	return content
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	if sharedServer == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iAmAuthenticated(ctx context.Context) (context.Context, error) {
	tc := getTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	token, err := signAccessToken()
	if err != nil {
		return ctx, fmt.Errorf("failed to sign access token: %w", err)
	}
	tc.accessToken = token
	return setTestContext(ctx, tc), nil
}

func aUnitExists(ctx context.Context, number, aliquot string) (context.Context, error) {
	return aUnitExistsWithStartingBalance(ctx, number, aliquot, "0")
}

func aUnitExistsWithStartingBalance(ctx context.Context, number, aliquot, startingBalance string) (context.Context, error) {
	tc := getTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	aliquotDec, err := decimal.NewFromString(aliquot)
	if err != nil {
		return ctx, fmt.Errorf("invalid aliquot %q: %w", aliquot, err)
	}
	balanceDec, err := decimal.NewFromString(startingBalance)
	if err != nil {
		return ctx, fmt.Errorf("invalid starting balance %q: %w", startingBalance, err)
	}

	unit := &model.UnitModel{
		ID:              uuid.New(),
		Number:          number,
		OwnerName:       "Test Owner",
		Aliquot:         aliquotDec,
		StartingBalance: balanceDec,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	if err := sharedDB.DbConn.Create(unit).Error; err != nil {
		return ctx, fmt.Errorf("failed to seed unit: %w", err)
	}

	tc.placeholders["unit_id"] = unit.ID.String()
	return setTestContext(ctx, tc), nil
}

func aBillingPeriodExists(ctx context.Context, label, total string) (context.Context, error) {
	tc := getTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	totalDec, err := decimal.NewFromString(total)
	if err != nil {
		return ctx, fmt.Errorf("invalid total %q: %w", total, err)
	}

	period := &model.BillingPeriodModel{
		ID:          uuid.New(),
		Label:       label,
		TotalAmount: totalDec,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := sharedDB.DbConn.Create(period).Error; err != nil {
		return ctx, fmt.Errorf("failed to seed billing period: %w", err)
	}

	tc.placeholders["period_id"] = period.ID.String()
	return setTestContext(ctx, tc), nil
}

func aPaidExpenseExists(ctx context.Context, amount, description string) (context.Context, error) {
	tc := getTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	amountDec, err := decimal.NewFromString(amount)
	if err != nil {
		return ctx, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	expense := &model.ExpenseModel{
		ID:          uuid.New(),
		Date:        time.Now().UTC().Truncate(24 * time.Hour),
		Description: description,
		Amount:      amountDec,
		Status:      "paid",
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := sharedDB.DbConn.Create(expense).Error; err != nil {
		return ctx, fmt.Errorf("failed to seed expense: %w", err)
	}

	tc.placeholders["expense_id"] = expense.ID.String()
	return setTestContext(ctx, tc), nil
}

func theRateProviderIsUnavailable(ctx context.Context) error {
	sharedProvider.SetUnavailable()
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return executeRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return executeRequest(ctx, method, endpoint, []byte(body.Content))
}

func executeRequest(ctx context.Context, method, endpoint string, payload []byte) (context.Context, error) {
	tc := getTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	endpoint = tc.replacePlaceholders(endpoint)

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewBufferString(tc.replacePlaceholders(string(payload)))
	}

	req, err := http.NewRequest(method, sharedServer.URL+endpoint, reqBody)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return setTestContext(ctx, tc), nil
}

func iStoreTheResponseFieldAs(ctx context.Context, field, name string) (context.Context, error) {
	tc := getTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return ctx, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return ctx, fmt.Errorf("field %q not found in response", field)
	}

	tc.placeholders[name] = fmt.Sprintf("%v", value)
	return setTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := getTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field %q not found in response. Body: %s", field, string(tc.responseBody))
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, quantity int, table string) error {
	if _, ok := sharedDB.GetModel(table); !ok {
		return fmt.Errorf("unknown table %q", table)
	}

	var count int64
	if err := sharedDB.DbConn.Table(table).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rows in %q: %w", table, err)
	}
	if count != int64(quantity) {
		return fmt.Errorf("expected %d rows in %q, got %d", quantity, table, count)
	}
	return nil
}
