package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/condoledger/backend/internal/application/adapter"
	domainerror "github.com/condoledger/backend/internal/domain/error"
)

const (
	rateCacheKey = "rate:current"
	rateCacheTTL = 15 * time.Minute
)

// rateClient implements the adapter.RateService interface against an external
// HTTP rate provider, with a redis cache in front of it. A fresh cached value
// short-circuits the HTTP call; a stale cache is better than no rate, so on
// provider failure the last cached value is served regardless of age.
type rateClient struct {
	baseURL    string
	httpClient *http.Client
	cache      *redis.Client
}

// NewRateClient creates a new rate client instance.
func NewRateClient(baseURL string, cache *redis.Client) adapter.RateService {
	return &rateClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: cache,
	}
}

// cachedRate is the redis representation of a fetched rate.
type cachedRate struct {
	Value     decimal.Decimal `json:"value"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// rateResponse is the provider's response body.
type rateResponse struct {
	Rate decimal.Decimal `json:"rate"`
}

// CurrentRate returns the current secondary-currency rate.
func (c *rateClient) CurrentRate(ctx context.Context) (*adapter.Rate, error) {
	if cached, ok := c.fromCache(ctx, rateCacheTTL); ok {
		return cached, nil
	}

	fetched, err := c.fetch(ctx)
	if err != nil {
		slog.Warn("Rate provider unavailable, falling back to cache", "error", err)
		if cached, ok := c.fromCache(ctx, 0); ok {
			return cached, nil
		}
		return nil, domainerror.NewRateError(
			domainerror.ErrCodeRateUnavailable,
			"rate provider unreachable and no cached rate available",
			domainerror.ErrRateUnavailable,
		)
	}

	c.store(ctx, fetched)
	return fetched, nil
}

// fromCache reads the cached rate. A non-zero maxAge rejects entries older
// than that; zero accepts any age.
func (c *rateClient) fromCache(ctx context.Context, maxAge time.Duration) (*adapter.Rate, bool) {
	if c.cache == nil {
		return nil, false
	}

	raw, err := c.cache.Get(ctx, rateCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var cached cachedRate
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false
	}
	if maxAge > 0 && time.Since(cached.FetchedAt) > maxAge {
		return nil, false
	}

	return &adapter.Rate{
		Value:     cached.Value,
		FetchedAt: cached.FetchedAt,
	}, true
}

// store writes the rate to the cache. Entries are kept well past freshness so
// they can serve as a fallback when the provider is down.
func (c *rateClient) store(ctx context.Context, rate *adapter.Rate) {
	if c.cache == nil {
		return
	}

	raw, err := json.Marshal(cachedRate{
		Value:     rate.Value,
		FetchedAt: rate.FetchedAt,
	})
	if err != nil {
		return
	}

	if err := c.cache.Set(ctx, rateCacheKey, raw, 24*time.Hour).Err(); err != nil {
		slog.Warn("Failed to cache rate", "error", err)
	}
}

// fetch retrieves the rate from the HTTP provider.
func (c *rateClient) fetch(ctx context.Context) (*adapter.Rate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rate response: %w", err)
	}
	if !body.Rate.IsPositive() {
		return nil, fmt.Errorf("rate provider returned non-positive rate %s", body.Rate)
	}

	return &adapter.Rate{
		Value:     body.Rate,
		FetchedAt: time.Now().UTC(),
	}, nil
}
