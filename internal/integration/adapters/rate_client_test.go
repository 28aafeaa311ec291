package adapters

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	domainerror "github.com/condoledger/backend/internal/domain/error"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRateClient_FetchesAndCaches(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rate": "36.52"}`))
	}))
	defer server.Close()

	client := NewRateClient(server.URL, testRedis(t))

	first, err := client.CurrentRate(context.Background())
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if !first.Value.Equal(decimal.RequireFromString("36.52")) {
		t.Errorf("expected rate 36.52, got %s", first.Value)
	}

	second, err := client.CurrentRate(context.Background())
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if !second.Value.Equal(first.Value) {
		t.Errorf("cached rate differs: %s vs %s", second.Value, first.Value)
	}
	if calls.Load() != 1 {
		t.Errorf("expected a single provider call, got %d", calls.Load())
	}
}

func TestRateClient_ServesStaleCacheWhenProviderDown(t *testing.T) {
	var failing atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"rate": "36.52"}`))
	}))
	defer server.Close()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	client := NewRateClient(server.URL, cache)
	if _, err := client.CurrentRate(context.Background()); err != nil {
		t.Fatalf("warm-up fetch: %v", err)
	}

	// Age the cache entry past freshness, then take the provider down.
	mr.FastForward(rateCacheTTL * 2)
	failing.Store(true)

	rate, err := client.CurrentRate(context.Background())
	if err != nil {
		t.Fatalf("expected stale-cache fallback, got error: %v", err)
	}
	if !rate.Value.Equal(decimal.RequireFromString("36.52")) {
		t.Errorf("expected cached rate 36.52, got %s", rate.Value)
	}
}

func TestRateClient_UnavailableWithoutCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewRateClient(server.URL, testRedis(t))

	_, err := client.CurrentRate(context.Background())
	if !errors.Is(err, domainerror.ErrRateUnavailable) {
		t.Errorf("expected ErrRateUnavailable, got %v", err)
	}
}

func TestRateClient_RejectsNonPositiveRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rate": "0"}`))
	}))
	defer server.Close()

	client := NewRateClient(server.URL, testRedis(t))

	_, err := client.CurrentRate(context.Background())
	if !errors.Is(err, domainerror.ErrRateUnavailable) {
		t.Errorf("expected ErrRateUnavailable, got %v", err)
	}
}
