package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// RateProvider is a fake currency rate HTTP provider. Scenarios set the
// response; the server records how many requests it has served.
type RateProvider struct {
	mu       sync.Mutex
	server   *httptest.Server
	status   int
	rate     string
	requests int
}

// NewRateProvider starts a fake rate provider returning the given rate.
func NewRateProvider() *RateProvider {
	p := &RateProvider{
		status: http.StatusOK,
		rate:   "36.50",
	}
	p.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.requests++
		w.WriteHeader(p.status)
		_ = json.NewEncoder(w).Encode(map[string]string{"rate": p.rate})
	}))
	return p
}

// URL returns the provider endpoint.
func (p *RateProvider) URL() string {
	return p.server.URL
}

// SetRate sets the rate returned by the provider.
func (p *RateProvider) SetRate(rate string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rate = rate
	p.status = http.StatusOK
}

// SetUnavailable makes the provider answer with a server error.
func (p *RateProvider) SetUnavailable() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = http.StatusInternalServerError
}

// Requests returns the number of requests served.
func (p *RateProvider) Requests() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests
}

// Close shuts the provider down.
func (p *RateProvider) Close() {
	p.server.Close()
}
