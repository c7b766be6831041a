// Package network provides a pre-configured, shared HTTP client for provider communication.
package network

import (
	"context"
	"net/http"
	"time"

	"github.com/tubescribe-cli/tubescribe/constant"
)

// Client is the singleton HTTP client shared across the application for efficient resource utilization.
// It is configured with concurrency limits sized for batch fan-out and a per-request timeout that keeps
// a single slow endpoint from stalling the retry window.
var Client = &http.Client{
	Timeout:   10 * time.Second,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 10 * time.Second
	return t
}

// NewRequest builds a GET request carrying the application User-Agent.
func NewRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	return req, nil
}
