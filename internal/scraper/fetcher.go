package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxPageSize caps how much of the timeline page is read
const maxPageSize = 10 << 20

// Fetcher retrieves the provider's timeline page
type Fetcher struct {
	client    *http.Client
	url       string
	userAgent string
}

// NewFetcher creates a fetcher for the given page
func NewFetcher(url, userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		url:       url,
		userAgent: userAgent,
	}
}

// URL returns the page this fetcher retrieves
func (f *Fetcher) URL() string {
	return f.url
}

// Fetch downloads the page body
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, &FetchError{URL: f.url, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Accept", "text/html")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: f.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: f.url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, &FetchError{URL: f.url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return body, nil
}
