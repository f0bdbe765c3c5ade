package pricelist

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"sms-cost/core/pricing"
	"sms-cost/internal/errors"
)

// DefaultURL is the vendor's public price list
const DefaultURL = "https://developer.telekom.com/api/v1/prices"

// UserAgent is sent with price list requests
var UserAgent = "sms-cost"

// HTTPSource fetches the vendor price list over HTTP
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source for url; an empty url means DefaultURL
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Name returns the URL
func (s *HTTPSource) Name() string { return s.url }

// Kind reports a remote source
func (s *HTTPSource) Kind() pricing.Source { return pricing.SourceRemote }

// Rows downloads and parses the price list
func (s *HTTPSource) Rows(ctx context.Context) ([]pricing.Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.Network("failed to create request", err).WithContext("url", s.url)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Network("could not reach price list", err).WithContext("url", s.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Network(fmt.Sprintf("price list returned status %d", resp.StatusCode), nil).
			WithContext("url", s.url)
	}

	rows, err := ParseVendorJSON(resp.Body)
	if err != nil {
		return nil, withSource(err, s.url)
	}
	return rows, nil
}
