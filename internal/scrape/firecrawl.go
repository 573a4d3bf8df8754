// Package scrape talks to the external listing-fetch service. One call per
// business; failures here are contained by the ingest pipeline, never fatal
// to a whole run.
package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dealradar/internal/domain"
)

// Fetcher fetches the raw deal listings published by one business.
type Fetcher interface {
	Fetch(ctx context.Context, b domain.Business) ([]domain.RawListing, error)
}

// Default base URL for the Firecrawl scrape API.
const defaultBaseURL = "https://api.firecrawl.dev/v1"

// APIError is returned when the fetch service responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("firecrawl: HTTP %d: %s", e.StatusCode, e.Body)
}

// Option configures the Firecrawl client.
type Option func(*Firecrawl)

// WithBaseURL overrides the default base URL.
func WithBaseURL(url string) Option {
	return func(c *Firecrawl) { c.baseURL = url }
}

// WithHTTPClient sets a custom *http.Client. Timeouts on outbound fetches
// live on this client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Firecrawl) { c.http = hc }
}

// Firecrawl implements Fetcher against the Firecrawl API.
type Firecrawl struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewFirecrawl(apiKey string, opts ...Option) *Firecrawl {
	c := &Firecrawl{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type selector struct {
	Name       string            `json:"name"`
	Selector   string            `json:"selector"`
	Type       string            `json:"type"`
	Properties map[string]string `json:"properties"`
}

type scrapeRequest struct {
	URL       string     `json:"url"`
	Selectors []selector `json:"selectors"`
}

type scrapeResponse struct {
	Deals []domain.RawListing `json:"deals"`
}

// dealSelectors describes the listing shape extracted from a store page.
var dealSelectors = []selector{{
	Name:     "deals",
	Selector: ".deal-item",
	Type:     "list",
	Properties: map[string]string{
		"title":          ".deal-title",
		"description":    ".deal-description",
		"discount":       ".discount-percentage",
		"original_price": ".original-price",
		"sale_price":     ".sale-price",
		"image":          ".deal-image",
	},
}}

// Fetch scrapes one business page and returns its raw listings.
func (c *Firecrawl) Fetch(ctx context.Context, b domain.Business) ([]domain.RawListing, error) {
	body, err := json.Marshal(scrapeRequest{URL: b.SourceURL, Selectors: dealSelectors})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/scrape", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(msg)}
	}

	var out scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("firecrawl: decode response: %w", err)
	}
	return out.Deals, nil
}
