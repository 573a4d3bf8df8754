package domain

import (
	"errors"
	"time"
)

// ErrInvalidInput marks a request missing the data needed to resolve a
// location scope (neither a location name nor a full coordinate pair).
var ErrInvalidInput = errors.New("location name or lat/lng required")

// Location is a fixed point attached to a deal. Never mutated after a deal
// is created.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Deal is a canonical discount offer.
type Deal struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	DiscountPercentage float64    `json:"discount_percentage"`
	OriginalPrice      *float64   `json:"original_price,omitempty"`
	SalePrice          *float64   `json:"sale_price,omitempty"`
	BusinessName       string     `json:"business_name"`
	Category           string     `json:"category"` // retail, restaurant, etc.
	Location           Location   `json:"location"`
	ExpirationDate     *time.Time `json:"expiration_date,omitempty"`
	ImageURL           string     `json:"image_url,omitempty"`
	URL                string     `json:"url,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// DealWithDistance is the query-time response shape. Distance is computed
// per request and never persisted.
type DealWithDistance struct {
	Deal
	Distance *float64 `json:"distance,omitempty"`
}

// Business is a store directory entry: a known local store and the URL its
// deal listings are fetched from.
type Business struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Address   string  `json:"address"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	SourceURL string  `json:"source_url"`
}

// RawListing is one unnormalized offer as returned by the fetch service:
// arbitrary string keys with string or number values.
type RawListing map[string]any

// SourceFailure records a single business whose fetch failed during an
// ingest run. The run continues past it.
type SourceFailure struct {
	Business string `json:"business"`
	Err      string `json:"error"`
}

// IngestReport summarizes one ingest run.
type IngestReport struct {
	Accepted int             `json:"accepted_count"`
	Sources  int             `json:"source_count"`
	Failures []SourceFailure `json:"failures,omitempty"`
}
