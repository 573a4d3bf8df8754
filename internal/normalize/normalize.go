// Package normalize converts raw scraped listings into canonical deals.
package normalize

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"dealradar/internal/domain"
)

// MinIngestDiscount is the admission floor: listings discounted less than
// this are never persisted, regardless of any query-time minimum.
const MinIngestDiscount = 15.0

// Placeholder copy for listings that omit a title or description.
const (
	DefaultTitle       = "Local Deal"
	DefaultDescription = "Discount offer at a nearby store."
)

var (
	// ErrUnparsableDiscount means neither the discount text nor the price
	// pair yielded a usable percentage.
	ErrUnparsableDiscount = errors.New("listing discount could not be parsed")
	// ErrBelowFloor means the listing parsed fine but falls under the
	// ingestion discount floor.
	ErrBelowFloor = fmt.Errorf("listing discount below %v%% floor", MinIngestDiscount)
)

var rePercent = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)

var currencyStripper = strings.NewReplacer("$", "", "₹", "", "€", "", ",", "", " ", "", "\t", "")

// Percent extracts a percentage from discount text like "Flat 40% off".
func Percent(s string) (float64, bool) {
	m := rePercent.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Price parses price text, tolerating currency symbols and separators
// ("$1,299.00", "₹ 999").
func Price(s string) (float64, bool) {
	cleaned := currencyStripper.Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// field returns a raw listing value as text. Scrapers hand back a mix of
// strings and JSON numbers, so both are accepted.
func field(raw domain.RawListing, key string) string {
	switch v := raw[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// Listing turns one raw listing into a canonical deal for the given store.
//
// The discount is taken from the listing's discount text when it carries a
// percentage, otherwise derived from the original/sale price pair. Listings
// with no parsable discount, or one under the ingestion floor, are rejected
// with ErrUnparsableDiscount or ErrBelowFloor.
//
// Location fields come verbatim from the resolved business; the listing's
// own location text is unreliable and is ignored.
func Listing(raw domain.RawListing, b domain.Business) (domain.Deal, error) {
	origPrice, origOK := Price(field(raw, "original_price"))
	salePrice, saleOK := Price(field(raw, "sale_price"))

	pct, ok := Percent(field(raw, "discount"))
	if !ok {
		if !origOK || !saleOK || origPrice <= 0 {
			return domain.Deal{}, ErrUnparsableDiscount
		}
		pct = round2((origPrice - salePrice) / origPrice * 100)
	}
	if pct < MinIngestDiscount {
		return domain.Deal{}, ErrBelowFloor
	}

	deal := domain.Deal{
		ID:                 uuid.NewString(),
		Title:              DefaultTitle,
		Description:        DefaultDescription,
		DiscountPercentage: pct,
		BusinessName:       b.Name,
		Category:           b.Category,
		Location: domain.Location{
			Lat:     b.Lat,
			Lng:     b.Lng,
			Address: b.Address,
		},
		ImageURL:  field(raw, "image"),
		URL:       b.SourceURL,
		CreatedAt: time.Now().UTC(),
	}
	if t := strings.TrimSpace(field(raw, "title")); t != "" {
		deal.Title = t
	}
	if d := strings.TrimSpace(field(raw, "description")); d != "" {
		deal.Description = d
	}
	if origOK {
		deal.OriginalPrice = &origPrice
	}
	if saleOK {
		deal.SalePrice = &salePrice
	}
	return deal, nil
}
