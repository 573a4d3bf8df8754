package services

import (
	"context"
	"errors"

	"dealradar/internal/directory"
	"dealradar/internal/domain"
	applog "dealradar/internal/log"
	"dealradar/internal/normalize"
	"dealradar/internal/repos"
	"dealradar/internal/scrape"
)

// IngestParams names the scope to ingest: a location name, a coordinate
// pair, or both. Category narrows which stores are visited.
type IngestParams struct {
	Location string
	Lat, Lng *float64
	Category string
}

type IngestService struct {
	Dir   *directory.Directory
	Fetch scrape.Fetcher
	Deals *repos.DealRepo
}

func NewIngestService(dir *directory.Directory, fetch scrape.Fetcher, deals *repos.DealRepo) *IngestService {
	return &IngestService{Dir: dir, Fetch: fetch, Deals: deals}
}

// Ingest replaces the persisted deals for one location scope with freshly
// fetched listings.
//
// A named scope is pre-wiped by address substring. Coordinate-only calls
// skip the pre-wipe and rely on the per-business replace below, which is
// idempotent by business identity. One store's fetch failure never aborts
// the rest of the run; it is logged and recorded in the report.
func (s *IngestService) Ingest(ctx context.Context, p IngestParams) (domain.IngestReport, error) {
	hasCoords := p.Lat != nil && p.Lng != nil
	if p.Location == "" && !hasCoords {
		return domain.IngestReport{}, domain.ErrInvalidInput
	}

	if p.Location != "" {
		if err := s.Deals.DeleteByAddress(p.Location); err != nil {
			return domain.IngestReport{}, err
		}
	}

	stores, err := s.Dir.Resolve(p.Location, p.Lat, p.Lng, p.Category)
	if err != nil {
		return domain.IngestReport{}, err
	}

	report := domain.IngestReport{Sources: len(stores)}
	for _, b := range stores {
		listings, err := s.Fetch.Fetch(ctx, b)
		if err != nil {
			applog.Error(nil, "ingest.fetch.fail", err, map[string]any{"business": b.Name})
			report.Failures = append(report.Failures, domain.SourceFailure{Business: b.Name, Err: err.Error()})
			continue
		}

		// Replace this store's deals so re-running the same scope does not
		// accumulate duplicates.
		if err := s.Deals.DeleteByBusiness(b.Name); err != nil {
			return report, err
		}

		for _, raw := range listings {
			deal, err := normalize.Listing(raw, b)
			if err != nil {
				if !errors.Is(err, normalize.ErrBelowFloor) && !errors.Is(err, normalize.ErrUnparsableDiscount) {
					return report, err
				}
				applog.Event("ingest.listing.drop", map[string]any{"business": b.Name, "reason": err.Error()})
				continue
			}
			if err := s.Deals.Insert(deal); err != nil {
				return report, err
			}
			report.Accepted++
		}
	}

	applog.Event("ingest.done", map[string]any{
		"accepted": report.Accepted,
		"sources":  report.Sources,
		"failed":   len(report.Failures),
	})
	return report, nil
}
