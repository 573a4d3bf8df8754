package services

import (
	"math"
	"sort"
	"strings"

	"dealradar/internal/domain"
	"dealradar/internal/geo"
	"dealradar/internal/repos"
)

// Query defaults. Callers that omit the parameters get these.
const (
	DefaultMinDiscount = 15.0
	DefaultRadius      = 5.0 // miles
)

// QueryParams filters a deal query. Lat and Lng must both be set to enable
// distance filtering; a lone coordinate is ignored.
type QueryParams struct {
	MinDiscount float64
	Category    string
	Lat, Lng    *float64
	Radius      float64
}

type DealService struct {
	Deals *repos.DealRepo
}

func NewDealService(deals *repos.DealRepo) *DealService {
	return &DealService{Deals: deals}
}

// Query returns deals over the discount floor, optionally narrowed by
// category and caller proximity. With coordinates the result is sorted by
// distance ascending (ties keep storage order); without them it is the
// stored set in storage order and no distance is attached.
func (s *DealService) Query(p QueryParams) ([]domain.DealWithDistance, error) {
	radius := p.Radius
	if radius <= 0 {
		radius = DefaultRadius
	}

	deals, err := s.Deals.Find(repos.DealFilter{
		MinDiscount: p.MinDiscount,
		Category:    p.Category,
	})
	if err != nil {
		return nil, err
	}

	if p.Lat == nil || p.Lng == nil {
		out := make([]domain.DealWithDistance, 0, len(deals))
		for _, d := range deals {
			out = append(out, domain.DealWithDistance{Deal: d})
		}
		return out, nil
	}

	// When the caller sits inside a known city, deals from other cities are
	// dropped up front by address marker. Brand outlets repeat across
	// cities, so raw distance alone is not trusted to disambiguate.
	city := geo.LocateCity(*p.Lat, *p.Lng)

	out := make([]domain.DealWithDistance, 0, len(deals))
	for _, d := range deals {
		if city != nil && !strings.Contains(d.Location.Address, city.Marker) {
			continue
		}
		dist := geo.Distance(*p.Lat, *p.Lng, d.Location.Lat, d.Location.Lng)
		if dist > radius {
			continue
		}
		rounded := math.Round(dist*100) / 100
		out = append(out, domain.DealWithDistance{Deal: d, Distance: &rounded})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].Distance < *out[j].Distance
	})
	return out, nil
}
