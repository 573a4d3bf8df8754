package directory

import (
	"strings"

	"dealradar/internal/domain"
	"dealradar/internal/geo"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

// Area is one resolvable neighborhood or city with the stores known there.
type Area struct {
	Aliases    []string
	Box        geo.Box
	Businesses []domain.Business
}

// Directory is the static store lookup table. It stands in for a real
// places service and is injected at construction so tests can substitute
// their own table.
type Directory struct {
	areas []Area
}

// New builds a directory from an area list. Areas are matched in order, so
// callers list neighborhoods before the cities that contain them.
func New(areas []Area) *Directory {
	return &Directory{areas: areas}
}

// Resolve returns the known businesses for a location scope, optionally
// filtered by category. At least one of name or a full lat/lng pair is
// required. An unknown location resolves to an empty list, not an error.
func (d *Directory) Resolve(name string, lat, lng *float64, category string) ([]domain.Business, error) {
	hasCoords := lat != nil && lng != nil
	if name == "" && !hasCoords {
		return nil, domain.ErrInvalidInput
	}

	var area *Area
	if name != "" {
		lower := strings.ToLower(name)
		for i := range d.areas {
			for _, alias := range d.areas[i].Aliases {
				if strings.Contains(lower, alias) {
					area = &d.areas[i]
					break
				}
			}
			if area != nil {
				break
			}
		}
	} else {
		for i := range d.areas {
			if d.areas[i].Box.Contains(*lat, *lng) {
				area = &d.areas[i]
				break
			}
		}
	}
	if area == nil {
		return []domain.Business{}, nil
	}

	out := make([]domain.Business, 0, len(area.Businesses))
	for _, b := range area.Businesses {
		if category != "" && category != CategoryAll && b.Category != category {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// Default returns the shipped directory: two Bengaluru shopping areas plus
// San Francisco, matching the city table in the geo package.
func Default() *Directory {
	jayanagar := []domain.Business{
		{Name: "Zudio Jayanagar", Category: "retail", Address: "9th Main Rd, Jayanagar 2nd Block, Bengaluru", Lat: 12.9402, Lng: 77.5823, SourceURL: "https://www.zudio.com/store/jayanagar"},
		{Name: "Levi's Store Jayanagar", Category: "retail", Address: "11th Main Rd, Jayanagar 4th Block, Bengaluru", Lat: 12.9287, Lng: 77.5832, SourceURL: "https://www.levi.in/store/jayanagar"},
		{Name: "H&M Jayanagar", Category: "retail", Address: "30th Cross Rd, Jayanagar 4th Block, Bengaluru", Lat: 12.9254, Lng: 77.5851, SourceURL: "https://www2.hm.com/store/jayanagar"},
		{Name: "Meghana Foods Jayanagar", Category: "restaurant", Address: "9th Block, Jayanagar, Bengaluru", Lat: 12.9216, Lng: 77.5900, SourceURL: "https://www.meghanafoods.com/jayanagar"},
	}
	brigade := []domain.Business{
		{Name: "Lifestyle Brigade Road", Category: "retail", Address: "Brigade Rd, Shanthala Nagar, Bengaluru", Lat: 12.9716, Lng: 77.6078, SourceURL: "https://www.lifestylestores.com/store/brigade-road"},
		{Name: "Adidas Store Brigade Road", Category: "retail", Address: "Brigade Rd, Ashok Nagar, Bengaluru", Lat: 12.9725, Lng: 77.6070, SourceURL: "https://www.adidas.co.in/store/brigade-road"},
		{Name: "Westside Brigade Road", Category: "retail", Address: "Brigade Rd, Craig Park Layout, Bengaluru", Lat: 12.9700, Lng: 77.6085, SourceURL: "https://www.westside.com/store/brigade-road"},
		{Name: "Truffles Brigade Road", Category: "restaurant", Address: "St. Marks Rd, off Brigade Rd, Bengaluru", Lat: 12.9711, Lng: 77.6012, SourceURL: "https://www.trufflesindia.com/brigade-road"},
	}
	sanFrancisco := []domain.Business{
		{Name: "Fashion Outlet", Category: "retail", Address: "123 Market St, San Francisco, CA", Lat: 37.7749, Lng: -122.4194, SourceURL: "https://example-retail.com/fashion-outlet"},
		{Name: "Tech World", Category: "retail", Address: "789 Powell St, San Francisco, CA", Lat: 37.7833, Lng: -122.4167, SourceURL: "https://example-retail.com/tech-world"},
		{Name: "Book Haven", Category: "retail", Address: "222 Valencia St, San Francisco, CA", Lat: 37.7699, Lng: -122.4660, SourceURL: "https://example-retail.com/book-haven"},
		{Name: "Pizza Paradise", Category: "restaurant", Address: "456 Mission St, San Francisco, CA", Lat: 37.7739, Lng: -122.4312, SourceURL: "https://example-restaurant.com/pizza-paradise"},
		{Name: "Gourmet Grill", Category: "restaurant", Address: "101 California St, San Francisco, CA", Lat: 37.7694, Lng: -122.4862, SourceURL: "https://example-restaurant.com/gourmet-grill"},
	}

	bengaluru := make([]domain.Business, 0, len(jayanagar)+len(brigade))
	bengaluru = append(bengaluru, jayanagar...)
	bengaluru = append(bengaluru, brigade...)

	return New([]Area{
		{
			Aliases:    []string{"jayanagar"},
			Box:        geo.Box{MinLat: 12.91, MaxLat: 12.96, MinLng: 77.56, MaxLng: 77.61},
			Businesses: jayanagar,
		},
		{
			Aliases:    []string{"brigade road", "brigade rd"},
			Box:        geo.Box{MinLat: 12.96, MaxLat: 12.99, MinLng: 77.59, MaxLng: 77.62},
			Businesses: brigade,
		},
		{
			Aliases:    []string{"bengaluru", "bangalore"},
			Box:        geo.Cities[0].Box,
			Businesses: bengaluru,
		},
		{
			Aliases:    []string{"san francisco", "sf, ca"},
			Box:        geo.Cities[1].Box,
			Businesses: sanFrancisco,
		},
	})
}
