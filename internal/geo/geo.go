package geo

import "math"

// EarthRadiusMiles is the sphere radius used for great-circle distances.
const EarthRadiusMiles = 3956.0

// Distance returns the great-circle distance in miles between two
// lat/lng pairs using the haversine formula.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180.0
	rlat2 := lat2 * math.Pi / 180.0
	dlat := (lat2 - lat1) * math.Pi / 180.0
	dlng := (lng2 - lng1) * math.Pi / 180.0

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlng/2)*math.Sin(dlng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMiles * c
}

// Box is a lat/lng bounding rectangle.
type Box struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// Contains reports whether the point falls inside the box (inclusive).
func (b Box) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// City is a known metro region. Marker is the substring that addresses in
// this city are expected to carry; both the store directory and the deal
// filter resolve cities against the same table, so the two can never drift
// apart.
type City struct {
	Name   string
	Marker string
	Box    Box
}

// Cities lists the regions the service knows about.
var Cities = []City{
	{
		Name:   "Bengaluru",
		Marker: "Bengaluru",
		Box:    Box{MinLat: 12.80, MaxLat: 13.20, MinLng: 77.40, MaxLng: 77.80},
	},
	{
		Name:   "San Francisco",
		Marker: "San Francisco",
		Box:    Box{MinLat: 37.60, MaxLat: 37.90, MinLng: -122.60, MaxLng: -122.30},
	},
}

// LocateCity returns the city whose bounding box contains the point, or nil
// when the point is outside every known region.
func LocateCity(lat, lng float64) *City {
	for i := range Cities {
		if Cities[i].Box.Contains(lat, lng) {
			return &Cities[i]
		}
	}
	return nil
}
