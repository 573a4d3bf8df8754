package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reCategory = regexp.MustCompile(`^[a-z][a-z_-]{0,31}$`)
)

// Coord parses an optional latitude/longitude query value. Absence is not
// an error; garbage is.
func Coord(s string) (*float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < -180 || v > 180 {
		return nil, false
	}
	return &v, true
}

// Float parses an optional non-negative float, falling back to def when the
// value is absent.
func Float(s string, def float64) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Category validates a category filter value ("retail", "restaurant", "all").
func Category(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", true
	}
	return s, reCategory.MatchString(s)
}

// LocationName trims and length-caps a free-text location.
func LocationName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 120 {
		return "", false
	}
	return s, true
}
