package citypop

import (
	"math"

	"github.com/agnivade/levenshtein"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// maxFuzzyDistance caps the edit distance accepted by WithFuzzy.
const maxFuzzyDistance = 3

// earthRadiusKm is the mean Earth radius used to turn kilometres into
// angles on the unit sphere.
const earthRadiusKm = 6371.0088

// matcher decides whether a decoded row belongs in the result set.
type matcher func(query string, r Row) bool

// exactMatch compares city names byte for byte, so "Kuala Lumpur" and
// "kuala lumpur" are different cities.
func exactMatch(query string, r Row) bool {
	return query == r.City
}

// fuzzyMatch returns a matcher accepting names within maxDist edits of
// the query. Comparison stays case-sensitive; a case change costs an edit.
func fuzzyMatch(maxDist int) matcher {
	if maxDist <= 0 {
		return exactMatch
	}
	if maxDist > maxFuzzyDistance {
		maxDist = maxFuzzyDistance
	}
	return func(query string, r Row) bool {
		if query == r.City {
			return true
		}
		return levenshtein.ComputeDistance(query, r.City) <= maxDist
	}
}

// area is a spherical cap around a point.
type area struct {
	center s2.LatLng
	radius s1.Angle
}

func newArea(lat, lng, radiusKm float64) (area, bool) {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return area{}, false
	}
	if radiusKm <= 0 || math.IsNaN(radiusKm) {
		return area{}, false
	}
	ll := s2.LatLngFromDegrees(lat, lng)
	if !ll.IsValid() {
		return area{}, false
	}
	return area{center: ll, radius: s1.Angle(radiusKm / earthRadiusKm)}, true
}

// contains reports whether the row lies inside the area. Rows without
// coordinates are never inside.
func (a area) contains(r Row) bool {
	ll, ok := r.LatLng()
	if !ok {
		return false
	}
	return a.center.Distance(ll) <= a.radius
}

// within narrows next to rows inside a.
func within(a area, next matcher) matcher {
	return func(query string, r Row) bool {
		return a.contains(r) && next(query, r)
	}
}
