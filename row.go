// Package citypop finds the population of cities by name in a world
// cities dataset (the MaxMind worldcitiespop layout).
package citypop

import (
	"strconv"

	"github.com/golang/geo/s2"
)

// columns lists the dataset columns in file order. Rows are bound by
// position, so the names in the input's header line are not checked.
var columns = []string{
	"country",
	"city",
	"accent_city",
	"region",
	"population",
	"latitude",
	"longitude",
}

// Row is one decoded record of a world cities dataset.
//
// Population and the coordinates are pointers because the source data
// leaves them empty for many places. A nil pointer means the value is
// absent, which is different from a present zero.
type Row struct {
	Country    string   `csv:"country"`
	City       string   `csv:"city"`
	AccentCity string   `csv:"accent_city"`
	Region     string   `csv:"region"`
	Population *uint64  `csv:"population,omitempty"`
	Latitude   *float64 `csv:"latitude,omitempty"`
	Longitude  *float64 `csv:"longitude,omitempty"`
}

// LatLng returns the row's coordinate as an s2 point.
// The boolean is false when either coordinate is absent.
func (r Row) LatLng() (s2.LatLng, bool) {
	if r.Latitude == nil || r.Longitude == nil {
		return s2.LatLng{}, false
	}
	return s2.LatLngFromDegrees(*r.Latitude, *r.Longitude), true
}

// PopulationCount is a single search result.
type PopulationCount struct {
	City    string
	Country string
	Count   uint64
}

// String formats the result as "<city>, <country>: <count>".
func (p PopulationCount) String() string {
	return p.City + ", " + p.Country + ": " + strconv.FormatUint(p.Count, 10)
}

// countOf builds a result from a row. ok is false when the row has no
// population, in which case it can never be a result.
func countOf(r Row) (pc PopulationCount, ok bool) {
	if r.Population == nil {
		return PopulationCount{}, false
	}
	return PopulationCount{City: r.City, Country: r.Country, Count: *r.Population}, true
}
