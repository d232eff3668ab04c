package types

import (
	"math"
	"strconv"
)

type Coords struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Key returns the identity key used for caching and saved-location
// de-duplication. Coordinates are rounded to 4 decimal places (~11m) so values
// surviving a persistence round-trip still map to the same key.
func (c Coords) Key() string {
	return strconv.FormatFloat(round4(c.Latitude), 'f', -1, 64) +
		"," +
		strconv.FormatFloat(round4(c.Longitude), 'f', -1, 64)
}

// Equal reports whether two coordinates share the same identity key.
func (c Coords) Equal(other Coords) bool {
	return c.Key() == other.Key()
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
