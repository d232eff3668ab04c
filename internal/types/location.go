package types

// Location is a named place the user is looking at or has bookmarked.
// Immutable once selected; equality is defined by coordinate, not name.
type Location struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Admin1  string  `json:"admin1,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Coords returns the location's coordinate pair.
func (l Location) Coords() Coords {
	return NewCoords(l.Lat, l.Lon)
}

// SameCoords reports whether two locations refer to the same coordinate,
// regardless of how they are named.
func (l Location) SameCoords(other Location) bool {
	return l.Coords().Equal(other.Coords())
}
