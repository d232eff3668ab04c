package geocoding

// SearchAPIResponse is the geocoding search payload; results are ranked.
type SearchAPIResponse struct {
	Results []SearchResult `json:"results"`
}

type SearchResult struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
