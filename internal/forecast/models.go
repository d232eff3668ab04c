package forecast

import (
	"time"

	"skycast/internal/providers/openmeteo"
)

// Combined is the joined result of the forecast and air-quality fetches.
// AQI is nil when the air-quality fetch failed or returned nothing; that is a
// degraded state, not an error.
type Combined struct {
	Weather *openmeteo.ForecastAPIResponse `json:"weather"`
	AQI     *float64                       `json:"aqi,omitempty"`
}

// Snapshot is the consumer-visible request lifecycle for one coordinate.
// IsLoading is true only while no payload has ever been produced for the key;
// IsFetching is true whenever a request is in flight, including background
// refreshes of already-displayed data. The render layer uses the distinction
// to choose between a full skeleton and a subtle spinner.
type Snapshot struct {
	Payload    *Combined
	FetchedAt  time.Time
	Err        error
	IsLoading  bool
	IsFetching bool
}
