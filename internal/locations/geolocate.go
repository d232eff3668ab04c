package locations

import (
	"context"
	"fmt"
	"time"

	"skycast/internal/types"
)

// currentLocationName labels device-derived positions. The coordinate is not
// reverse-geocoded to a real place name; this is a deliberate approximation.
const currentLocationName = "Current Location"

// Geolocator is the device-position port. A single best-effort call; the
// store bounds it with a timeout.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (types.Coords, error)
}

// Geolocate resolves the device position within timeout and selects it as the
// active location, labeled with a fixed placeholder name. On timeout or any
// provider failure the prior state is left untouched and the error is returned
// for the caller to surface as a transient message.
func (s *Store) Geolocate(ctx context.Context, geo Geolocator, timeout time.Duration) (types.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	coords, err := geo.CurrentPosition(ctx)
	if err != nil {
		return types.Location{}, fmt.Errorf("failed to acquire device position: %w", err)
	}

	loc := types.Location{
		Name: currentLocationName,
		Lat:  coords.Latitude,
		Lon:  coords.Longitude,
	}
	if err := s.Select(loc); err != nil {
		return types.Location{}, err
	}
	return loc, nil
}
