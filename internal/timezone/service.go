package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// Service resolves the wall clock at a coordinate. Forecast payloads are
// requested with timezone=auto, so their time series are location-local; the
// reference "now" used for windowing must be local too.
type Service interface {
	// GetTimezone returns the IANA timezone name, e.g. "Europe/London".
	GetTimezone(latitude, longitude float64) (string, error)
	// LocalNow returns the current time in the coordinate's timezone.
	LocalNow(latitude, longitude float64) (time.Time, error)
}

type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	once     sync.Once
)

// NewService creates or returns the singleton timezone service.
// Singleton because tzf.Finder loads timezone data into memory (~50MB).
func NewService() (Service, error) {
	var err error
	once.Do(func() {
		finder, findErr := tzf.NewDefaultFinder()
		if findErr != nil {
			err = fmt.Errorf("failed to initialize timezone finder: %w", findErr)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	timezone := s.finder.GetTimezoneName(longitude, latitude)
	if timezone == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	return timezone, nil
}

func (s *service) LocalNow(latitude, longitude float64) (time.Time, error) {
	tz, err := s.GetTimezone(latitude, longitude)
	if err != nil {
		return time.Time{}, err
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load timezone location %s: %w", tz, err)
	}

	return time.Now().In(loc), nil
}
