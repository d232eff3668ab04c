package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"skycast/internal/providers/openmeteo"
	"skycast/internal/types"
)

// ForecastProvider fetches the raw forecast payload for a coordinate.
type ForecastProvider interface {
	GetForecast(ctx context.Context, latitude, longitude float64) (*openmeteo.ForecastAPIResponse, error)
}

// AirQualityProvider fetches the current European AQI for a coordinate.
type AirQualityProvider interface {
	GetAirQuality(ctx context.Context, latitude, longitude float64) (*openmeteo.AirQualityAPIResponse, error)
}

// Service joins the forecast and air-quality fetches for a coordinate.
type Service interface {
	Fetch(ctx context.Context, coords types.Coords) (*Combined, error)
}

type forecastService struct {
	forecastProvider   ForecastProvider
	airQualityProvider AirQualityProvider
	logger             *slog.Logger
}

// NewService creates a service with real provider clients.
func NewService(logger *slog.Logger) Service {
	return NewServiceWithProviders(openmeteo.NewForecastClient(), openmeteo.NewAirQualityClient(), logger)
}

// NewServiceWithProviders creates a service with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(
	forecastProvider ForecastProvider,
	airQualityProvider AirQualityProvider,
	logger *slog.Logger,
) Service {
	return &forecastService{
		forecastProvider:   forecastProvider,
		airQualityProvider: airQualityProvider,
		logger:             logger.With("component", "forecast-service"),
	}
}

// Fetch issues both requests concurrently and joins them. A forecast failure
// fails the fetch; an air-quality failure only nulls the AQI field.
func (s *forecastService) Fetch(ctx context.Context, coords types.Coords) (*Combined, error) {
	var (
		wg           sync.WaitGroup
		forecastResp *openmeteo.ForecastAPIResponse
		aqiResp      *openmeteo.AirQualityAPIResponse
		forecastErr  error
		aqiErr       error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		forecastResp, forecastErr = s.forecastProvider.GetForecast(ctx, coords.Latitude, coords.Longitude)
		if forecastErr != nil {
			forecastErr = fmt.Errorf("failed to get forecast: %w", forecastErr)
		}
	}()

	go func() {
		defer wg.Done()
		aqiResp, aqiErr = s.airQualityProvider.GetAirQuality(ctx, coords.Latitude, coords.Longitude)
	}()

	wg.Wait()

	if forecastErr != nil {
		s.logger.Error("forecast fetch failed",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", forecastErr,
		)
		return nil, forecastErr
	}

	combined := &Combined{Weather: forecastResp}

	if aqiErr != nil {
		// Degraded, not fatal: the dashboard renders without AQI.
		s.logger.Debug("air-quality fetch failed, continuing without AQI",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", aqiErr,
		)
	} else if aqiResp != nil {
		aqi := aqiResp.Current.EuropeanAQI
		combined.AQI = &aqi
	}

	return combined, nil
}
