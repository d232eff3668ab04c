package viewmodel

import (
	"strings"
	"time"

	"skycast/internal/providers/openmeteo"
)

// windowSize is the number of hourly entries shown on the dashboard.
const windowSize = 24

// HourlyEntry is one aligned (time, temperature, code) triple.
type HourlyEntry struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weatherCode"`
}

// HourlyWindow returns up to 24 consecutive hourly entries starting at the
// first timestamp whose hour matches now's hour; when no timestamp matches,
// the window starts at index 0. Fewer than 24 remaining entries are returned
// as-is. now must be in the payload's timezone, since the series is
// location-local.
func HourlyWindow(payload *openmeteo.ForecastAPIResponse, now time.Time) []HourlyEntry {
	hourly := payload.Hourly

	// Series timestamps look like "2026-08-31T14:00"; match on the hour prefix.
	prefix := now.Format("2006-01-02T15")

	start := 0
	for i, t := range hourly.Time {
		if strings.HasPrefix(t, prefix) {
			start = i
			break
		}
	}

	n := len(hourly.Time)
	if len(hourly.Temperature2M) < n {
		n = len(hourly.Temperature2M)
	}
	if len(hourly.WeatherCode) < n {
		n = len(hourly.WeatherCode)
	}

	end := start + windowSize
	if end > n {
		end = n
	}

	window := make([]HourlyEntry, 0, end-start)
	for i := start; i < end; i++ {
		window = append(window, HourlyEntry{
			Time:        hourly.Time[i],
			Temperature: hourly.Temperature2M[i],
			WeatherCode: hourly.WeatherCode[i],
		})
	}
	return window
}
