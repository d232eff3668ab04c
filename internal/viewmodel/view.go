package viewmodel

import (
	"math"
	"time"

	"skycast/internal/forecast"
	"skycast/internal/types"
)

// Current is the headline conditions block.
type Current struct {
	Temperature        float64       `json:"temperature"`
	TemperatureRounded int           `json:"temperatureRounded"`
	Weather            types.Weather `json:"weather"`
	Time               string        `json:"time"`
}

// View is the complete display-ready dashboard state derived from one
// combined payload. Derivation is pure: identical inputs produce identical
// views.
type View struct {
	Current Current       `json:"current"`
	Hourly  []HourlyEntry `json:"hourly"`
	Daily   []DailyBar    `json:"daily"`
	Details Details       `json:"details"`
	Theme   ThemeKey      `json:"theme"`
	AQI     *float64      `json:"aqi,omitempty"`
}

// Build derives the full view from a combined payload. now must be the
// location's local wall clock; it drives both the hourly window position and
// the UV estimate.
func Build(combined *forecast.Combined, now time.Time) View {
	weather := combined.Weather
	current := weather.Current

	return View{
		Current: Current{
			Temperature:        current.Temperature2M,
			TemperatureRounded: int(math.Round(current.Temperature2M)),
			Weather:            types.NewWeather(current.WeatherCode),
			Time:               current.Time,
		},
		Hourly:  HourlyWindow(weather, now),
		Daily:   DailyBars(weather),
		Details: DeriveDetails(current, now),
		Theme:   Theme(current.Temperature2M, current.WeatherCode),
		AQI:     combined.AQI,
	}
}
