package viewmodel

import (
	"testing"
	"time"

	"skycast/internal/forecast"
	"skycast/internal/providers/openmeteo"
)

func TestBuild(t *testing.T) {
	payload := hourlyPayload(48)
	payload.Current = openmeteo.CurrentConditions{
		Time:                "2026-03-10T14:00",
		Temperature2M:       21.6,
		RelativeHumidity2M:  55,
		ApparentTemperature: 20.2,
		WeatherCode:         61,
		CloudCover:          80,
		WindSpeed10M:        9.4,
	}
	payload.Daily.Time = []string{"2026-03-10", "2026-03-11"}
	payload.Daily.WeatherCode = []int{61, 0}
	payload.Daily.Temperature2MMin = []float64{12, 14}
	payload.Daily.Temperature2MMax = []float64{22, 24}

	aqi := 31.0
	now := time.Date(2026, 3, 10, 14, 10, 0, 0, time.UTC)

	view := Build(&forecast.Combined{Weather: payload, AQI: &aqi}, now)

	if view.Current.TemperatureRounded != 22 {
		t.Errorf("Current.TemperatureRounded = %d, want 22", view.Current.TemperatureRounded)
	}
	if view.Current.Weather.Code != 61 {
		t.Errorf("Current.Weather.Code = %d, want 61", view.Current.Weather.Code)
	}
	if view.Current.Weather.Description == "" || view.Current.Weather.Description == "Unknown" {
		t.Errorf("Current.Weather.Description = %q, want a real description", view.Current.Weather.Description)
	}

	if len(view.Hourly) != 24 {
		t.Errorf("len(Hourly) = %d, want 24", len(view.Hourly))
	}
	if view.Hourly[0].Time != "2026-03-10T14:00" {
		t.Errorf("Hourly[0].Time = %q, want 2026-03-10T14:00", view.Hourly[0].Time)
	}

	if len(view.Daily) != 2 {
		t.Errorf("len(Daily) = %d, want 2", len(view.Daily))
	}

	// Raining at 21.6°C: precipitation takes precedence over the band.
	if view.Theme != ThemeRain {
		t.Errorf("Theme = %q, want %q", view.Theme, ThemeRain)
	}

	if view.AQI == nil || *view.AQI != 31.0 {
		t.Errorf("AQI = %v, want 31.0", view.AQI)
	}
}

func TestBuildWithoutAQI(t *testing.T) {
	payload := hourlyPayload(24)
	payload.Current = openmeteo.CurrentConditions{Temperature2M: 15, WeatherCode: 0}
	payload.Daily.Time = []string{"2026-03-10"}
	payload.Daily.WeatherCode = []int{0}
	payload.Daily.Temperature2MMin = []float64{10}
	payload.Daily.Temperature2MMax = []float64{20}

	view := Build(&forecast.Combined{Weather: payload}, time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))

	if view.AQI != nil {
		t.Errorf("AQI = %v, want nil", view.AQI)
	}
	if view.Theme != ThemeFresh {
		t.Errorf("Theme = %q, want %q", view.Theme, ThemeFresh)
	}
}
