package openmeteo

import "fmt"

// ForecastAPIResponse is the raw forecast payload. The hourly and daily blocks
// are parallel arrays sharing index alignment per section.
type ForecastAPIResponse struct {
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Timezone  string            `json:"timezone"`
	Current   CurrentConditions `json:"current"`
	Hourly    HourlySeries      `json:"hourly"`
	Daily     DailySeries       `json:"daily"`
}

// CurrentConditions holds the instant metrics block.
type CurrentConditions struct {
	Time                string  `json:"time"`
	Temperature2M       float64 `json:"temperature_2m"`
	RelativeHumidity2M  float64 `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	WeatherCode         int     `json:"weather_code"`
	CloudCover          float64 `json:"cloud_cover"`
	WindSpeed10M        float64 `json:"wind_speed_10m"`
}

type HourlySeries struct {
	Time          []string  `json:"time"`
	Temperature2M []float64 `json:"temperature_2m"`
	WeatherCode   []int     `json:"weather_code"`
}

type DailySeries struct {
	Time             []string  `json:"time"`
	WeatherCode      []int     `json:"weather_code"`
	Temperature2MMax []float64 `json:"temperature_2m_max"`
	Temperature2MMin []float64 `json:"temperature_2m_min"`
}

// Validate checks the parallel-array invariants at the fetch boundary so
// downstream derivations can index without re-checking shape.
func (r *ForecastAPIResponse) Validate() error {
	if len(r.Hourly.Time) == 0 {
		return fmt.Errorf("hourly series is empty")
	}
	if len(r.Hourly.Temperature2M) != len(r.Hourly.Time) ||
		len(r.Hourly.WeatherCode) != len(r.Hourly.Time) {
		return fmt.Errorf("hourly series misaligned: time=%d temperature=%d code=%d",
			len(r.Hourly.Time), len(r.Hourly.Temperature2M), len(r.Hourly.WeatherCode))
	}
	if len(r.Daily.Time) == 0 {
		return fmt.Errorf("daily series is empty")
	}
	if len(r.Daily.WeatherCode) != len(r.Daily.Time) ||
		len(r.Daily.Temperature2MMax) != len(r.Daily.Time) ||
		len(r.Daily.Temperature2MMin) != len(r.Daily.Time) {
		return fmt.Errorf("daily series misaligned: time=%d code=%d max=%d min=%d",
			len(r.Daily.Time), len(r.Daily.WeatherCode),
			len(r.Daily.Temperature2MMax), len(r.Daily.Temperature2MMin))
	}
	return nil
}

// AirQualityAPIResponse is the air-quality payload; only the European AQI is requested.
type AirQualityAPIResponse struct {
	Current struct {
		EuropeanAQI float64 `json:"european_aqi"`
	} `json:"current"`
}
