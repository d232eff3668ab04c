package viewmodel

import (
	"math"
	"time"

	"skycast/internal/providers/openmeteo"
)

// Details holds the metric cards: humidity, wind, feels-like and a derived UV
// estimate.
type Details struct {
	Humidity         float64 `json:"humidity"`
	WindSpeedRounded int     `json:"windSpeed"`
	FeelsLikeRounded int     `json:"feelsLike"`
	UVIndexEstimate  int     `json:"uvIndex"`
	UVBand           string  `json:"uvBand"`
}

// DeriveDetails computes the detail metrics from the current-conditions block.
// The UV index is estimated from the local hour and cloud cover, not fetched:
// a coarse daylight heuristic (hour in [6,18], peaking in [10,14]), attenuated
// by cloud cover. It is an intentional approximation, not astronomical truth.
// now must be the location's local wall clock.
func DeriveDetails(current openmeteo.CurrentConditions, now time.Time) Details {
	hour := now.Hour()
	isDay := hour >= 6 && hour <= 18

	baseUV := 0.0
	if isDay {
		if hour >= 10 && hour <= 14 {
			baseUV = 8
		} else {
			baseUV = 4
		}
	}

	uv := int(math.Round(math.Max(0, baseUV*(1-current.CloudCover/100))))

	return Details{
		Humidity:         current.RelativeHumidity2M,
		WindSpeedRounded: int(math.Round(current.WindSpeed10M)),
		FeelsLikeRounded: int(math.Round(current.ApparentTemperature)),
		UVIndexEstimate:  uv,
		UVBand:           uvBand(uv),
	}
}

func uvBand(uv int) string {
	switch {
	case uv <= 2:
		return "Low"
	case uv <= 5:
		return "Mod"
	default:
		return "High"
	}
}
