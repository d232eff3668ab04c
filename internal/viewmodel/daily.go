package viewmodel

import (
	"skycast/internal/providers/openmeteo"
)

// forecastDays bounds the daily list shown on the dashboard.
const forecastDays = 7

// DailyBar is one day's range bar, normalized against the week's full
// temperature span. Day 0 is always "today" in the payload's timezone.
type DailyBar struct {
	Date         string  `json:"date"`
	WeatherCode  int     `json:"weatherCode"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	LeftPercent  float64 `json:"leftPercent"`
	WidthPercent float64 `json:"widthPercent"`
}

// DailyBars derives range-bar geometry over the first 7 days. With a
// degenerate week span (all temperatures identical) every bar collapses to
// zero width at the left edge rather than dividing by zero.
func DailyBars(payload *openmeteo.ForecastAPIResponse) []DailyBar {
	daily := payload.Daily

	days := len(daily.Time)
	if len(daily.WeatherCode) < days {
		days = len(daily.WeatherCode)
	}
	if len(daily.Temperature2MMax) < days {
		days = len(daily.Temperature2MMax)
	}
	if len(daily.Temperature2MMin) < days {
		days = len(daily.Temperature2MMin)
	}
	if days > forecastDays {
		days = forecastDays
	}
	if days == 0 {
		return nil
	}

	weekMin := daily.Temperature2MMin[0]
	weekMax := daily.Temperature2MMax[0]
	for i := 1; i < days; i++ {
		if daily.Temperature2MMin[i] < weekMin {
			weekMin = daily.Temperature2MMin[i]
		}
		if daily.Temperature2MMax[i] > weekMax {
			weekMax = daily.Temperature2MMax[i]
		}
	}
	span := weekMax - weekMin

	bars := make([]DailyBar, 0, days)
	for i := 0; i < days; i++ {
		min := daily.Temperature2MMin[i]
		max := daily.Temperature2MMax[i]

		var left, width float64
		if span > 0 {
			left = (min - weekMin) / span * 100
			width = (max - min) / span * 100
		}

		bars = append(bars, DailyBar{
			Date:         daily.Time[i],
			WeatherCode:  daily.WeatherCode[i],
			Min:          min,
			Max:          max,
			LeftPercent:  left,
			WidthPercent: width,
		})
	}
	return bars
}
