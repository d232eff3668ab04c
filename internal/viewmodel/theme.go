package viewmodel

import "skycast/internal/types"

// ThemeKey selects the dashboard background. The render layer maps keys to
// gradients; this layer only classifies.
type ThemeKey string

const (
	ThemeRain    ThemeKey = "rain"
	ThemeCloudy  ThemeKey = "cloudy"
	ThemeIcy     ThemeKey = "icy"
	ThemeCool    ThemeKey = "cool"
	ThemeFresh   ThemeKey = "fresh"
	ThemeSunset  ThemeKey = "sunset"
	ThemeHot     ThemeKey = "hot"
	ThemeVeryHot ThemeKey = "very-hot"
	ThemeExtreme ThemeKey = "extreme"
)

// Theme classifies the background for the given current temperature (°C) and
// weather code. Precipitation wins over cloud cover, and both win over the
// temperature bands: a thunderstorm at 40°C is still a rain theme.
func Theme(temp float64, weatherCode int) ThemeKey {
	if types.IsRainy(weatherCode) {
		return ThemeRain
	}
	if types.IsCloudy(weatherCode) {
		return ThemeCloudy
	}

	switch {
	case temp <= 0:
		return ThemeIcy
	case temp <= 10:
		return ThemeCool
	case temp <= 20:
		return ThemeFresh
	case temp <= 25:
		return ThemeSunset
	case temp <= 30:
		return ThemeHot
	case temp <= 35:
		return ThemeVeryHot
	default:
		return ThemeExtreme
	}
}
