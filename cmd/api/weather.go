package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"skycast/internal/forecast"
	"skycast/internal/types"
	"skycast/internal/viewmodel"
)

// GetWeatherInput defines the query parameters for the weather endpoints
type GetWeatherInput struct {
	Latitude  float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// WeatherResponse is the derived dashboard view plus the request lifecycle.
type WeatherResponse struct {
	viewmodel.View
	FetchedAt  time.Time `json:"fetchedAt"`
	IsLoading  bool      `json:"isLoading"`
	IsFetching bool      `json:"isFetching"`
	Error      string    `json:"error,omitempty"`
}

// handleGetWeather godoc
// @Summary Get the weather dashboard view
// @Description Returns display-ready weather for a coordinate: current conditions, the next-24-hour window, 7-day range bars, detail metrics, theme and optional air quality. Results are cached per coordinate and refreshed when older than the staleness window.
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(51.5074)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-0.1278)
// @Success 200 {object} WeatherResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	var input GetWeatherInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coords := types.NewCoords(input.Latitude, input.Longitude)
	snap := app.cache.Fetch(c.Request.Context(), coords)
	app.renderSnapshot(c, coords, snap)
}

// handleRefreshWeather forces a refetch regardless of freshness. Previously
// fetched data stays visible when the refresh fails.
func (app *App) handleRefreshWeather(c *gin.Context) {
	var input GetWeatherInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coords := types.NewCoords(input.Latitude, input.Longitude)
	snap := app.cache.Refetch(c.Request.Context(), coords)
	app.renderSnapshot(c, coords, snap)
}

func (app *App) renderSnapshot(c *gin.Context, coords types.Coords, snap forecast.Snapshot) {
	if snap.Payload == nil {
		// Nothing cached and the fetch failed: an explicit, retryable error.
		msg := "unable to load weather"
		if snap.Err != nil {
			msg = snap.Err.Error()
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": msg, "retryable": true})
		return
	}

	now, err := app.tz.LocalNow(coords.Latitude, coords.Longitude)
	if err != nil {
		app.logger.Warn("timezone lookup failed, using server clock",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		now = time.Now()
	}

	resp := WeatherResponse{
		View:       viewmodel.Build(snap.Payload, now),
		FetchedAt:  snap.FetchedAt,
		IsLoading:  snap.IsLoading,
		IsFetching: snap.IsFetching,
	}
	if snap.Err != nil {
		resp.Error = snap.Err.Error()
	}

	c.JSON(http.StatusOK, resp)
}
