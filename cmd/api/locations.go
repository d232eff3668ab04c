package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skycast/internal/types"
)

// LocationInput is the JSON body for endpoints that act on a location.
type LocationInput struct {
	Name    string  `json:"name" binding:"required"`
	Country string  `json:"country"`
	Admin1  string  `json:"admin1"`
	Lat     float64 `json:"lat" binding:"required"`
	Lon     float64 `json:"lon" binding:"required"`
}

func (in LocationInput) toLocation() types.Location {
	return types.Location{
		Name:    in.Name,
		Country: in.Country,
		Admin1:  in.Admin1,
		Lat:     in.Lat,
		Lon:     in.Lon,
	}
}

// handleGetLocations returns the active location and the saved set.
func (app *App) handleGetLocations(c *gin.Context) {
	active := app.store.Active()
	c.JSON(http.StatusOK, gin.H{
		"active":        active,
		"activeIsSaved": app.store.IsSaved(active),
		"saved":         app.store.Saved(),
	})
}

// handleSelectLocation sets the active location. The saved set is untouched.
func (app *App) handleSelectLocation(c *gin.Context) {
	var input LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc := input.toLocation()
	if err := app.store.Select(loc); err != nil {
		app.logger.Error("failed to select location", "name", loc.Name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist active location"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"active": loc})
}

// handleToggleSave godoc
// @Summary Toggle a saved location
// @Description Flips coordinate-based membership of the given location in the saved set. Saving an already-saved coordinate removes it, even when the name differs.
// @Tags locations
// @Accept json
// @Produce json
// @Param location body LocationInput true "Location to toggle"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /api/locations/saved/toggle [post]
func (app *App) handleToggleSave(c *gin.Context) {
	var input LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc := input.toLocation()
	if err := app.store.ToggleSave(loc); err != nil {
		app.logger.Error("failed to toggle saved location", "name", loc.Name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist saved locations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"saved":   app.store.Saved(),
		"isSaved": app.store.IsSaved(loc),
	})
}

// RemoveSavedInput identifies a saved location by coordinate.
type RemoveSavedInput struct {
	Latitude  float64 `form:"latitude" binding:"required"`
	Longitude float64 `form:"longitude" binding:"required"`
}

// handleRemoveSaved deletes a saved location by coordinate. Removing an
// absent coordinate succeeds without effect.
func (app *App) handleRemoveSaved(c *gin.Context) {
	var input RemoveSavedInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc := types.Location{Lat: input.Latitude, Lon: input.Longitude}
	if err := app.store.Remove(loc); err != nil {
		app.logger.Error("failed to remove saved location", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist saved locations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": app.store.Saved()})
}

// handleGeolocate resolves the device position and selects it as the active
// location. Failures leave the prior active location untouched.
func (app *App) handleGeolocate(c *gin.Context) {
	loc, err := app.store.Geolocate(c.Request.Context(), app.geolocator, app.cfg.GeolocateTimeout())
	if err != nil {
		app.logger.Warn("geolocation failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "unable to determine current position"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"active": loc})
}
