package main

import (
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	app.router.GET("/ping", app.handlePing)

	api := app.router.Group("/api")
	{
		api.GET("/weather", app.handleGetWeather)
		api.POST("/weather/refresh", app.handleRefreshWeather)
		api.GET("/search", app.handleSearch)

		api.GET("/locations", app.handleGetLocations)
		api.PUT("/locations/active", app.handleSelectLocation)
		api.POST("/locations/saved/toggle", app.handleToggleSave)
		api.DELETE("/locations/saved", app.handleRemoveSaved)
		api.POST("/locations/geolocate", app.handleGeolocate)
	}

	app.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
