package main

import (
	"fmt"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"skycast/internal/config"
	"skycast/internal/forecast"
	"skycast/internal/locations"
	"skycast/internal/providers/geocoding"
	"skycast/internal/providers/ipapi"
	"skycast/internal/search"
	"skycast/internal/storage"
	"skycast/internal/timezone"
	"skycast/internal/types"
)

// App encapsulates application dependencies
type App struct {
	router     *gin.Engine
	logger     *slog.Logger
	cfg        *config.Config
	store      *locations.Store
	cache      *forecast.Cache
	search     *search.Service
	tz         timezone.Service
	geolocator locations.Geolocator
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	gin.SetMode(cfg.Server.GinMode)

	kv, err := storage.NewSQLiteKV(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	fallback := types.Location{
		Name:    cfg.App.DefaultName,
		Country: cfg.App.DefaultCountry,
		Lat:     cfg.App.DefaultLatitude,
		Lon:     cfg.App.DefaultLongitude,
	}
	store := locations.NewStore(kv, fallback, logger)
	if err := store.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize location store: %w", err)
	}

	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	forecastSvc := forecast.NewService(logger)
	cache := forecast.NewCache(forecastSvc, cfg.StaleAfter(), logger)

	geocodeClient := geocoding.NewClient(cfg.App.GeocodeRatePerSec, cfg.App.GeocodeRateBurst)
	searchSvc := search.NewService(geocodeClient, cfg.Debounce(), logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	app := &App{
		router:     router,
		logger:     logger,
		cfg:        cfg,
		store:      store,
		cache:      cache,
		search:     searchSvc,
		tz:         tzSvc,
		geolocator: ipapi.NewClient(),
	}

	logger.Info("application initialized")

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
