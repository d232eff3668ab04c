package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	App     AppConfig
	Storage StorageConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	StaleAfterMinutes  int // forecast freshness window before a background refetch
	DebounceMillis     int // search debounce delay after the last keystroke
	GeolocateTimeoutS  int // best-effort device position timeout
	DefaultName        string
	DefaultCountry     string
	DefaultLatitude    float64
	DefaultLongitude   float64
	GeocodeRatePerSec  float64 // outbound geocoding rate limit
	GeocodeRateBurst   int
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	Path string // sqlite database file
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.skycast")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("app.staleAfterMinutes", 5)
	viper.SetDefault("app.debounceMillis", 300)
	viper.SetDefault("app.geolocateTimeoutS", 10)
	viper.SetDefault("app.defaultName", "London")
	viper.SetDefault("app.defaultCountry", "UK")
	viper.SetDefault("app.defaultLatitude", 51.5074)
	viper.SetDefault("app.defaultLongitude", -0.1278)
	viper.SetDefault("app.geocodeRatePerSec", 2.0)
	viper.SetDefault("app.geocodeRateBurst", 5)
	viper.SetDefault("storage.path", "skycast.db")

	// Read from environment variables
	viper.SetEnvPrefix("SKYCAST")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// StaleAfter returns the forecast freshness window as a duration.
func (c *Config) StaleAfter() time.Duration {
	return time.Duration(c.App.StaleAfterMinutes) * time.Minute
}

// Debounce returns the search debounce delay as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.App.DebounceMillis) * time.Millisecond
}

// GeolocateTimeout returns the device-position timeout as a duration.
func (c *Config) GeolocateTimeout() time.Duration {
	return time.Duration(c.App.GeolocateTimeoutS) * time.Second
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
