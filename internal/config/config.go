package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/i474232898/weather-cli/internal/store"
	"github.com/i474232898/weather-cli/internal/weather/providers"
)

type AppConfig struct {
	// DataFile is the preference document location.
	DataFile string

	GeocodingURL string
	ForecastURL  string

	// HTTPTimeout bounds each upstream request (0 = no client timeout).
	HTTPTimeout time.Duration

	// GoogleGeocodingAPIKey switches city resolution to Google when set.
	GoogleGeocodingAPIKey string

	LogLevel zapcore.Level
}

// Load reads configuration from .env and the environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("invalid .env file: %w", err)
	}
	cfg := &AppConfig{}

	cfg.DataFile = os.Getenv("WEATHER_DATA_FILE")
	if cfg.DataFile == "" {
		path, err := store.DefaultPath()
		if err != nil {
			// No home directory: keep the file next to the working directory.
			path = store.DefaultFileName
		}
		cfg.DataFile = path
	}

	cfg.GeocodingURL = getenvDefault("WEATHER_GEOCODING_URL", providers.OpenMeteoGeocodingURL)
	cfg.ForecastURL = getenvDefault("WEATHER_FORECAST_URL", providers.OpenMeteoForecastURL)

	timeout, err := time.ParseDuration(getenvDefault("WEATHER_HTTP_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_HTTP_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("invalid WEATHER_HTTP_TIMEOUT: must not be negative")
	}
	cfg.HTTPTimeout = timeout

	cfg.GoogleGeocodingAPIKey = os.Getenv("WEATHER_GOOGLE_GEOCODING_API_KEY")

	level, err := zapcore.ParseLevel(getenvDefault("WEATHER_LOG_LEVEL", "warn"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
