package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/i474232898/weather-cli/internal/weather/providers"
)

// unsetAll clears every variable Load reads. Each test runs in a fresh temp
// directory so no .env file is picked up.
func unsetAll(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range []string{
		"WEATHER_DATA_FILE",
		"WEATHER_GEOCODING_URL",
		"WEATHER_FORECAST_URL",
		"WEATHER_HTTP_TIMEOUT",
		"WEATHER_GOOGLE_GEOCODING_API_KEY",
		"WEATHER_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetAll(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(home, "weather-data.json"); cfg.DataFile != want {
		t.Errorf("DataFile = %q, want %q", cfg.DataFile, want)
	}
	if cfg.GeocodingURL != providers.OpenMeteoGeocodingURL {
		t.Errorf("GeocodingURL = %q", cfg.GeocodingURL)
	}
	if cfg.ForecastURL != providers.OpenMeteoForecastURL {
		t.Errorf("ForecastURL = %q", cfg.ForecastURL)
	}
	if cfg.HTTPTimeout != 0 {
		t.Errorf("HTTPTimeout = %v, want 0", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != zapcore.WarnLevel {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
	}
	if cfg.GoogleGeocodingAPIKey != "" {
		t.Errorf("GoogleGeocodingAPIKey = %q, want empty", cfg.GoogleGeocodingAPIKey)
	}
}

func TestLoadOverrides(t *testing.T) {
	unsetAll(t)
	t.Setenv("WEATHER_DATA_FILE", "/tmp/prefs.json")
	t.Setenv("WEATHER_GEOCODING_URL", "http://127.0.0.1:9/search")
	t.Setenv("WEATHER_FORECAST_URL", "http://127.0.0.1:9/forecast")
	t.Setenv("WEATHER_HTTP_TIMEOUT", "7s")
	t.Setenv("WEATHER_GOOGLE_GEOCODING_API_KEY", "gkey")
	t.Setenv("WEATHER_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataFile != "/tmp/prefs.json" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if cfg.GeocodingURL != "http://127.0.0.1:9/search" || cfg.ForecastURL != "http://127.0.0.1:9/forecast" {
		t.Errorf("urls = %q, %q", cfg.GeocodingURL, cfg.ForecastURL)
	}
	if cfg.HTTPTimeout != 7*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.GoogleGeocodingAPIKey != "gkey" {
		t.Errorf("GoogleGeocodingAPIKey = %q", cfg.GoogleGeocodingAPIKey)
	}
	if cfg.LogLevel != zapcore.DebugLevel {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := map[string]string{
		"WEATHER_HTTP_TIMEOUT": "soon",
		"WEATHER_LOG_LEVEL":    "loud",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			unsetAll(t)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}

	t.Run("negative timeout", func(t *testing.T) {
		unsetAll(t)
		t.Setenv("WEATHER_HTTP_TIMEOUT", "-1s")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for negative timeout")
		}
	})
}
