package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/i474232898/weather-cli/internal/cli"
	"github.com/i474232898/weather-cli/internal/config"
	"github.com/i474232898/weather-cli/internal/console"
	"github.com/i474232898/weather-cli/internal/store"
	"github.com/i474232898/weather-cli/internal/weather"
	"github.com/i474232898/weather-cli/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	logger, err := logCfg.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Shared HTTP client for outbound provider calls.
	httpCfg := providers.HTTPClientConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		Breaker: providers.DefaultBreaker,
	}

	// Open-Meteo geocoding needs no key; Google is used when one is configured.
	var geocoder weather.Geocoder = providers.NewOpenMeteoGeocoder(httpCfg, cfg.GeocodingURL)
	if cfg.GoogleGeocodingAPIKey != "" {
		geocoder = providers.NewGoogleGeocoder(cfg.GoogleGeocodingAPIKey)
	}
	provider := providers.NewOpenMeteoProvider(httpCfg, cfg.ForecastURL)

	prefs := store.NewFileStore(cfg.DataFile)
	out := console.New(os.Stdout)

	service := weather.NewService(prefs, geocoder, provider, out, logger)
	app := cli.NewApp(prefs, service, out, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting",
		zap.String("dataFile", prefs.Path()),
		zap.String("geocoder", geocoder.Name()),
		zap.String("provider", provider.Name()),
	)

	if err := cli.NewRootCommand(app, out).ExecuteContext(ctx); err != nil {
		out.Error(err)
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}
