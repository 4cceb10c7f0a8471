package cli

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/i474232898/weather-cli/internal/console"
	"github.com/i474232898/weather-cli/internal/store"
	"github.com/i474232898/weather-cli/internal/weather"
)

// Request is one parsed invocation. The Has* fields tell a flag given with
// an empty value apart from a flag that was not given.
type Request struct {
	Cities    []string
	HasCities bool

	Token    string
	HasToken bool

	Language    string
	HasLanguage bool
}

// App dispatches a Request to the store and the weather service.
type App struct {
	prefs    store.Store
	service  *weather.Service
	console  *console.Console
	validate *validator.Validate
	logger   *zap.Logger
}

func NewApp(prefs store.Store, service *weather.Service, out *console.Console, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		prefs:    prefs,
		service:  service,
		console:  out,
		validate: validator.New(),
		logger:   logger,
	}
}

// Run saves the requested settings, then reports either the given cities or
// the saved favorites. Every failure is printed; none stops the rest of the run.
func (a *App) Run(ctx context.Context, req Request) {
	if req.HasToken {
		a.saveSetting(store.KeyToken, "Token", req.Token)
	}
	if req.HasLanguage {
		a.saveSetting(store.KeyLanguage, "Language", req.Language)
	}

	if req.HasCities {
		a.reportCities(ctx, req.Cities)
		return
	}

	// Saving a token is a settings-only invocation.
	if req.HasToken && !req.HasLanguage {
		return
	}

	if err := a.service.ReportFavorites(ctx); err != nil {
		a.console.Error(err)
	}
}

func (a *App) saveSetting(key, label, value string) {
	value = strings.TrimSpace(value)
	if err := a.checkRequired(key, label, value); err != nil {
		a.console.Error(err)
		return
	}
	if err := a.prefs.Set(key, store.String(value)); err != nil {
		a.logger.Warn("cannot save preference", zap.String("key", key), zap.Error(err))
		a.console.Error(err)
		return
	}
	a.console.Info(label + " saved")
}

func (a *App) reportCities(ctx context.Context, cities []string) {
	valid := make([]string, 0, len(cities))
	for _, city := range cities {
		city = strings.TrimSpace(city)
		if err := a.checkRequired("city", "City name", city); err != nil {
			a.console.Error(err)
			continue
		}
		valid = append(valid, city)
	}
	if len(valid) == 0 {
		return
	}

	if _, err := a.service.UpdateFavorites(valid); err != nil {
		a.console.Error(err)
	}
	a.service.ResolveAndReport(ctx, valid)
}

// checkRequired rejects blank input before any I/O happens.
func (a *App) checkRequired(field, label, value string) error {
	if err := a.validate.Var(value, "required"); err != nil {
		return &weather.ValidationError{Field: field, Message: label + " cannot be blank"}
	}
	return nil
}
