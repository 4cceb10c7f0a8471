package weather

import (
	"context"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/i474232898/weather-cli/internal/weather Geocoder,Provider,Reporter

// ResolveOptions tunes a geocoding lookup.
type ResolveOptions struct {
	// Language of the returned place names, e.g. "en" or "de".
	Language string
}

// FetchOptions tunes a current-conditions lookup.
type FetchOptions struct {
	// APIKey is the saved token, passed to providers that accept one.
	APIKey string
}

// Geocoder resolves a free-text city name to its best-matching location.
// A lookup without any match returns *NotFoundError.
type Geocoder interface {
	Name() string
	Resolve(ctx context.Context, city string, opts ResolveOptions) (Location, error)
}

// Provider abstracts a current-weather data source (e.g. Open-Meteo).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, loc Location, opts FetchOptions) (Reading, error)
}

// Reporter receives exactly one outcome per requested city, in request order.
type Reporter interface {
	Success(r Reading)
	Failure(city string, err error)
}
