package providers

import (
	"context"
	"strings"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-cli/internal/weather"
)

// GoogleGeocoder implements weather.Geocoder on top of the Google Geocoding API.
// The geocoder package keeps its key in a package variable, so the key is set
// before every lookup.
type GoogleGeocoder struct {
	name   string
	apiKey string
}

func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	return &GoogleGeocoder{
		name:   "google-geocoding",
		apiKey: apiKey,
	}
}

func (g *GoogleGeocoder) Name() string {
	return g.name
}

// Resolve geocodes city. Any lookup failure is reported as not found; the
// country comes from a reverse lookup and is left empty when that fails.
func (g *GoogleGeocoder) Resolve(ctx context.Context, city string, _ weather.ResolveOptions) (weather.Location, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return weather.Location{}, &weather.ValidationError{Field: "city", Message: "city name cannot be blank"}
	}
	if err := ctx.Err(); err != nil {
		return weather.Location{}, &weather.TransportError{Op: "geocoding", Err: err}
	}

	geocoder.ApiKey = g.apiKey
	found, err := geocoder.Geocoding(geocoder.Address{City: city})
	if err != nil {
		return weather.Location{}, &weather.NotFoundError{City: city, Err: err}
	}

	loc := weather.Location{
		Name:      city,
		Latitude:  found.Latitude,
		Longitude: found.Longitude,
	}
	if addresses, err := geocoder.GeocodingReverse(found); err == nil && len(addresses) > 0 {
		loc.Country = addresses[0].Country
		if addresses[0].City != "" {
			loc.Name = addresses[0].City
		}
	}
	return loc, nil
}
