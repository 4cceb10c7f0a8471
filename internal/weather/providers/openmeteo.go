package providers

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-cli/internal/weather"
)

const (
	OpenMeteoGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	OpenMeteoForecastURL  = "https://api.open-meteo.com/v1/forecast"

	defaultLanguage = "en"
	currentFields   = "temperature_2m,wind_speed_10m,wind_direction_10m,weather_code"
)

// OpenMeteoGeocoder implements weather.Geocoder for the Open-Meteo geocoding API.
type OpenMeteoGeocoder struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoGeocoder creates a geocoder. An empty baseURL uses the public endpoint.
func NewOpenMeteoGeocoder(cfg HTTPClientConfig, baseURL string) *OpenMeteoGeocoder {
	if baseURL == "" {
		baseURL = OpenMeteoGeocodingURL
	}
	return &OpenMeteoGeocoder{
		name:    "openmeteo-geocoding",
		baseURL: baseURL,
		httpCfg: cfg,
		circuit: newCircuitBreaker("openmeteo-geocoding", cfg.Breaker),
	}
}

func (g *OpenMeteoGeocoder) Name() string {
	return g.name
}

// Resolve returns the top match for city.
func (g *OpenMeteoGeocoder) Resolve(ctx context.Context, city string, opts weather.ResolveOptions) (weather.Location, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return weather.Location{}, &weather.ValidationError{Field: "city", Message: "city name cannot be blank"}
	}

	lang := opts.Language
	if lang == "" {
		lang = defaultLanguage
	}

	values := url.Values{}
	values.Set("name", city)
	values.Set("count", "1")
	values.Set("format", "json")
	values.Set("language", lang)

	var payload struct {
		Results []struct {
			Name      string   `json:"name"`
			Country   string   `json:"country"`
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := getJSON(ctx, g.httpCfg, g.circuit, "geocoding", g.baseURL, values, &payload); err != nil {
		return weather.Location{}, err
	}

	if len(payload.Results) == 0 {
		return weather.Location{}, &weather.NotFoundError{City: city}
	}
	top := payload.Results[0]
	if top.Latitude == nil {
		return weather.Location{}, &weather.MalformedResponseError{Field: "results.latitude"}
	}
	if top.Longitude == nil {
		return weather.Location{}, &weather.MalformedResponseError{Field: "results.longitude"}
	}

	name := top.Name
	if name == "" {
		name = city
	}
	return weather.Location{
		Name:      name,
		Country:   top.Country,
		Latitude:  *top.Latitude,
		Longitude: *top.Longitude,
	}, nil
}

// OpenMeteoProvider implements weather.Provider for the Open-Meteo forecast API.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoProvider creates a provider. An empty baseURL uses the public endpoint.
func NewOpenMeteoProvider(cfg HTTPClientConfig, baseURL string) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = OpenMeteoForecastURL
	}
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		httpCfg: cfg,
		circuit: newCircuitBreaker("openmeteo", cfg.Breaker),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// Fetch returns current conditions at loc. The observation time is passed
// through exactly as Open-Meteo formats it.
func (p *OpenMeteoProvider) Fetch(ctx context.Context, loc weather.Location, opts weather.FetchOptions) (weather.Reading, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	values.Set("current", currentFields)
	values.Set("timezone", "auto")
	if opts.APIKey != "" {
		values.Set("apikey", opts.APIKey)
	}

	var payload struct {
		Current *struct {
			Time          *string  `json:"time"`
			Temperature   *float64 `json:"temperature_2m"`
			WindSpeed     *float64 `json:"wind_speed_10m"`
			WindDirection *float64 `json:"wind_direction_10m"`
			WeatherCode   *int     `json:"weather_code"`
		} `json:"current"`
	}
	if err := getJSON(ctx, p.httpCfg, p.circuit, "forecast", p.baseURL, values, &payload); err != nil {
		return weather.Reading{}, err
	}

	cur := payload.Current
	switch {
	case cur == nil:
		return weather.Reading{}, &weather.MalformedResponseError{Field: "current"}
	case cur.Time == nil:
		return weather.Reading{}, &weather.MalformedResponseError{Field: "current.time"}
	case cur.Temperature == nil:
		return weather.Reading{}, &weather.MalformedResponseError{Field: "current.temperature_2m"}
	case cur.WindSpeed == nil:
		return weather.Reading{}, &weather.MalformedResponseError{Field: "current.wind_speed_10m"}
	case cur.WindDirection == nil:
		return weather.Reading{}, &weather.MalformedResponseError{Field: "current.wind_direction_10m"}
	case cur.WeatherCode == nil:
		return weather.Reading{}, &weather.MalformedResponseError{Field: "current.weather_code"}
	}

	return weather.Reading{
		Location:      loc,
		TemperatureC:  *cur.Temperature,
		WindSpeed:     *cur.WindSpeed,
		WindDirection: *cur.WindDirection,
		WeatherCode:   *cur.WeatherCode,
		Time:          *cur.Time,
	}, nil
}
