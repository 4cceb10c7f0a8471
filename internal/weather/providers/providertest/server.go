// Package providertest runs a fake Open-Meteo upstream on a loopback port.
package providertest

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Place is a geocoding result served for a city name.
type Place struct {
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
}

// Current is the current-conditions block served for a place.
type Current struct {
	Time          string
	Temperature   float64
	WindSpeed     float64
	WindDirection float64
	WeatherCode   int
}

// Request records one call received by the fake.
type Request struct {
	Path  string
	Query map[string]string
}

// Server serves /v1/search and /v1/forecast like Open-Meteo does.
type Server struct {
	URL string

	app *fiber.App

	mu              sync.Mutex
	places          map[string]Place
	current         map[string]Current
	geocodingStatus int
	forecastStatus  int
	rawForecast     string
	requests        []Request
}

// New starts a fake upstream that is shut down when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		places:  make(map[string]Place),
		current: make(map[string]Current),
	}

	app := fiber.New(fiber.Config{
		AppName:               "openmeteo-fake",
		DisableStartupMessage: true,
		Immutable:             true,
	})
	app.Get("/v1/search", s.handleSearch)
	app.Get("/v1/forecast", s.handleForecast)
	s.app = app

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("providertest: listen: %v", err)
	}
	s.URL = "http://" + ln.Addr().String()

	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})
	return s
}

// GeocodingURL is the fake's geocoding endpoint.
func (s *Server) GeocodingURL() string { return s.URL + "/v1/search" }

// ForecastURL is the fake's forecast endpoint.
func (s *Server) ForecastURL() string { return s.URL + "/v1/forecast" }

// AddCity makes name resolvable and serves cur for its coordinates.
func (s *Server) AddCity(name string, p Place, cur Current) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places[normalize(name)] = p
	s.current[coordKey(p.Latitude, p.Longitude)] = cur
}

// FailGeocoding makes every geocoding call answer with status. Zero restores normal behaviour.
func (s *Server) FailGeocoding(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.geocodingStatus = status
}

// FailForecast makes every forecast call answer with status. Zero restores normal behaviour.
func (s *Server) FailForecast(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forecastStatus = status
}

// SetRawForecast makes every forecast call answer 200 with body verbatim.
func (s *Server) SetRawForecast(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawForecast = body
}

// Requests returns the calls received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestsTo returns the calls received on path.
func (s *Server) RequestsTo(path string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (s *Server) record(c *fiber.Ctx) {
	s.requests = append(s.requests, Request{
		Path:  c.Path(),
		Query: c.Queries(),
	})
}

func (s *Server) handleSearch(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(c)

	if s.geocodingStatus != 0 {
		return c.Status(s.geocodingStatus).JSON(fiber.Map{"error": true, "reason": "fake geocoding failure"})
	}

	p, ok := s.places[normalize(c.Query("name"))]
	if !ok {
		return c.JSON(fiber.Map{"generationtime_ms": 0.5})
	}
	return c.JSON(fiber.Map{
		"results": []fiber.Map{{
			"name":      p.Name,
			"country":   p.Country,
			"latitude":  p.Latitude,
			"longitude": p.Longitude,
		}},
	})
}

func (s *Server) handleForecast(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(c)

	if s.forecastStatus != 0 {
		return c.Status(s.forecastStatus).JSON(fiber.Map{"error": true, "reason": "fake forecast failure"})
	}
	if s.rawForecast != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(s.rawForecast)
	}

	lat, latErr := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("longitude"), 64)
	if latErr != nil || lonErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "reason": "invalid coordinates"})
	}

	cur, ok := s.current[coordKey(lat, lon)]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "reason": "no data for coordinates"})
	}
	return c.JSON(fiber.Map{
		"latitude":  lat,
		"longitude": lon,
		"timezone":  "GMT",
		"current": fiber.Map{
			"time":               cur.Time,
			"interval":           900,
			"temperature_2m":     cur.Temperature,
			"wind_speed_10m":     cur.WindSpeed,
			"wind_direction_10m": cur.WindDirection,
			"weather_code":       cur.WeatherCode,
		},
	})
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func coordKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}
