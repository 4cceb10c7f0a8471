package weather

import "fmt"

// Location is a geocoded place. Country may be empty.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Label returns "Name, Country" or just the name when the country is unknown.
func (l Location) Label() string {
	if l.Country == "" {
		return l.Name
	}
	return l.Name + ", " + l.Country
}

// Key returns a canonical string key for the coordinates.
func (l Location) Key() string {
	return fmt.Sprintf("%.4f,%.4f", l.Latitude, l.Longitude)
}

// Reading is the current conditions for one city.
type Reading struct {
	Location

	TemperatureC  float64 `json:"temperatureC"`
	WindSpeed     float64 `json:"windSpeed"`
	WindDirection float64 `json:"windDirection"`
	WeatherCode   int     `json:"weatherCode"`

	// Time is the observation time exactly as the provider returned it.
	Time string `json:"time"`
}

// Condition returns a short description of the WMO weather code.
func (r Reading) Condition() string {
	return DescribeCode(r.WeatherCode)
}

// DescribeCode maps Open-Meteo (WMO) weather interpretation codes to text.
func DescribeCode(code int) string {
	switch {
	case code == 0:
		return "clear sky"
	case code >= 1 && code <= 2:
		return "partly cloudy"
	case code == 3:
		return "overcast"
	case code == 45 || code == 48:
		return "fog"
	case code >= 51 && code <= 57:
		return "drizzle"
	case (code >= 61 && code <= 67) || (code >= 80 && code <= 82):
		return "rain"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return "snow"
	case code >= 95 && code <= 99:
		return "thunderstorm"
	default:
		return "unknown"
	}
}
