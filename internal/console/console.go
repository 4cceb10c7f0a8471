// Package console prints user-facing results. Colours are applied only when
// the writer is a terminal.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/i474232898/weather-cli/internal/weather"
)

const helpText = `No params          shows weather for up to 5 saved cities
-s <city> [city..] shows weather for the cities and saves them
-l <language>      sets the language used to look cities up
-t <token>         saves the API token
-h                 shows help`

// Console implements weather.Reporter and prints CLI messages.
type Console struct {
	mu  sync.Mutex
	out io.Writer

	success lipgloss.Style
	failure lipgloss.Style
	heading lipgloss.Style
}

func New(out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		out:     out,
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
		heading: r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// Success prints the report for one city.
func (c *Console) Success(r weather.Reading) {
	c.print(c.success,
		r.Label(),
		fmt.Sprintf("  Temperature: %.1f°C", r.TemperatureC),
		fmt.Sprintf("  Wind: %.1f km/h from %.0f°", r.WindSpeed, r.WindDirection),
		fmt.Sprintf("  Conditions: %s (code %d)", r.Condition(), r.WeatherCode),
		fmt.Sprintf("  Local Time: %s", r.Time),
	)
}

// Failure prints why city could not be reported.
func (c *Console) Failure(city string, err error) {
	msg := Message(err)
	if weather.KindOf(err) != weather.KindNotFound {
		msg = city + ": " + msg
	}
	c.print(c.failure, msg)
}

// Error prints an error that is not tied to a city.
func (c *Console) Error(err error) {
	c.print(c.failure, Message(err))
}

// Info prints a confirmation such as "Token saved".
func (c *Console) Info(msg string) {
	c.print(c.success, msg)
}

func (c *Console) Help() {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, c.heading.Render("Help"))
	fmt.Fprintln(c.out, helpText)
}

// Message is the user-facing text for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if weather.KindOf(err) == weather.KindUnknown {
		return "unexpected error: " + err.Error()
	}
	return err.Error()
}

// print renders line by line so multi-line output is never padded.
func (c *Console) print(style lipgloss.Style, lines ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(style.Render(line))
		b.WriteByte('\n')
	}
	_, _ = io.WriteString(c.out, b.String())
}
