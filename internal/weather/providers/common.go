package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-cli/internal/weather"
)

// DefaultUserAgent identifies the CLI to upstream APIs.
const DefaultUserAgent = "weather-cli/1.0"

// BreakerConfig controls when an upstream is considered down for the rest of a batch.
type BreakerConfig struct {
	// ConsecutiveFailures that open the breaker.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

// DefaultBreaker opens after three consecutive network or 5xx failures.
var DefaultBreaker = BreakerConfig{
	ConsecutiveFailures: 3,
	OpenTimeout:         30 * time.Second,
}

// HTTPClientConfig bundles the HTTP client and request settings.
type HTTPClientConfig struct {
	Client    *http.Client
	UserAgent string
	Breaker   BreakerConfig
}

var (
	errNoHTTPClient = errors.New("http client not configured")
	errCircuitOpen  = errors.New("circuit breaker open")
)

func newCircuitBreaker(name string, cfg BreakerConfig) *gobreaker.CircuitBreaker {
	threshold := cfg.ConsecutiveFailures
	if threshold == 0 {
		threshold = DefaultBreaker.ConsecutiveFailures
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	})
}

// getJSON performs a single GET (no retries) through the circuit breaker and
// decodes the JSON body into out. Network failures and 5xx responses count
// against the breaker; other non-2xx responses fail only this request.
func getJSON(
	ctx context.Context,
	cfg HTTPClientConfig,
	cb *gobreaker.CircuitBreaker,
	op string,
	endpoint string,
	params url.Values,
	out interface{},
) error {
	if cfg.Client == nil {
		return &weather.TransportError{Op: op, Err: errNoHTTPClient}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return &weather.TransportError{Op: op, Err: err}
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "application/json")

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := cfg.Client.Do(req)
		if execErr != nil {
			return nil, &weather.TransportError{Op: op, Err: execErr}
		}
		if resp.StatusCode >= 500 {
			drain(resp)
			return nil, statusError(op, resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return &weather.TransportError{Op: op, Err: fmt.Errorf("%w: %v", errCircuitOpen, err)}
		}
		return err
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return &weather.TransportError{Op: op, Err: fmt.Errorf("unexpected result type from circuit breaker")}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		drain(resp)
		return statusError(op, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &weather.MalformedResponseError{Field: op + " body", Err: err}
	}
	return nil
}

func statusError(op string, code int) error {
	return &weather.TransportError{Op: op, StatusCode: code, Err: errors.New(http.StatusText(code))}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	resp.Body.Close()
}
