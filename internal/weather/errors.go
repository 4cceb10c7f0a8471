package weather

import (
	"errors"
	"fmt"

	"github.com/i474232898/weather-cli/internal/store"
)

// ErrNoCities is returned when weather is requested from favorites but none are saved.
var ErrNoCities = errors.New("no cities saved, add one with -s <city>")

// NotFoundError means the geocoder had no match for City.
type NotFoundError struct {
	City string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("city not found: %s (%v)", e.City, e.Err)
	}
	return fmt.Sprintf("city not found: %s", e.City)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// TransportError covers network failures and non-2xx responses.
// StatusCode is zero when no response was received.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s request failed (%d): %v", e.Op, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s request failed (%d)", e.Op, e.StatusCode)
	default:
		return fmt.Sprintf("%s request failed: %v", e.Op, e.Err)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError means the provider answered but Field was missing or unreadable.
type MalformedResponseError struct {
	Field string
	Err   error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed provider response (%s): %v", e.Field, e.Err)
	}
	return fmt.Sprintf("malformed provider response: missing %s", e.Field)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// ValidationError rejects user input before any I/O happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Kind is the closed set of failure categories shown to the user.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindTransport
	KindMalformedResponse
	KindCorruptStore
	KindStoreWrite
	KindValidation
	KindNoCities
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindTransport:
		return "transport"
	case KindMalformedResponse:
		return "malformed response"
	case KindCorruptStore:
		return "corrupt store"
	case KindStoreWrite:
		return "store write"
	case KindValidation:
		return "validation"
	case KindNoCities:
		return "no cities"
	default:
		return "unknown"
	}
}

// KindOf classifies err. Anything outside the taxonomy is KindUnknown.
func KindOf(err error) Kind {
	var (
		notFound  *NotFoundError
		transport *TransportError
		malformed *MalformedResponseError
		invalid   *ValidationError
		corrupt   *store.CorruptStoreError
		write     *store.StoreWriteError
	)
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrNoCities):
		return KindNoCities
	case errors.As(err, &notFound):
		return KindNotFound
	case errors.As(err, &transport):
		return KindTransport
	case errors.As(err, &malformed):
		return KindMalformedResponse
	case errors.As(err, &invalid):
		return KindValidation
	case errors.As(err, &corrupt):
		return KindCorruptStore
	case errors.As(err, &write):
		return KindStoreWrite
	default:
		return KindUnknown
	}
}
