package weather

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/i474232898/weather-cli/internal/common"
	"github.com/i474232898/weather-cli/internal/store"
)

// MaxReportedFavorites caps how many saved cities are reported when none are given.
const MaxReportedFavorites = 5

// Service resolves cities, fetches their weather one after another and keeps
// the saved favorites list current.
type Service struct {
	prefs    store.Store
	geocoder Geocoder
	provider Provider
	reporter Reporter
	logger   *zap.Logger
}

// NewService creates a new Service. A nil logger disables logging.
func NewService(prefs store.Store, geocoder Geocoder, provider Provider, reporter Reporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		prefs:    prefs,
		geocoder: geocoder,
		provider: provider,
		reporter: reporter,
		logger:   logger,
	}
}

// ResolveAndReport reports current weather for each city in order. A failing
// city is reported and skipped; it never stops the rest of the batch.
func (s *Service) ResolveAndReport(ctx context.Context, cities []string) {
	resolveOpts := ResolveOptions{Language: s.stringPref(store.KeyLanguage)}
	fetchOpts := FetchOptions{APIKey: s.stringPref(store.KeyToken)}

	s.logger.Debug("reporting weather",
		zap.Strings("cities", cities),
		zap.String("geocoder", s.geocoder.Name()),
		zap.String("provider", s.provider.Name()),
	)

	for _, city := range cities {
		reading, err := s.fetchCity(ctx, city, resolveOpts, fetchOpts)
		if err != nil {
			s.logger.Info("city failed", zap.String("city", city), zap.Stringer("kind", KindOf(err)), zap.Error(err))
			s.reporter.Failure(city, err)
			continue
		}
		s.reporter.Success(reading)
	}
}

func (s *Service) fetchCity(ctx context.Context, city string, resolveOpts ResolveOptions, fetchOpts FetchOptions) (Reading, error) {
	loc, err := s.geocoder.Resolve(ctx, city, resolveOpts)
	if err != nil {
		return Reading{}, err
	}
	s.logger.Debug("resolved city", zap.String("city", city), zap.String("location", loc.Label()), zap.String("coords", loc.Key()))

	reading, err := s.provider.Fetch(ctx, loc, fetchOpts)
	if err != nil {
		return Reading{}, err
	}
	return reading, nil
}

// Favorites returns the saved cities in insertion order.
func (s *Service) Favorites() ([]string, error) {
	v, ok, err := s.prefs.Get(store.KeyCities)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	if list, isList := v.AsList(); isList {
		return list, nil
	}
	// A single string is read as a one-city list.
	city, _ := v.AsString()
	if common.IsBlank(city) {
		return nil, nil
	}
	return []string{city}, nil
}

// UpdateFavorites appends the cities not saved yet and persists the list.
// Entries are never reordered or removed. It returns the merged list.
func (s *Service) UpdateFavorites(cities []string) ([]string, error) {
	current, err := s.Favorites()
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	trimmed := make([]string, 0, len(cities))
	for _, c := range cities {
		if c = strings.TrimSpace(c); c != "" {
			trimmed = append(trimmed, c)
		}
	}

	merged, added := common.AppendUnique(current, trimmed...)
	if err := s.prefs.Set(store.KeyCities, store.List(merged...)); err != nil {
		return nil, fmt.Errorf("failed to save favorites: %w", err)
	}
	s.logger.Debug("favorites updated", zap.Int("added", added), zap.Strings("favorites", merged))
	return merged, nil
}

// ReportFavorites reports the first MaxReportedFavorites saved cities.
// It returns ErrNoCities without any network call when nothing is saved.
func (s *Service) ReportFavorites(ctx context.Context) error {
	favorites, err := s.Favorites()
	if err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}
	if len(favorites) == 0 {
		return ErrNoCities
	}

	s.ResolveAndReport(ctx, common.Head(favorites, MaxReportedFavorites))
	return nil
}

// stringPref reads a string preference. Store errors are logged and treated as unset.
func (s *Service) stringPref(key string) string {
	v, ok, err := s.prefs.Get(key)
	if err != nil {
		s.logger.Warn("cannot read preference", zap.String("key", key), zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	str, _ := v.AsString()
	return strings.TrimSpace(str)
}
