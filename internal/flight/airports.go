package flight

import (
	"context"
	"encoding/json"
	"skybook/pkg/duffelclient"
	"skybook/pkg/logger"
	"strings"
)

const (
	airportCacheKey     = "airports:all"
	minAirportQuery     = 2
	defaultAirportLimit = 20
	maxAirportLimit     = 100
)

// SearchAirports matches query against airport name, code, city and
// country. Queries shorter than two characters match nothing.
func (s *Service) SearchAirports(ctx context.Context, query string, limit int) ([]Airport, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < minAirportQuery {
		return []Airport{}, nil
	}
	if limit <= 0 {
		limit = defaultAirportLimit
	}
	if limit > maxAirportLimit {
		limit = maxAirportLimit
	}

	all, err := s.airports(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Airport, 0, limit)
	for _, a := range all {
		if !airportMatches(a, query) {
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func airportMatches(a Airport, query string) bool {
	for _, field := range []string{a.Name, a.IATACode, a.CityName, a.CountryCode} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// airports returns the full catalogue, loading it from the provider once
// per airport TTL.
func (s *Service) airports(ctx context.Context) ([]Airport, error) {
	if raw, err := s.cache.Get(ctx, airportCacheKey); err == nil && raw != "" {
		var cached []Airport
		jsonErr := json.Unmarshal([]byte(raw), &cached)
		if jsonErr == nil {
			return cached, nil
		}
		s.logger.Error("Failed to unmarshal cached airports", logger.Field{Key: "error", Value: jsonErr})
	}

	list, err := s.flightClient.ListAirports(ctx)
	if err != nil {
		appErr := providerError("failed to fetch airports", err)
		s.metrics.recordProviderError(ctx, "airports", appErr.Code)
		s.logger.Error("ListAirports", logger.Field{Key: "error", Value: err})
		return nil, appErr
	}

	airports := make([]Airport, 0, len(list))
	for _, a := range list {
		airports = append(airports, toAirport(a))
	}

	payload, err := json.Marshal(airports)
	if err == nil {
		err = s.cache.Set(ctx, airportCacheKey, string(payload), s.airportTTL)
	}
	if err != nil {
		s.logger.Error("Failed to cache airports", logger.Field{Key: "error", Value: err})
	}

	s.logger.Info("Loaded airport catalogue", logger.Field{Key: "count", Value: len(airports)})
	return airports, nil
}

func toAirport(a duffelclient.Airport) Airport {
	city := a.CityName
	if city == "" && a.City != nil {
		city = a.City.Name
	}
	return Airport{
		IATACode:    a.IATACode,
		Name:        a.Name,
		CityName:    city,
		CountryCode: a.IATACountryCode,
		TimeZone:    a.TimeZone,
	}
}
