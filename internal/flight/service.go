package flight

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"skybook/internal/offer"
	"skybook/pkg/cache"
	"skybook/pkg/duffelclient"
	"skybook/pkg/idgen"
	"skybook/pkg/logger"
	"time"
)

// FlightClient is the part of the provider API the service depends on.
type FlightClient interface {
	CreateOfferRequest(ctx context.Context, in duffelclient.OfferRequestInput) (*duffelclient.OfferRequest, error)
	GetOffer(ctx context.Context, id string) (*offer.RawOffer, error)
	ListAirports(ctx context.Context) ([]duffelclient.Airport, error)
	CreateOrder(ctx context.Context, in duffelclient.OrderInput) (*duffelclient.Order, error)
}

type Service struct {
	flightClient FlightClient
	cache        cache.Cache
	ids          idgen.Generator
	ttl          time.Duration
	airportTTL   time.Duration
	logger       logger.Client
	metrics      metrics
}

type Options struct {
	CacheTTLMinutes        int
	AirportCacheTTLMinutes int
}

func NewService(flightClient FlightClient, cache cache.Cache, ids idgen.Generator, opts Options, logger logger.Client) *Service {
	return &Service{
		flightClient: flightClient,
		cache:        cache,
		ids:          ids,
		ttl:          time.Duration(opts.CacheTTLMinutes) * time.Minute,
		airportTTL:   time.Duration(opts.AirportCacheTTLMinutes) * time.Minute,
		logger:       logger,
		metrics:      newMetrics(),
	}
}

// generateCacheKey creates a deterministic key from search parameters
func (s *Service) generateCacheKey(req SearchRequest) string {
	key := fmt.Sprintf("flight:%s:%s:%s:%s:%d:%s",
		req.Origin,
		req.Destination,
		req.DepartureDate,
		req.ReturnDate,
		req.Passengers,
		req.CabinClass,
	)

	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("flight:search:%x", hash[:16])
}

// SearchFlights fetches offers for req, serving from cache when possible,
// and returns them unfiltered, cheapest first.
func (s *Service) SearchFlights(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}
	cacheKey := s.generateCacheKey(req)

	entry, hit := s.cached(ctx, cacheKey)
	if !hit {
		s.logger.Info("Cache miss for search", logger.Field{Key: "cache_key", Value: cacheKey})

		fresh, err := s.fetch(ctx, req, "search")
		if err != nil {
			return nil, err
		}
		entry = fresh
		s.store(ctx, cacheKey, entry)
	}

	result := offer.NewView(offer.SortByPrice).SetNormalized(entry.Offers)
	s.metrics.recordSearch(ctx, "search", hit, result.Shown())

	return buildResponse(entry, result, cacheKey, hit), nil
}

// FilterFlights re-runs the pipeline with the requested filters and sort.
// On a cache miss the search is refreshed first; the fresh results are
// cached without holding up the response.
func (s *Service) FilterFlights(ctx context.Context, req FilterRequest) (*SearchResponse, error) {
	if err := req.SearchRequest.normalize(); err != nil {
		return nil, err
	}
	sortKey, ok := offer.ParseSortKey(req.Sort)
	if req.Sort != "" && !ok {
		s.logger.Warn("Invalid sort criteria", logger.Field{Key: "sort_by", Value: req.Sort})
	}
	cacheKey := s.generateCacheKey(req.SearchRequest)

	entry, hit := s.cached(ctx, cacheKey)
	if hit {
		s.logger.Info("Cache hit for filter", logger.Field{Key: "cache_key", Value: cacheKey})
	} else {
		s.logger.Info("Cache miss for filter - auto-refreshing",
			logger.Field{Key: "cache_key", Value: cacheKey},
			logger.Field{Key: "route", Value: req.Origin + "->" + req.Destination},
		)

		fresh, err := s.fetch(ctx, req.SearchRequest, "filter")
		if err != nil {
			return nil, err
		}
		entry = fresh

		go s.store(context.Background(), cacheKey, entry)
	}

	view := offer.NewView(sortKey)
	view.SetNormalized(entry.Offers)
	result := view.SetFilter(req.Filters.state(view.Result().Options))
	s.metrics.recordSearch(ctx, "filter", hit, result.Shown())

	return buildResponse(entry, result, cacheKey, hit), nil
}

// InvalidateCache manually invalidates cache for a specific route
func (s *Service) InvalidateCache(ctx context.Context, req SearchRequest) error {
	if err := req.normalize(); err != nil {
		return err
	}
	cacheKey := s.generateCacheKey(req)
	s.logger.Info("Invalidating cache", logger.Field{Key: "cache_key", Value: cacheKey})
	return s.cache.Del(ctx, cacheKey)
}

// GetOffer returns a single offer straight from the provider.
func (s *Service) GetOffer(ctx context.Context, id string) (*OfferSummary, error) {
	if id == "" {
		return nil, validationError("offer id is required")
	}

	raw, err := s.flightClient.GetOffer(ctx, id)
	if err != nil {
		appErr := providerError("failed to fetch offer", err)
		s.metrics.recordProviderError(ctx, "offer", appErr.Code)
		s.logger.Error("GetOffer", logger.Field{Key: "offer_id", Value: id}, logger.Field{Key: "error", Value: err})
		return nil, appErr
	}

	summary := summarizeOffer(offer.Normalize(*raw))
	return &summary, nil
}

func (s *Service) fetch(ctx context.Context, req SearchRequest, op string) (cachedSearch, error) {
	startTime := time.Now()
	resp, err := s.flightClient.CreateOfferRequest(ctx, req.offerRequest())
	if err != nil {
		appErr := providerError("failed to search flights", err)
		s.metrics.recordProviderError(ctx, op, appErr.Code)
		s.logger.Error("Provider search failed",
			logger.Field{Key: "op", Value: op},
			logger.Field{Key: "error", Value: err},
		)
		return cachedSearch{}, appErr
	}
	elapsed := time.Since(startTime).Milliseconds()
	s.metrics.recordFetch(ctx, elapsed)

	// offers priced for the whole party carry the requested head count
	for i := range resp.Offers {
		if resp.Offers[i].PassengerCount == 0 {
			resp.Offers[i].PassengerCount = req.Passengers
		}
	}

	return cachedSearch{
		SearchID:     s.ids.GenerateString(),
		SearchTimeMs: elapsed,
		Offers:       offer.NormalizeAll(resp.Offers),
	}, nil
}

func (s *Service) cached(ctx context.Context, key string) (cachedSearch, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("Cache read failed", logger.Field{Key: "cache_key", Value: key}, logger.Field{Key: "error", Value: err})
		}
		return cachedSearch{}, false
	}
	if raw == "" {
		return cachedSearch{}, false
	}

	var entry cachedSearch
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		s.logger.Error("Failed to unmarshal cached data", logger.Field{Key: "error", Value: err})
		return cachedSearch{}, false
	}
	return entry, true
}

func (s *Service) store(ctx context.Context, key string, entry cachedSearch) {
	payload, err := json.Marshal(entry)
	if err != nil {
		s.logger.Error("Failed to marshal response for caching",
			logger.Field{Key: "error", Value: err},
			logger.Field{Key: "cache_key", Value: key},
		)
		return
	}

	if err := s.cache.Set(ctx, key, string(payload), s.ttl); err != nil {
		s.logger.Error("Failed to cache search results",
			logger.Field{Key: "error", Value: err},
			logger.Field{Key: "cache_key", Value: key},
		)
		return
	}
	s.logger.Debug("Cached search results",
		logger.Field{Key: "cache_key", Value: key},
		logger.Field{Key: "ttl_minutes", Value: s.ttl.Minutes()},
	)
}

func buildResponse(entry cachedSearch, result offer.Result, cacheKey string, hit bool) *SearchResponse {
	return &SearchResponse{
		SearchID: entry.SearchID,
		Metadata: Metadata{
			TotalResults: result.Total(),
			ShownResults: result.Shown(),
			SearchTimeMs: entry.SearchTimeMs,
			CacheKey:     cacheKey,
			CacheHit:     hit,
		},
		Options: result.Options,
		State:   result.State,
		Sort:    result.SortKey,
		Offers:  summarize(result.Displayed),
	}
}
