package flight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"skybook/internal/offer"
	"skybook/pkg/cache"
	"skybook/pkg/duffelclient"
	"skybook/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func place(code string) *offer.Place { return &offer.Place{IATACode: code} }

// rawOffers returns three LHR-JFK offers whose segments use different
// provider field names.
func rawOffers() []offer.RawOffer {
	return []offer.RawOffer{
		{
			ID: "off_ba", TotalAmount: "420.00", TotalCurrency: "GBP",
			Slices: []offer.RawSlice{{ID: "sl_ba", Segments: []offer.RawSegment{{
				ID: "seg_ba", DepartingAt: "2026-11-20T09:00:00", ArrivingAt: "2026-11-20T12:00:00",
				MarketingCarrier: &offer.Carrier{Name: "British Airways", IATACode: "BA"},
				FlightNumber:     "117", Origin: place("LHR"), Destination: place("JFK"),
			}}}},
		},
		{
			ID: "off_vs", TotalAmount: "180.00", TotalCurrency: "GBP",
			Slices: []offer.RawSlice{{ID: "sl_vs", Segments: []offer.RawSegment{
				{
					ID: "seg_vs1", DepartureDatetime: "2026-11-20T07:00:00", ArrivalDatetime: "2026-11-20T09:00:00",
					Carrier: &offer.Carrier{Name: "Virgin Atlantic", IATACode: "VS"},
					Origin:  place("LHR"), Destination: place("DUB"),
				},
				{
					ID: "seg_vs2", DepartureDatetime: "2026-11-20T10:00:00", ArrivalDatetime: "2026-11-20T17:00:00",
					Carrier: &offer.Carrier{Name: "Virgin Atlantic", IATACode: "VS"},
					Origin:  place("DUB"), Destination: place("JFK"),
				},
			}}},
		},
		{
			ID: "off_aa", TotalAmount: "250.00", TotalCurrency: "GBP",
			Slices: []offer.RawSlice{{ID: "sl_aa", Segments: []offer.RawSegment{{
				ID: "seg_aa", DepartureTime: "2026-11-20T10:00:00", ArrivalTime: "2026-11-20T18:00:00",
				Airline: &offer.Carrier{Name: "American Airlines", IATACode: "AA"},
				Origin:  place("LHR"), Destination: place("JFK"),
			}}}},
		},
	}
}

func oneWay() SearchRequest {
	return SearchRequest{Origin: "lhr", Destination: "JFK", DepartureDate: "2026-11-20", Passengers: 1}
}

func newTestService(client FlightClient, c cache.Cache) *Service {
	return NewService(client, c, &sequenceIDs{}, Options{CacheTTLMinutes: 15, AirportCacheTTLMinutes: 60}, logger.Nop{})
}

func keyFor(t *testing.T, svc *Service, req SearchRequest) string {
	t.Helper()
	require.NoError(t, req.normalize())
	return svc.generateCacheKey(req)
}

func offerIDs(offers []OfferSummary) []string {
	out := make([]string, 0, len(offers))
	for _, o := range offers {
		out = append(out, o.ID)
	}
	return out
}

func TestSearchFlights(t *testing.T) {
	t.Run("cache miss queries provider and caches", func(t *testing.T) {
		client := new(MockFlightClient)
		mockCache := new(MockCache)
		svc := newTestService(client, mockCache)
		key := keyFor(t, svc, oneWay())

		mockCache.On("Get", mock.Anything, key).Return("", cache.ErrMiss)
		mockCache.On("Set", mock.Anything, key, mock.AnythingOfType("string"), 15*time.Minute).Return(nil)
		client.On("CreateOfferRequest", mock.Anything, duffelclient.OfferRequestInput{
			Slices:     []duffelclient.SliceRequest{{Origin: "LHR", Destination: "JFK", DepartureDate: "2026-11-20"}},
			Passengers: duffelclient.AdultPassengers(1),
			CabinClass: "economy",
		}).Return(&duffelclient.OfferRequest{ID: "orq_1", Offers: rawOffers()}, nil)

		resp, err := svc.SearchFlights(context.Background(), oneWay())

		require.NoError(t, err)
		assert.Equal(t, "id-1", resp.SearchID)
		assert.False(t, resp.Metadata.CacheHit)
		assert.Equal(t, key, resp.Metadata.CacheKey)
		assert.Equal(t, 3, resp.Metadata.TotalResults)
		assert.Equal(t, 3, resp.Metadata.ShownResults)
		assert.Equal(t, offer.SortByPrice, resp.Sort)
		assert.Equal(t, []string{"off_vs", "off_aa", "off_ba"}, offerIDs(resp.Offers))
		assert.Equal(t, offer.PriceRange{Min: 180, Max: 420}, resp.Options.PriceRange)
		assert.Equal(t, []string{"American Airlines", "British Airways", "Virgin Atlantic"}, resp.Options.Airlines)
		assert.Equal(t, []int{0, 1}, resp.Options.StopCounts)
		assert.Equal(t, resp.Options.DefaultState(), resp.State)

		vs := resp.Offers[0]
		assert.Equal(t, "GBP 180.00", vs.Price)
		require.Len(t, vs.Journeys, 1)
		assert.Equal(t, JourneySummary{
			Origin:        "LHR",
			Destination:   "JFK",
			DepartureDate: "Fri, 20 Nov",
			DepartureTime: "07:00",
			ArrivalTime:   "17:00",
			Duration:      "10h",
			Stops:         1,
			Airlines:      []string{"Virgin Atlantic"},
		}, vs.Journeys[0])

		client.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache hit skips provider", func(t *testing.T) {
		client := new(MockFlightClient)
		mockCache := new(MockCache)
		svc := newTestService(client, mockCache)
		key := keyFor(t, svc, oneWay())

		entry, err := json.Marshal(cachedSearch{SearchID: "cached-1", SearchTimeMs: 42, Offers: offer.NormalizeAll(rawOffers())})
		require.NoError(t, err)
		mockCache.On("Get", mock.Anything, key).Return(string(entry), nil)

		resp, err := svc.SearchFlights(context.Background(), oneWay())

		require.NoError(t, err)
		assert.True(t, resp.Metadata.CacheHit)
		assert.Equal(t, "cached-1", resp.SearchID)
		assert.Equal(t, int64(42), resp.Metadata.SearchTimeMs)
		assert.Equal(t, []string{"off_vs", "off_aa", "off_ba"}, offerIDs(resp.Offers))
		client.AssertNotCalled(t, "CreateOfferRequest", mock.Anything, mock.Anything)
	})

	t.Run("round trip adds reversed slice", func(t *testing.T) {
		client := new(MockFlightClient)
		svc := newTestService(client, newMemoryCache())
		req := oneWay()
		req.ReturnDate = "2026-11-27"
		req.Passengers = 2
		req.CabinClass = "Business"

		client.On("CreateOfferRequest", mock.Anything, mock.MatchedBy(func(in duffelclient.OfferRequestInput) bool {
			return len(in.Slices) == 2 &&
				in.Slices[1] == duffelclient.SliceRequest{Origin: "JFK", Destination: "LHR", DepartureDate: "2026-11-27"} &&
				len(in.Passengers) == 2 &&
				in.CabinClass == "business"
		})).Return(&duffelclient.OfferRequest{}, nil)

		resp, err := svc.SearchFlights(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, resp.Offers)
		assert.Empty(t, resp.Offers)
		assert.Equal(t, []string{}, resp.Options.Airlines)
		client.AssertExpectations(t)
	})

	t.Run("offers inherit requested passenger count", func(t *testing.T) {
		client := new(MockFlightClient)
		mem := newMemoryCache()
		svc := newTestService(client, mem)
		req := oneWay()
		req.Passengers = 3

		client.On("CreateOfferRequest", mock.Anything, mock.Anything).
			Return(&duffelclient.OfferRequest{Offers: rawOffers()}, nil)

		resp, err := svc.SearchFlights(context.Background(), req)

		require.NoError(t, err)
		for _, o := range resp.Offers {
			assert.Equal(t, 3, o.PassengerCount)
		}
	})
}

func TestSearchFlights_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SearchRequest)
	}{
		{"origin not iata", func(r *SearchRequest) { r.Origin = "London" }},
		{"destination missing", func(r *SearchRequest) { r.Destination = "" }},
		{"same airports", func(r *SearchRequest) { r.Destination = "LHR" }},
		{"bad departure date", func(r *SearchRequest) { r.DepartureDate = "20/11/2026" }},
		{"bad return date", func(r *SearchRequest) { r.ReturnDate = "next week" }},
		{"return before departure", func(r *SearchRequest) { r.ReturnDate = "2026-11-19" }},
		{"no passengers", func(r *SearchRequest) { r.Passengers = 0 }},
		{"too many passengers", func(r *SearchRequest) { r.Passengers = 10 }},
		{"unknown cabin", func(r *SearchRequest) { r.CabinClass = "luxury" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockFlightClient)
			svc := newTestService(client, new(MockCache))
			req := oneWay()
			tt.mutate(&req)

			_, err := svc.SearchFlights(context.Background(), req)

			var appErr *AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
			assert.Equal(t, ErrorCodeValidation, appErr.Code)
			client.AssertNotCalled(t, "CreateOfferRequest", mock.Anything, mock.Anything)
		})
	}
}

func TestSearchFlights_ProviderErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   ErrorCode
	}{
		{"deadline", fmt.Errorf("create offer request: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, ErrorCodeTimeout},
		{"not found", &duffelclient.APIError{StatusCode: http.StatusNotFound}, http.StatusNotFound, ErrorCodeNotFound},
		{"rejected", fmt.Errorf("create offer request: %w", &duffelclient.APIError{StatusCode: http.StatusUnprocessableEntity, Code: "invalid_airport"}), http.StatusUnprocessableEntity, ErrorCodeProviderFailure},
		{"provider down", &duffelclient.APIError{StatusCode: http.StatusInternalServerError}, http.StatusBadGateway, ErrorCodeProviderFailure},
		{"transport", errors.New("connection refused"), http.StatusBadGateway, ErrorCodeProviderFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockFlightClient)
			mockCache := new(MockCache)
			svc := newTestService(client, mockCache)

			mockCache.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrMiss)
			client.On("CreateOfferRequest", mock.Anything, mock.Anything).Return(nil, tt.err)

			_, err := svc.SearchFlights(context.Background(), oneWay())

			var appErr *AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantStatus, appErr.Status)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.ErrorIs(t, err, tt.err)
			mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSearchFlights_CacheFailuresAreSwallowed(t *testing.T) {
	client := new(MockFlightClient)
	mockCache := new(MockCache)
	svc := newTestService(client, mockCache)

	mockCache.On("Get", mock.Anything, mock.Anything).Return("", errors.New("redis: connection refused"))
	mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis: connection refused"))
	client.On("CreateOfferRequest", mock.Anything, mock.Anything).Return(&duffelclient.OfferRequest{Offers: rawOffers()}, nil)

	resp, err := svc.SearchFlights(context.Background(), oneWay())

	require.NoError(t, err)
	assert.Len(t, resp.Offers, 3)
}

func TestFilterFlights(t *testing.T) {
	search := func(t *testing.T) (*Service, *MockFlightClient) {
		t.Helper()
		client := new(MockFlightClient)
		svc := newTestService(client, newMemoryCache())
		client.On("CreateOfferRequest", mock.Anything, mock.Anything).
			Return(&duffelclient.OfferRequest{Offers: rawOffers()}, nil).Once()

		_, err := svc.SearchFlights(context.Background(), oneWay())
		require.NoError(t, err)
		return svc, client
	}

	t.Run("stops and duration sort over cached results", func(t *testing.T) {
		svc, client := search(t)

		resp, err := svc.FilterFlights(context.Background(), FilterRequest{
			SearchRequest: oneWay(),
			Filters:       &FilterOptions{Stops: []int{0}},
			Sort:          "duration",
		})

		require.NoError(t, err)
		assert.True(t, resp.Metadata.CacheHit)
		assert.Equal(t, "id-1", resp.SearchID)
		assert.Equal(t, 3, resp.Metadata.TotalResults)
		assert.Equal(t, 2, resp.Metadata.ShownResults)
		assert.Equal(t, offer.SortByDuration, resp.Sort)
		assert.Equal(t, []string{"off_ba", "off_aa"}, offerIDs(resp.Offers))
		assert.Equal(t, []int{0}, resp.State.Stops)
		assert.Equal(t, offer.PriceRange{Min: 180, Max: 420}, resp.State.PriceRange)
		client.AssertNumberOfCalls(t, "CreateOfferRequest", 1)
	})

	t.Run("price range", func(t *testing.T) {
		svc, _ := search(t)

		resp, err := svc.FilterFlights(context.Background(), FilterRequest{
			SearchRequest: oneWay(),
			Filters:       &FilterOptions{PriceRange: &offer.PriceRange{Min: 0, Max: 300}},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"off_vs", "off_aa"}, offerIDs(resp.Offers))
	})

	t.Run("airlines", func(t *testing.T) {
		svc, _ := search(t)

		resp, err := svc.FilterFlights(context.Background(), FilterRequest{
			SearchRequest: oneWay(),
			Filters:       &FilterOptions{Airlines: []string{"Virgin Atlantic"}},
			Sort:          "departure",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"off_vs"}, offerIDs(resp.Offers))
	})

	t.Run("unknown sort falls back to price", func(t *testing.T) {
		svc, _ := search(t)

		resp, err := svc.FilterFlights(context.Background(), FilterRequest{SearchRequest: oneWay(), Sort: "best_value"})

		require.NoError(t, err)
		assert.Equal(t, offer.SortByPrice, resp.Sort)
		assert.Equal(t, []string{"off_vs", "off_aa", "off_ba"}, offerIDs(resp.Offers))
	})

	t.Run("cache miss refreshes and caches in background", func(t *testing.T) {
		client := new(MockFlightClient)
		mockCache := new(MockCache)
		svc := newTestService(client, mockCache)
		key := keyFor(t, svc, oneWay())
		stored := make(chan struct{})

		mockCache.On("Get", mock.Anything, key).Return("", cache.ErrMiss)
		mockCache.On("Set", mock.Anything, key, mock.AnythingOfType("string"), 15*time.Minute).
			Run(func(mock.Arguments) { close(stored) }).
			Return(nil)
		client.On("CreateOfferRequest", mock.Anything, mock.Anything).
			Return(&duffelclient.OfferRequest{Offers: rawOffers()}, nil)

		resp, err := svc.FilterFlights(context.Background(), FilterRequest{
			SearchRequest: oneWay(),
			Filters:       &FilterOptions{Stops: []int{1}},
		})

		require.NoError(t, err)
		assert.False(t, resp.Metadata.CacheHit)
		assert.Equal(t, []string{"off_vs"}, offerIDs(resp.Offers))

		select {
		case <-stored:
		case <-time.After(time.Second):
			t.Fatal("refreshed results were not cached")
		}
		mockCache.AssertExpectations(t)
	})

	t.Run("refresh failure", func(t *testing.T) {
		client := new(MockFlightClient)
		mockCache := new(MockCache)
		svc := newTestService(client, mockCache)

		mockCache.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrMiss)
		client.On("CreateOfferRequest", mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded)

		_, err := svc.FilterFlights(context.Background(), FilterRequest{SearchRequest: oneWay()})

		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, ErrorCodeTimeout, appErr.Code)
	})
}

func TestInvalidateCache(t *testing.T) {
	mockCache := new(MockCache)
	svc := newTestService(new(MockFlightClient), mockCache)
	key := keyFor(t, svc, oneWay())
	mockCache.On("Del", mock.Anything, key).Return(nil)

	require.NoError(t, svc.InvalidateCache(context.Background(), oneWay()))
	mockCache.AssertExpectations(t)
}

func TestGetOffer(t *testing.T) {
	t.Run("normalizes provider offer", func(t *testing.T) {
		client := new(MockFlightClient)
		svc := newTestService(client, new(MockCache))
		raw := rawOffers()[2]
		client.On("GetOffer", mock.Anything, "off_aa").Return(&raw, nil)

		got, err := svc.GetOffer(context.Background(), "off_aa")

		require.NoError(t, err)
		seg := got.Slices[0].Segments[0]
		assert.Equal(t, "2026-11-20T10:00:00", seg.DepartingAt)
		assert.Equal(t, "2026-11-20T18:00:00", seg.ArrivingAt)
		assert.Equal(t, offer.Carrier{Name: "American Airlines", IATACode: "AA"}, seg.Airline)
		assert.Equal(t, "GBP 250.00", got.Price)
		assert.Equal(t, "8h", got.Journeys[0].Duration)
	})

	t.Run("empty id", func(t *testing.T) {
		client := new(MockFlightClient)
		svc := newTestService(client, new(MockCache))

		_, err := svc.GetOffer(context.Background(), "")

		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, ErrorCodeValidation, appErr.Code)
		client.AssertNotCalled(t, "GetOffer", mock.Anything, mock.Anything)
	})

	t.Run("expired offer", func(t *testing.T) {
		client := new(MockFlightClient)
		svc := newTestService(client, new(MockCache))
		client.On("GetOffer", mock.Anything, "off_gone").
			Return(nil, fmt.Errorf("get offer: %w", &duffelclient.APIError{StatusCode: http.StatusNotFound}))

		_, err := svc.GetOffer(context.Background(), "off_gone")

		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Status)
	})
}

func airportFixture() []duffelclient.Airport {
	return []duffelclient.Airport{
		{IATACode: "LHR", Name: "Heathrow Airport", CityName: "London", IATACountryCode: "GB", TimeZone: "Europe/London"},
		{IATACode: "LGW", Name: "Gatwick Airport", CityName: "London", IATACountryCode: "GB"},
		{IATACode: "CDG", Name: "Charles de Gaulle Airport", IATACountryCode: "FR", City: &duffelclient.City{Name: "Paris"}},
	}
}

func airportCodes(airports []Airport) []string {
	out := make([]string, 0, len(airports))
	for _, a := range airports {
		out = append(out, a.IATACode)
	}
	return out
}

func TestSearchAirports(t *testing.T) {
	t.Run("short query matches nothing", func(t *testing.T) {
		client := new(MockFlightClient)
		svc := newTestService(client, new(MockCache))

		got, err := svc.SearchAirports(context.Background(), " l ", 0)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
		client.AssertNotCalled(t, "ListAirports", mock.Anything)
	})

	t.Run("loads catalogue once and matches case-insensitively", func(t *testing.T) {
		client := new(MockFlightClient)
		svc := newTestService(client, newMemoryCache())
		client.On("ListAirports", mock.Anything).Return(airportFixture(), nil).Once()

		london, err := svc.SearchAirports(context.Background(), "LON", 0)
		require.NoError(t, err)
		paris, err := svc.SearchAirports(context.Background(), "par", 0)
		require.NoError(t, err)
		france, err := svc.SearchAirports(context.Background(), "fr", 0)
		require.NoError(t, err)
		limited, err := svc.SearchAirports(context.Background(), "airport", 1)
		require.NoError(t, err)

		assert.Equal(t, []string{"LHR", "LGW"}, airportCodes(london))
		assert.Equal(t, []string{"CDG"}, airportCodes(paris))
		assert.Equal(t, "Paris", paris[0].CityName)
		assert.Equal(t, []string{"CDG"}, airportCodes(france))
		assert.Equal(t, []string{"LHR"}, airportCodes(limited))
		client.AssertNumberOfCalls(t, "ListAirports", 1)
	})

	t.Run("provider failure", func(t *testing.T) {
		client := new(MockFlightClient)
		svc := newTestService(client, newMemoryCache())
		client.On("ListAirports", mock.Anything).Return(nil, errors.New("connection reset"))

		_, err := svc.SearchAirports(context.Background(), "london", 0)

		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadGateway, appErr.Status)
	})
}

func TestCreateBooking(t *testing.T) {
	t.Run("missing offer id", func(t *testing.T) {
		client := new(MockFlightClient)
		svc := newTestService(client, new(MockCache))

		_, err := svc.CreateBooking(context.Background(), BookingRequest{SelectedOfferID: "  "})

		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
		client.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("instant balance order carries booking ref", func(t *testing.T) {
		client := new(MockFlightClient)
		svc := newTestService(client, new(MockCache))
		passengers := []duffelclient.OrderPassenger{{ID: "pas_1", GivenName: "Ada", FamilyName: "Lovelace"}}

		client.On("CreateOrder", mock.Anything, mock.MatchedBy(func(in duffelclient.OrderInput) bool {
			return in.Type == "instant" &&
				in.SelectedOffers[0] == "off_1" &&
				in.Payments[0] == duffelclient.Payment{Type: "balance", Amount: "120.50", Currency: "GBP"} &&
				in.Metadata["booking_ref"] == "id-1" &&
				len(in.Passengers) == 1
		})).Return(&duffelclient.Order{ID: "ord_1", BookingReference: "RZPNX8", TotalAmount: "120.50", TotalCurrency: "GBP"}, nil)

		got, err := svc.CreateBooking(context.Background(), BookingRequest{
			SelectedOfferID: "off_1",
			Passengers:      passengers,
			Amount:          "120.50",
			Currency:        "GBP",
		})

		require.NoError(t, err)
		assert.Equal(t, &BookingResponse{
			BookingRef:       "id-1",
			OrderID:          "ord_1",
			BookingReference: "RZPNX8",
			TotalAmount:      "120.50",
			TotalCurrency:    "GBP",
			Price:            "GBP 120.50",
		}, got)
		client.AssertExpectations(t)
	})

	t.Run("provider rejects order", func(t *testing.T) {
		client := new(MockFlightClient)
		svc := newTestService(client, new(MockCache))
		client.On("CreateOrder", mock.Anything, mock.Anything).
			Return(nil, &duffelclient.APIError{StatusCode: http.StatusUnprocessableEntity, Code: "offer_no_longer_available"})

		_, err := svc.CreateBooking(context.Background(), BookingRequest{SelectedOfferID: "off_1"})

		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
		assert.Equal(t, ErrorCodeProviderFailure, appErr.Code)
	})
}
