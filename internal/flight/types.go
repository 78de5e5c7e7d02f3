package flight

import (
	"skybook/internal/offer"
	"skybook/pkg/duffelclient"
)

type SearchRequest struct {
	Origin        string `json:"origin" example:"LHR"`
	Destination   string `json:"destination" example:"JFK"`
	DepartureDate string `json:"departure_date" example:"2026-11-20"`
	ReturnDate    string `json:"return_date,omitempty" example:"2026-11-27"`
	Passengers    int    `json:"passengers" example:"1"`
	CabinClass    string `json:"cabin_class,omitempty" example:"economy"`
}

type FilterOptions struct {
	PriceRange *offer.PriceRange `json:"price_range,omitempty"`
	Airlines   []string          `json:"airlines,omitempty"`
	Stops      []int             `json:"stops,omitempty"`
}

type FilterRequest struct {
	SearchRequest
	Filters *FilterOptions `json:"filters,omitempty"`
	Sort    string         `json:"sort,omitempty" example:"price"`
}

type Metadata struct {
	TotalResults int    `json:"total_results"`
	ShownResults int    `json:"shown_results"`
	SearchTimeMs int64  `json:"search_time_ms"`
	CacheKey     string `json:"cache_key"`
	CacheHit     bool   `json:"cache_hit"`
}

type SearchResponse struct {
	SearchID string            `json:"search_id"`
	Metadata Metadata          `json:"metadata"`
	Options  offer.Options     `json:"options"`
	State    offer.FilterState `json:"state"`
	Sort     offer.SortKey     `json:"sort"`
	Offers   []OfferSummary    `json:"offers"`
}

// OfferSummary is a normalized offer plus the strings a results card shows.
type OfferSummary struct {
	offer.NormalizedOffer
	Price    string           `json:"price"`
	Journeys []JourneySummary `json:"journeys"`
}

type JourneySummary struct {
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureDate string   `json:"departure_date"`
	DepartureTime string   `json:"departure_time"`
	ArrivalTime   string   `json:"arrival_time"`
	Duration      string   `json:"duration"`
	Stops         int      `json:"stops"`
	Airlines      []string `json:"airlines"`
}

type OfferResponse struct {
	Data OfferSummary `json:"data"`
}

type Airport struct {
	IATACode    string `json:"iata_code"`
	Name        string `json:"name"`
	CityName    string `json:"city_name,omitempty"`
	CountryCode string `json:"iata_country_code,omitempty"`
	TimeZone    string `json:"time_zone,omitempty"`
}

type AirportResponse struct {
	Data []Airport `json:"data"`
}

type BookingRequest struct {
	SelectedOfferID string                        `json:"selected_offer_id"`
	Passengers      []duffelclient.OrderPassenger `json:"passengers"`
	Amount          string                        `json:"amount" example:"120.50"`
	Currency        string                        `json:"currency" example:"GBP"`
}

type BookingResponse struct {
	BookingRef       string `json:"booking_ref"`
	OrderID          string `json:"order_id"`
	BookingReference string `json:"booking_reference"`
	TotalAmount      string `json:"total_amount"`
	TotalCurrency    string `json:"total_currency"`
	Price            string `json:"price"`
	LiveMode         bool   `json:"live_mode"`
}

// cachedSearch is what a search leaves in the cache. Offers are stored
// normalized so a filter run does not normalize again.
type cachedSearch struct {
	SearchID     string                  `json:"search_id"`
	SearchTimeMs int64                   `json:"search_time_ms"`
	Offers       []offer.NormalizedOffer `json:"offers"`
}
