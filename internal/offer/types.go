package offer

// Carrier is an airline reference as delivered by the provider.
type Carrier struct {
	Name     string `json:"name,omitempty"`
	IATACode string `json:"iata_code,omitempty"`
}

// Place is an airport or city endpoint of a segment or slice.
type Place struct {
	IATACode string  `json:"iata_code,omitempty"`
	Name     string  `json:"name,omitempty"`
	CityName string  `json:"city_name,omitempty"`
	City     CityRef `json:"city,omitempty"`
}

type Aircraft struct {
	Name     string `json:"name,omitempty"`
	IATACode string `json:"iata_code,omitempty"`
}

// RawSegment keeps every field name the provider has used for a flown leg.
// Which of them are populated depends on the schema version of the response.
type RawSegment struct {
	ID string `json:"id"`

	DepartingAt       string `json:"departing_at,omitempty"`
	DepartureDatetime string `json:"departure_datetime,omitempty"`
	DepartureTime     string `json:"departure_time,omitempty"`
	ArrivingAt        string `json:"arriving_at,omitempty"`
	ArrivalDatetime   string `json:"arrival_datetime,omitempty"`
	ArrivalTime       string `json:"arrival_time,omitempty"`

	MarketingCarrier *Carrier `json:"marketing_carrier,omitempty"`
	Carrier          *Carrier `json:"carrier,omitempty"`
	Airline          *Carrier `json:"airline,omitempty"`

	FlightNumber                 string `json:"flight_number,omitempty"`
	MarketingCarrierFlightNumber string `json:"marketing_carrier_flight_number,omitempty"`

	Origin      *Place    `json:"origin,omitempty"`
	Destination *Place    `json:"destination,omitempty"`
	Aircraft    *Aircraft `json:"aircraft,omitempty"`
	Duration    string    `json:"duration,omitempty"`
}

type RawSlice struct {
	ID            string       `json:"id"`
	Segments      []RawSegment `json:"segments"`
	Duration      string       `json:"duration,omitempty"`
	Origin        *Place       `json:"origin,omitempty"`
	Destination   *Place       `json:"destination,omitempty"`
	DepartureDate string       `json:"departure_date,omitempty"`
}

// RawOffer is a provider offer record before normalization.
type RawOffer struct {
	ID             string     `json:"id"`
	TotalAmount    Amount     `json:"total_amount"`
	TotalCurrency  string     `json:"total_currency"`
	PassengerCount int        `json:"passenger_count,omitempty"`
	Slices         []RawSlice `json:"slices"`
}

type Segment struct {
	ID           string  `json:"id"`
	Origin       Place   `json:"origin"`
	Destination  Place   `json:"destination"`
	DepartingAt  string  `json:"departing_at"`
	ArrivingAt   string  `json:"arriving_at"`
	Airline      Carrier `json:"airline"`
	FlightNumber string  `json:"flight_number"`
	Aircraft     string  `json:"aircraft,omitempty"`
	Duration     string  `json:"duration,omitempty"`
}

type Slice struct {
	ID            string    `json:"id"`
	Segments      []Segment `json:"segments"`
	Duration      string    `json:"duration,omitempty"`
	Origin        Place     `json:"origin"`
	Destination   Place     `json:"destination"`
	DepartureDate string    `json:"departure_date,omitempty"`
}

// Stops is the number of intermediate landings in the slice.
func (s Slice) Stops() int {
	if len(s.Segments) == 0 {
		return 0
	}
	return len(s.Segments) - 1
}

// NormalizedOffer is the one shape the filter and sort engines work on.
type NormalizedOffer struct {
	ID             string  `json:"id"`
	TotalAmount    string  `json:"total_amount"`
	TotalCurrency  string  `json:"total_currency"`
	PassengerCount int     `json:"passenger_count"`
	Slices         []Slice `json:"slices"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterState is the user's current selection. Both bounds of PriceRange
// are inclusive. An empty Airlines or Stops set means no filtering on it.
type FilterState struct {
	PriceRange PriceRange `json:"price_range"`
	Airlines   []string   `json:"airlines"`
	Stops      []int      `json:"stops"`
}

// Options are the selectable filter values derived from an offer list.
type Options struct {
	PriceRange PriceRange `json:"price_range"`
	Airlines   []string   `json:"airlines"`
	StopCounts []int      `json:"stop_counts"`
}

type SortKey string

const (
	SortByPrice     SortKey = "price"
	SortByDuration  SortKey = "duration"
	SortByDeparture SortKey = "departure"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortByPrice, SortByDuration, SortByDeparture:
		return true
	}
	return false
}

// ParseSortKey maps user input to a SortKey, falling back to price.
func ParseSortKey(s string) (SortKey, bool) {
	k := SortKey(s)
	if k.Valid() {
		return k, true
	}
	return SortByPrice, false
}
