package flight

import (
	"regexp"
	"skybook/internal/offer"
	"skybook/pkg/duffelclient"
	"strings"
	"time"
)

const (
	maxPassengers = 9
	dateLayout    = "2006-01-02"
)

var (
	iataCode     = regexp.MustCompile(`^[A-Z]{3}$`)
	cabinClasses = map[string]bool{
		"economy":         true,
		"premium_economy": true,
		"business":        true,
		"first":           true,
	}
)

// normalize upper-cases airport codes, applies defaults and validates.
func (r *SearchRequest) normalize() error {
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
	r.CabinClass = strings.ToLower(strings.TrimSpace(r.CabinClass))
	if r.CabinClass == "" {
		r.CabinClass = "economy"
	}

	if !iataCode.MatchString(r.Origin) {
		return validationError("origin must be a 3-letter IATA code")
	}
	if !iataCode.MatchString(r.Destination) {
		return validationError("destination must be a 3-letter IATA code")
	}
	if r.Origin == r.Destination {
		return validationError("origin and destination must differ")
	}

	departure, err := time.Parse(dateLayout, r.DepartureDate)
	if err != nil {
		return validationError("departure_date must be YYYY-MM-DD")
	}
	if r.ReturnDate != "" {
		ret, err := time.Parse(dateLayout, r.ReturnDate)
		if err != nil {
			return validationError("return_date must be YYYY-MM-DD")
		}
		if ret.Before(departure) {
			return validationError("return_date must not be before departure_date")
		}
	}

	if r.Passengers < 1 || r.Passengers > maxPassengers {
		return validationError("passengers must be between 1 and 9")
	}
	if !cabinClasses[r.CabinClass] {
		return validationError("cabin_class must be one of economy, premium_economy, business, first")
	}
	return nil
}

// offerRequest builds the provider query: one slice one-way, the reversed
// route added for a round trip.
func (r SearchRequest) offerRequest() duffelclient.OfferRequestInput {
	slices := []duffelclient.SliceRequest{{
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: r.DepartureDate,
	}}
	if r.ReturnDate != "" {
		slices = append(slices, duffelclient.SliceRequest{
			Origin:        r.Destination,
			Destination:   r.Origin,
			DepartureDate: r.ReturnDate,
		})
	}
	return duffelclient.OfferRequestInput{
		Slices:     slices,
		Passengers: duffelclient.AdultPassengers(r.Passengers),
		CabinClass: r.CabinClass,
	}
}

// state turns the requested filters into a FilterState over opts.
// Anything not given selects everything.
func (f *FilterOptions) state(opts offer.Options) offer.FilterState {
	state := opts.DefaultState()
	if f == nil {
		return state
	}
	if f.PriceRange != nil {
		state.PriceRange = *f.PriceRange
	}
	if f.Airlines != nil {
		state.Airlines = f.Airlines
	}
	if f.Stops != nil {
		state.Stops = f.Stops
	}
	return state
}
