package offer

import "strings"

const (
	UnknownAirlineName = "Unknown Airline"
	UnknownAirlineCode = "??"
)

// Field cascades. Each logical field lists its accessors in priority order
// and the first non-empty value wins. Provider schema drift is absorbed
// here and nowhere else.

type segmentField func(RawSegment) string

var (
	departureCascade = []segmentField{
		func(s RawSegment) string { return s.DepartingAt },
		func(s RawSegment) string { return s.DepartureDatetime },
		func(s RawSegment) string { return s.DepartureTime },
	}
	arrivalCascade = []segmentField{
		func(s RawSegment) string { return s.ArrivingAt },
		func(s RawSegment) string { return s.ArrivalDatetime },
		func(s RawSegment) string { return s.ArrivalTime },
	}
	flightNumberCascade = []segmentField{
		func(s RawSegment) string { return s.FlightNumber },
		func(s RawSegment) string { return s.MarketingCarrierFlightNumber },
	}
	carrierCascade = []func(RawSegment) *Carrier{
		func(s RawSegment) *Carrier { return s.MarketingCarrier },
		func(s RawSegment) *Carrier { return s.Carrier },
		func(s RawSegment) *Carrier { return s.Airline },
	}
)

func resolve(s RawSegment, cascade []segmentField) string {
	for _, get := range cascade {
		if v := strings.TrimSpace(get(s)); v != "" {
			return v
		}
	}
	return ""
}

// resolveCarrier picks name and code independently, so a carrier object
// that only knows the code does not hide a name further down the cascade.
func resolveCarrier(s RawSegment) Carrier {
	var c Carrier
	for _, get := range carrierCascade {
		src := get(s)
		if src == nil {
			continue
		}
		if c.Name == "" {
			c.Name = strings.TrimSpace(src.Name)
		}
		if c.IATACode == "" {
			c.IATACode = strings.TrimSpace(src.IATACode)
		}
	}
	if c.Name == "" {
		c.Name = UnknownAirlineName
	}
	if c.IATACode == "" {
		c.IATACode = UnknownAirlineCode
	}
	return c
}

func normalizePlace(p *Place) Place {
	if p == nil {
		return Place{}
	}
	city := p.CityName
	if city == "" {
		city = string(p.City)
	}
	return Place{
		IATACode: p.IATACode,
		Name:     p.Name,
		CityName: city,
	}
}

func normalizeSegment(s RawSegment) Segment {
	seg := Segment{
		ID:           s.ID,
		Origin:       normalizePlace(s.Origin),
		Destination:  normalizePlace(s.Destination),
		DepartingAt:  resolve(s, departureCascade),
		ArrivingAt:   resolve(s, arrivalCascade),
		Airline:      resolveCarrier(s),
		FlightNumber: resolve(s, flightNumberCascade),
		Duration:     s.Duration,
	}
	if s.Aircraft != nil {
		seg.Aircraft = s.Aircraft.Name
	}
	return seg
}

func normalizeSlice(s RawSlice) Slice {
	segments := make([]Segment, 0, len(s.Segments))
	for _, raw := range s.Segments {
		segments = append(segments, normalizeSegment(raw))
	}

	out := Slice{
		ID:            s.ID,
		Segments:      segments,
		Duration:      s.Duration,
		Origin:        normalizePlace(s.Origin),
		Destination:   normalizePlace(s.Destination),
		DepartureDate: s.DepartureDate,
	}

	// Older responses omit slice endpoints; the segments still carry them.
	if s.Origin == nil && len(segments) > 0 {
		out.Origin = segments[0].Origin
	}
	if s.Destination == nil && len(segments) > 0 {
		out.Destination = segments[len(segments)-1].Destination
	}
	return out
}

// Normalize rewrites a provider offer into the canonical shape. It never
// fails: absent fields become empty values.
func Normalize(raw RawOffer) NormalizedOffer {
	slices := make([]Slice, 0, len(raw.Slices))
	for _, s := range raw.Slices {
		slices = append(slices, normalizeSlice(s))
	}

	passengers := raw.PassengerCount
	if passengers <= 0 {
		passengers = 1
	}

	return NormalizedOffer{
		ID:             raw.ID,
		TotalAmount:    strings.TrimSpace(string(raw.TotalAmount)),
		TotalCurrency:  raw.TotalCurrency,
		PassengerCount: passengers,
		Slices:         slices,
	}
}

func NormalizeAll(raw []RawOffer) []NormalizedOffer {
	out := make([]NormalizedOffer, 0, len(raw))
	for _, r := range raw {
		out = append(out, Normalize(r))
	}
	return out
}

// Raw exposes a normalized offer under the canonical provider field names,
// so that Normalize(n.Raw()) == n.
func (n NormalizedOffer) Raw() RawOffer {
	slices := make([]RawSlice, 0, len(n.Slices))
	for _, s := range n.Slices {
		segments := make([]RawSegment, 0, len(s.Segments))
		for _, seg := range s.Segments {
			raw := RawSegment{
				ID:               seg.ID,
				DepartingAt:      seg.DepartingAt,
				ArrivingAt:       seg.ArrivingAt,
				MarketingCarrier: &Carrier{Name: seg.Airline.Name, IATACode: seg.Airline.IATACode},
				FlightNumber:     seg.FlightNumber,
				Origin:           placeRef(seg.Origin),
				Destination:      placeRef(seg.Destination),
				Duration:         seg.Duration,
			}
			if seg.Aircraft != "" {
				raw.Aircraft = &Aircraft{Name: seg.Aircraft}
			}
			segments = append(segments, raw)
		}
		slices = append(slices, RawSlice{
			ID:            s.ID,
			Segments:      segments,
			Duration:      s.Duration,
			Origin:        placeRef(s.Origin),
			Destination:   placeRef(s.Destination),
			DepartureDate: s.DepartureDate,
		})
	}

	return RawOffer{
		ID:             n.ID,
		TotalAmount:    Amount(n.TotalAmount),
		TotalCurrency:  n.TotalCurrency,
		PassengerCount: n.PassengerCount,
		Slices:         slices,
	}
}

func placeRef(p Place) *Place {
	return &p
}
