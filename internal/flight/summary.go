package flight

import (
	"skybook/internal/offer"
	"skybook/pkg/format"
)

func summarize(offers []offer.NormalizedOffer) []OfferSummary {
	out := make([]OfferSummary, 0, len(offers))
	for _, o := range offers {
		out = append(out, summarizeOffer(o))
	}
	return out
}

func summarizeOffer(o offer.NormalizedOffer) OfferSummary {
	journeys := make([]JourneySummary, 0, len(o.Slices))
	for _, s := range o.Slices {
		journeys = append(journeys, summarizeSlice(s))
	}
	return OfferSummary{
		NormalizedOffer: o,
		Price:           format.Price(o.TotalAmount, o.TotalCurrency),
		Journeys:        journeys,
	}
}

func summarizeSlice(s offer.Slice) JourneySummary {
	j := JourneySummary{
		Origin:        s.Origin.IATACode,
		Destination:   s.Destination.IATACode,
		DepartureTime: "--:--",
		ArrivalTime:   "--:--",
		DepartureDate: "--",
		Duration:      format.Duration(s.Duration),
		Stops:         s.Stops(),
		Airlines:      []string{},
	}
	if len(s.Segments) == 0 {
		return j
	}

	first, last := s.Segments[0], s.Segments[len(s.Segments)-1]
	j.DepartureTime = format.Time(first.DepartingAt)
	j.ArrivalTime = format.Time(last.ArrivingAt)
	j.DepartureDate = format.Date(first.DepartingAt)
	if s.Duration == "" {
		j.Duration = format.Between(first.DepartingAt, last.ArrivingAt)
	}

	seen := map[string]bool{}
	for _, seg := range s.Segments {
		if !seen[seg.Airline.Name] {
			seen[seg.Airline.Name] = true
			j.Airlines = append(j.Airlines, seg.Airline.Name)
		}
	}
	return j
}
