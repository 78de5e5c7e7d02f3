package offer

import "sort"

// airlineNames lists the airline display names of every segment of o,
// in itinerary order, skipping segments without a name.
func airlineNames(o NormalizedOffer) []string {
	var names []string
	for _, s := range o.Slices {
		for _, seg := range s.Segments {
			if seg.Airline.Name != "" {
				names = append(names, seg.Airline.Name)
			}
		}
	}
	return names
}

// stopCounts lists the stop count of each slice that has segments.
func stopCounts(o NormalizedOffer) []int {
	var stops []int
	for _, s := range o.Slices {
		if len(s.Segments) == 0 {
			continue
		}
		stops = append(stops, s.Stops())
	}
	return stops
}

// ExtractOptions derives the selectable filter values from offers. Amounts
// that do not parse are left out of the price bounds. An empty list gives
// a zero range and empty sets.
func ExtractOptions(offers []NormalizedOffer) Options {
	opts := Options{Airlines: []string{}, StopCounts: []int{}}

	seenPrice := false
	airlines := make(map[string]struct{})
	stops := make(map[int]struct{})

	for _, o := range offers {
		if price, ok := parseAmount(o.TotalAmount); ok {
			if !seenPrice || price < opts.PriceRange.Min {
				opts.PriceRange.Min = price
			}
			if !seenPrice || price > opts.PriceRange.Max {
				opts.PriceRange.Max = price
			}
			seenPrice = true
		}
		for _, name := range airlineNames(o) {
			airlines[name] = struct{}{}
		}
		for _, n := range stopCounts(o) {
			stops[n] = struct{}{}
		}
	}

	for name := range airlines {
		opts.Airlines = append(opts.Airlines, name)
	}
	sort.Strings(opts.Airlines)

	for n := range stops {
		opts.StopCounts = append(opts.StopCounts, n)
	}
	sort.Ints(opts.StopCounts)

	return opts
}

// DefaultState selects everything the options offer, which filters nothing.
func (o Options) DefaultState() FilterState {
	return FilterState{
		PriceRange: o.PriceRange,
		Airlines:   append([]string{}, o.Airlines...),
		Stops:      append([]int{}, o.StopCounts...),
	}
}
