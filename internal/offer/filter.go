package offer

// filterContext holds the selection as sets so membership checks stay O(1)
type filterContext struct {
	price    PriceRange
	airlines map[string]struct{}
	stops    map[int]struct{}
}

func newFilterContext(state FilterState) *filterContext {
	fc := &filterContext{
		price:    state.PriceRange,
		airlines: make(map[string]struct{}, len(state.Airlines)),
		stops:    make(map[int]struct{}, len(state.Stops)),
	}
	for _, a := range state.Airlines {
		fc.airlines[a] = struct{}{}
	}
	for _, s := range state.Stops {
		fc.stops[s] = struct{}{}
	}
	return fc
}

// ApplyFilters keeps the offers that pass the price, airline and stop
// predicates, in their original order. The input is not modified.
func ApplyFilters(offers []NormalizedOffer, state FilterState) []NormalizedOffer {
	return failOpen(offers, func(in []NormalizedOffer) []NormalizedOffer {
		fc := newFilterContext(state)
		filtered := make([]NormalizedOffer, 0, len(in))
		for _, o := range in {
			if fc.matches(o) {
				filtered = append(filtered, o)
			}
		}
		return filtered
	})
}

type offerCheck func(*filterContext, NormalizedOffer) bool

var offerChecks = []offerCheck{
	(*filterContext).matchPrice,
	(*filterContext).matchAirlines,
	(*filterContext).matchStops,
}

// matches returns true only if ALL predicates pass
func (fc *filterContext) matches(o NormalizedOffer) bool {
	for _, check := range offerChecks {
		if !check(fc, o) {
			return false
		}
	}
	return true
}

// An amount that does not parse fails the range check.
func (fc *filterContext) matchPrice(o NormalizedOffer) bool {
	price, ok := parseAmount(o.TotalAmount)
	if !ok {
		return false
	}
	return price >= fc.price.Min && price <= fc.price.Max
}

// Any operating airline of the offer being selected is enough.
func (fc *filterContext) matchAirlines(o NormalizedOffer) bool {
	names := airlineNames(o)
	if len(names) == 0 || len(fc.airlines) == 0 {
		return true
	}
	for _, name := range names {
		if _, ok := fc.airlines[name]; ok {
			return true
		}
	}
	return false
}

// Every slice must have a selected stop count.
func (fc *filterContext) matchStops(o NormalizedOffer) bool {
	stops := stopCounts(o)
	if len(stops) == 0 || len(fc.stops) == 0 {
		return true
	}
	for _, n := range stops {
		if _, ok := fc.stops[n]; !ok {
			return false
		}
	}
	return true
}
