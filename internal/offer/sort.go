package offer

import (
	"math"
	"sort"
)

type sortKeyFunc func(NormalizedOffer) float64

var sortKeys = map[SortKey]sortKeyFunc{
	SortByPrice:     priceKey,
	SortByDuration:  durationKey,
	SortByDeparture: departureKey,
}

// priceKey treats an unparseable amount as 0. The filter engine rejects
// the same offer, so the two engines disagree on purpose.
func priceKey(o NormalizedOffer) float64 {
	price, ok := parseAmount(o.TotalAmount)
	if !ok {
		return 0
	}
	return price
}

// durationKey sums, over all slices, first departure to last arrival in
// milliseconds. Slices with a missing or broken timestamp add nothing.
func durationKey(o NormalizedOffer) float64 {
	var total int64
	for _, s := range o.Slices {
		if len(s.Segments) == 0 {
			continue
		}
		dep, okDep := parseTimestamp(s.Segments[0].DepartingAt)
		arr, okArr := parseTimestamp(s.Segments[len(s.Segments)-1].ArrivingAt)
		if okDep && okArr {
			total += arr.Sub(dep).Milliseconds()
		}
	}
	return float64(total)
}

// departureKey is the first departure of the trip; offers without one
// sort last.
func departureKey(o NormalizedOffer) float64 {
	if len(o.Slices) == 0 || len(o.Slices[0].Segments) == 0 {
		return math.Inf(1)
	}
	dep, ok := parseTimestamp(o.Slices[0].Segments[0].DepartingAt)
	if !ok {
		return math.Inf(1)
	}
	return float64(dep.UnixMilli())
}

// SortOffers returns offers ordered ascending by key. Equal keys keep their
// input order. The input slice is not modified; an unknown key returns the
// offers in input order.
func SortOffers(offers []NormalizedOffer, key SortKey) []NormalizedOffer {
	return failOpen(offers, func(in []NormalizedOffer) []NormalizedOffer {
		sorted := make([]NormalizedOffer, len(in))
		copy(sorted, in)

		keyOf, ok := sortKeys[key]
		if !ok || len(sorted) <= 1 {
			return sorted
		}

		// compute each key once, then sort the keys alongside the offers
		keys := make([]float64, len(sorted))
		for i, o := range sorted {
			keys[i] = keyOf(o)
		}
		sort.Stable(byKey{offers: sorted, keys: keys})
		return sorted
	})
}

type byKey struct {
	offers []NormalizedOffer
	keys   []float64
}

func (b byKey) Len() int           { return len(b.offers) }
func (b byKey) Less(i, j int) bool { return b.keys[i] < b.keys[j] }
func (b byKey) Swap(i, j int) {
	b.offers[i], b.offers[j] = b.offers[j], b.offers[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}
