package offer

// Result is one run of the pipeline: every offer of the search, the
// subset on display and the state that produced it.
type Result struct {
	Offers    []NormalizedOffer `json:"-"`
	Displayed []NormalizedOffer `json:"offers"`
	Options   Options           `json:"options"`
	State     FilterState       `json:"state"`
	SortKey   SortKey           `json:"sort"`
}

func (r Result) Total() int { return len(r.Offers) }
func (r Result) Shown() int { return len(r.Displayed) }

// View holds one results screen. Each mutation re-runs
// extract -> filter -> sort and notifies subscribers.
// A View is not safe for concurrent use.
type View struct {
	offers  []NormalizedOffer
	options Options
	state   FilterState
	sortKey SortKey

	result    Result
	observers []func(Result)
}

func NewView(key SortKey) *View {
	if !key.Valid() {
		key = SortByPrice
	}
	v := &View{sortKey: key}
	v.reset()
	v.result = v.run()
	return v
}

// Subscribe registers fn to receive every new Result.
func (v *View) Subscribe(fn func(Result)) {
	v.observers = append(v.observers, fn)
}

func (v *View) Result() Result { return v.result }

// SetOffers replaces the offer list. Options are extracted again and the
// selection resets to everything, so a new list starts unfiltered.
func (v *View) SetOffers(raw []RawOffer) Result {
	return v.SetNormalized(NormalizeAll(raw))
}

func (v *View) SetNormalized(offers []NormalizedOffer) Result {
	v.offers = offers
	if len(offers) == 0 {
		v.reset()
	} else {
		v.options = ExtractOptions(offers)
		v.state = v.options.DefaultState()
	}
	return v.changed()
}

func (v *View) SetFilter(state FilterState) Result {
	v.state = state
	return v.changed()
}

// SetPriceRange selects a price window clamped to the extracted bounds.
func (v *View) SetPriceRange(min, max float64) Result {
	if min < v.options.PriceRange.Min {
		min = v.options.PriceRange.Min
	}
	if max > v.options.PriceRange.Max {
		max = v.options.PriceRange.Max
	}
	v.state.PriceRange = PriceRange{Min: min, Max: max}
	return v.changed()
}

func (v *View) ToggleAirline(name string) Result {
	v.state.Airlines = toggle(v.state.Airlines, name)
	return v.changed()
}

func (v *View) ToggleStop(n int) Result {
	v.state.Stops = toggle(v.state.Stops, n)
	return v.changed()
}

// ResetFilters selects every option again.
func (v *View) ResetFilters() Result {
	v.state = v.options.DefaultState()
	return v.changed()
}

func (v *View) SetSort(key SortKey) Result {
	if key.Valid() {
		v.sortKey = key
	}
	return v.changed()
}

func (v *View) reset() {
	v.options = Options{Airlines: []string{}, StopCounts: []int{}}
	v.state = FilterState{Airlines: []string{}, Stops: []int{}}
}

func (v *View) run() Result {
	displayed := []NormalizedOffer{}
	if len(v.offers) > 0 {
		displayed = SortOffers(ApplyFilters(v.offers, v.state), v.sortKey)
	}
	return Result{
		Offers:    v.offers,
		Displayed: displayed,
		Options:   v.options,
		State:     v.state,
		SortKey:   v.sortKey,
	}
}

func (v *View) changed() Result {
	v.result = v.run()
	for _, fn := range v.observers {
		fn(v.result)
	}
	return v.result
}

func toggle[T comparable](set []T, item T) []T {
	out := make([]T, 0, len(set)+1)
	found := false
	for _, s := range set {
		if s == item {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, item)
	}
	return out
}
