package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"
)

type SliceRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
}

type OfferRequest struct {
	Slices     []SliceRequest   `json:"slices"`
	Passengers []map[string]any `json:"passengers"`
	CabinClass string           `json:"cabin_class"`
}

type carrier struct {
	Name string
	Code string
	Hub  string
}

var carriers = []carrier{
	{"British Airways", "BA", "LHR"},
	{"KLM", "KL", "AMS"},
	{"Lufthansa", "LH", "FRA"},
	{"Iberia", "IB", "MAD"},
	{"Air France", "AF", "CDG"},
}

// offerStore remembers generated offers so they can be fetched and booked.
type offerStore struct {
	mu     sync.Mutex
	offers map[string]map[string]any
	seq    int
}

func newOfferStore() *offerStore {
	return &offerStore{offers: map[string]map[string]any{}}
}

func (s *offerStore) OfferRequestHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Data OfferRequest `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	req := body.Data
	if len(req.Slices) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "validation_required", "slices must not be empty")
		return
	}
	for _, sl := range req.Slices {
		if len(sl.Origin) != 3 || len(sl.Destination) != 3 {
			writeError(w, http.StatusUnprocessableEntity, "invalid_airport", "origin and destination must be IATA codes")
			return
		}
		if _, err := time.Parse("2006-01-02", sl.DepartureDate); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid_date", "departure_date must be YYYY-MM-DD")
			return
		}
	}

	offers := make([]map[string]any, 0, len(carriers))
	s.mu.Lock()
	for i, c := range carriers {
		s.seq++
		o := buildOffer(fmt.Sprintf("off_%04d", s.seq), i, c, req)
		s.offers[o["id"].(string)] = o
		offers = append(offers, o)
	}
	s.mu.Unlock()

	delay := 50 + rand.Intn(51) // 50 to 100ms
	time.Sleep(time.Duration(delay) * time.Millisecond)

	writeData(w, http.StatusCreated, map[string]any{
		"id":          fmt.Sprintf("orq_%d", time.Now().UnixNano()),
		"live_mode":   false,
		"cabin_class": req.CabinClass,
		"offers":      offers,
	}, nil)
}

func (s *offerStore) OfferHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	o, ok := s.offers[id]
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "offer "+id+" does not exist or has expired")
		return
	}
	writeData(w, http.StatusOK, o, nil)
}

// buildOffer generates one offer. style rotates the segment field names
// the way different provider API versions spell them.
func buildOffer(id string, style int, c carrier, req OfferRequest) map[string]any {
	price := 90 + rand.Intn(600)
	pax := len(req.Passengers)
	if pax == 0 {
		pax = 1
	}

	slices := make([]map[string]any, 0, len(req.Slices))
	for i, sl := range req.Slices {
		// every other carrier connects through its hub
		connect := style%2 == 1 && !strings.EqualFold(c.Hub, sl.Origin) && !strings.EqualFold(c.Hub, sl.Destination)
		slices = append(slices, buildSlice(fmt.Sprintf("%s_sl%d", id, i), style, c, sl, connect))
	}

	return map[string]any{
		"id":              id,
		"total_amount":    fmt.Sprintf("%d.%02d", price*pax, rand.Intn(100)),
		"total_currency":  "GBP",
		"passenger_count": pax,
		"slices":          slices,
	}
}

func buildSlice(id string, style int, c carrier, sl SliceRequest, connect bool) map[string]any {
	day, _ := time.Parse("2006-01-02", sl.DepartureDate)
	dep := day.Add(time.Duration(6+rand.Intn(14)) * time.Hour)

	legs := [][2]string{{sl.Origin, sl.Destination}}
	if connect {
		legs = [][2]string{{sl.Origin, c.Hub}, {c.Hub, sl.Destination}}
	}

	segments := make([]map[string]any, 0, len(legs))
	for i, leg := range legs {
		flight := time.Duration(60+rand.Intn(420)) * time.Minute
		arr := dep.Add(flight)
		segments = append(segments, buildSegment(fmt.Sprintf("%s_seg%d", id, i), style, c, leg, dep, arr))
		dep = arr.Add(time.Duration(45+rand.Intn(120)) * time.Minute)
	}

	out := map[string]any{
		"id":       id,
		"segments": segments,
	}
	// older versions drop slice endpoints and duration
	if style < 3 {
		out["origin"] = place(sl.Origin)
		out["destination"] = place(sl.Destination)
	}
	return out
}

func buildSegment(id string, style int, c carrier, leg [2]string, dep, arr time.Time) map[string]any {
	seg := map[string]any{
		"id":          id,
		"origin":      place(leg[0]),
		"destination": place(leg[1]),
		"aircraft":    map[string]string{"name": "Airbus A320"},
		"duration":    isoDuration(arr.Sub(dep)),
	}
	number := fmt.Sprintf("%d", 100+rand.Intn(900))
	who := map[string]string{"name": c.Name, "iata_code": c.Code}

	switch style % 3 {
	case 0:
		seg["departing_at"] = dep.Format("2006-01-02T15:04:05")
		seg["arriving_at"] = arr.Format("2006-01-02T15:04:05")
		seg["marketing_carrier"] = who
		seg["flight_number"] = number
	case 1:
		seg["departure_datetime"] = dep.Format(time.RFC3339)
		seg["arrival_datetime"] = arr.Format(time.RFC3339)
		seg["carrier"] = who
		seg["marketing_carrier_flight_number"] = number
	default:
		seg["departure_time"] = dep.Format("2006-01-02T15:04:05")
		seg["arrival_time"] = arr.Format("2006-01-02T15:04:05")
		seg["airline"] = who
		seg["marketing_carrier_flight_number"] = number
	}
	return seg
}

// place renders an endpoint the way the live API does, with the city as
// a nested object.
func place(code string) map[string]any {
	p := map[string]any{"iata_code": code}
	for _, a := range airports {
		if a.IATACode != code {
			continue
		}
		p["name"] = a.Name
		if a.CityName != "" {
			p["city"] = map[string]string{"name": a.CityName, "iata_code": code}
		}
		break
	}
	return p
}

func isoDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("PT%dH%dM", h, m)
}
