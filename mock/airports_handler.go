package main

import (
	"net/http"
	"strconv"
)

type Airport struct {
	ID              string `json:"id"`
	IATACode        string `json:"iata_code"`
	Name            string `json:"name"`
	CityName        string `json:"city_name,omitempty"`
	IATACountryCode string `json:"iata_country_code"`
	TimeZone        string `json:"time_zone"`
}

var airports = []Airport{
	{"arp_lhr_gb", "LHR", "Heathrow Airport", "London", "GB", "Europe/London"},
	{"arp_lgw_gb", "LGW", "Gatwick Airport", "London", "GB", "Europe/London"},
	{"arp_man_gb", "MAN", "Manchester Airport", "Manchester", "GB", "Europe/London"},
	{"arp_cdg_fr", "CDG", "Charles de Gaulle Airport", "Paris", "FR", "Europe/Paris"},
	{"arp_ory_fr", "ORY", "Orly Airport", "Paris", "FR", "Europe/Paris"},
	{"arp_ams_nl", "AMS", "Amsterdam Airport Schiphol", "Amsterdam", "NL", "Europe/Amsterdam"},
	{"arp_fra_de", "FRA", "Frankfurt Airport", "Frankfurt", "DE", "Europe/Berlin"},
	{"arp_mad_es", "MAD", "Adolfo Suarez Madrid-Barajas Airport", "Madrid", "ES", "Europe/Madrid"},
	{"arp_bcn_es", "BCN", "Barcelona-El Prat Airport", "Barcelona", "ES", "Europe/Madrid"},
	{"arp_jfk_us", "JFK", "John F. Kennedy International Airport", "New York", "US", "America/New_York"},
	{"arp_lax_us", "LAX", "Los Angeles International Airport", "Los Angeles", "US", "America/Los_Angeles"},
	{"arp_sin_sg", "SIN", "Singapore Changi Airport", "", "SG", "Asia/Singapore"},
}

// AirportsHandler pages through the airport list with an opaque after cursor.
func AirportsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}

	start := 0
	if after := r.URL.Query().Get("after"); after != "" {
		n, err := strconv.Atoi(after)
		if err != nil || n < 0 || n > len(airports) {
			writeError(w, http.StatusBadRequest, "invalid_cursor", "after cursor is not valid")
			return
		}
		start = n
	}

	end := start + limit
	if end > len(airports) {
		end = len(airports)
	}

	var next any
	if end < len(airports) {
		next = strconv.Itoa(end)
	}

	writeData(w, http.StatusOK, airports[start:end], map[string]any{
		"after": next,
		"limit": limit,
	})
}
