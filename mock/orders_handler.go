package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

type Payment struct {
	Type     string `json:"type"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type OrderRequest struct {
	Type           string            `json:"type"`
	SelectedOffers []string          `json:"selected_offers"`
	Passengers     []map[string]any  `json:"passengers"`
	Payments       []Payment         `json:"payments"`
	Metadata       map[string]string `json:"metadata"`
}

const refAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func (s *offerStore) OrderHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Data OrderRequest `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	req := body.Data

	if len(req.SelectedOffers) != 1 {
		writeError(w, http.StatusUnprocessableEntity, "validation_required", "exactly one selected offer is required")
		return
	}

	s.mu.Lock()
	o, ok := s.offers[req.SelectedOffers[0]]
	if ok {
		// an offer can be booked once
		delete(s.offers, req.SelectedOffers[0])
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "offer_no_longer_available", "the selected offer is no longer available")
		return
	}

	if len(req.Payments) > 0 && req.Payments[0].Amount != o["total_amount"] {
		writeError(w, http.StatusUnprocessableEntity, "price_changed", "payment amount does not match the offer total")
		return
	}

	ref := make([]byte, 6)
	for i := range ref {
		ref[i] = refAlphabet[rand.Intn(len(refAlphabet))]
	}

	writeData(w, http.StatusCreated, map[string]any{
		"id":                fmt.Sprintf("ord_%d", time.Now().UnixNano()),
		"booking_reference": string(ref),
		"total_amount":      o["total_amount"],
		"total_currency":    o["total_currency"],
		"created_at":        time.Now().UTC().Format(time.RFC3339),
		"live_mode":         false,
		"metadata":          req.Metadata,
	}, nil)
}
