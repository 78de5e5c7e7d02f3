package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

func main() {
	// Default port
	port := "8081"

	// Check if port is provided as command line argument
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	store := newOfferStore()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /air/offer_requests", store.OfferRequestHandler)
	mux.HandleFunc("GET /air/offers/{id}", store.OfferHandler)
	mux.HandleFunc("GET /air/airports", AirportsHandler)
	mux.HandleFunc("POST /air/orders", store.OrderHandler)

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Go Mock Server running on port %s...\n", port)
	if err := http.ListenAndServe(addr, requireAuth(mux)); err != nil {
		log.Fatal(err)
	}
}

func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			writeError(w, http.StatusUnauthorized, "missing_authorization", "Authorization header is required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeData(w http.ResponseWriter, status int, data any, meta any) {
	body := map[string]any{"data": data}
	if meta != nil {
		body["meta"] = meta
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"errors": []map[string]string{{
			"code":    code,
			"title":   http.StatusText(status),
			"message": message,
		}},
	})
}
