package duffelclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"skybook/internal/offer"
	"skybook/pkg/logger"
)

type SliceRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
}

type PassengerRequest struct {
	Type string `json:"type"`
	Age  int    `json:"age,omitempty"`
}

type OfferRequestInput struct {
	Slices     []SliceRequest     `json:"slices"`
	Passengers []PassengerRequest `json:"passengers"`
	CabinClass string             `json:"cabin_class,omitempty"`
}

// OfferRequestPassenger is a passenger as registered by an offer request;
// its ID is what an order must reference.
type OfferRequestPassenger struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type OfferRequest struct {
	ID         string                  `json:"id"`
	LiveMode   bool                    `json:"live_mode"`
	CabinClass string                  `json:"cabin_class"`
	Passengers []OfferRequestPassenger `json:"passengers"`
	Offers     []offer.RawOffer        `json:"offers"`
}

// AdultPassengers returns n adult passenger entries.
func AdultPassengers(n int) []PassengerRequest {
	out := make([]PassengerRequest, n)
	for i := range out {
		out[i] = PassengerRequest{Type: "adult"}
	}
	return out
}

// CreateOfferRequest searches the provider and returns the offers inline.
func (c *Client) CreateOfferRequest(ctx context.Context, in OfferRequestInput) (*OfferRequest, error) {
	query := url.Values{"return_offers": {"true"}}

	var out OfferRequest
	if _, err := c.do(ctx, http.MethodPost, "/air/offer_requests", query, in, &out); err != nil {
		return nil, fmt.Errorf("create offer request: %w", err)
	}

	c.logger.Debug("offer request created",
		logger.Field{Key: "offer_request_id", Value: out.ID},
		logger.Field{Key: "offers", Value: len(out.Offers)},
	)
	return &out, nil
}

// GetOffer fetches the latest state of a single offer.
func (c *Client) GetOffer(ctx context.Context, id string) (*offer.RawOffer, error) {
	var out offer.RawOffer
	if _, err := c.do(ctx, http.MethodGet, "/air/offers/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get offer %s: %w", id, err)
	}
	return &out, nil
}
