package duffelclient

import (
	"context"
	"fmt"
	"net/http"
	"skybook/pkg/logger"
)

type OrderPassenger struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	GivenName         string `json:"given_name"`
	FamilyName        string `json:"family_name"`
	Gender            string `json:"gender"`
	BornOn            string `json:"born_on"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phone_number"`
	InfantPassengerID string `json:"infant_passenger_id,omitempty"`
}

type Payment struct {
	Type     string `json:"type"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type OrderInput struct {
	Type           string            `json:"type"`
	SelectedOffers []string          `json:"selected_offers"`
	Passengers     []OrderPassenger  `json:"passengers"`
	Payments       []Payment         `json:"payments,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type Order struct {
	ID               string            `json:"id"`
	BookingReference string            `json:"booking_reference"`
	TotalAmount      string            `json:"total_amount"`
	TotalCurrency    string            `json:"total_currency"`
	CreatedAt        string            `json:"created_at"`
	LiveMode         bool              `json:"live_mode"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}

// InstantBalanceOrder books offerID right away, paid from the account balance.
func InstantBalanceOrder(offerID string, passengers []OrderPassenger, amount, currency string) OrderInput {
	return OrderInput{
		Type:           "instant",
		SelectedOffers: []string{offerID},
		Passengers:     passengers,
		Payments:       []Payment{{Type: "balance", Amount: amount, Currency: currency}},
	}
}

func (c *Client) CreateOrder(ctx context.Context, in OrderInput) (*Order, error) {
	var out Order
	if _, err := c.do(ctx, http.MethodPost, "/air/orders", nil, in, &out); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	c.logger.Info("order created",
		logger.Field{Key: "order_id", Value: out.ID},
		logger.Field{Key: "booking_reference", Value: out.BookingReference},
	)
	return &out, nil
}
