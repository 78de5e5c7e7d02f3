package flight

import (
	"context"
	"skybook/pkg/duffelclient"
	"skybook/pkg/format"
	"skybook/pkg/logger"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// CreateBooking places an instant order for the selected offer, paid from
// the account balance. The order carries our own booking reference.
func (s *Service) CreateBooking(ctx context.Context, req BookingRequest) (*BookingResponse, error) {
	req.SelectedOfferID = strings.TrimSpace(req.SelectedOfferID)
	if req.SelectedOfferID == "" {
		return nil, validationError("selected offer id is required")
	}

	ref := s.ids.GenerateString()
	log := s.logger.With(
		logger.Field{Key: "booking_ref", Value: ref},
		logger.Field{Key: "offer_id", Value: req.SelectedOfferID},
	)
	log.Info("Creating booking")

	in := duffelclient.InstantBalanceOrder(req.SelectedOfferID, req.Passengers, req.Amount, req.Currency)
	in.Metadata = map[string]string{"booking_ref": ref}

	order, err := s.flightClient.CreateOrder(ctx, in)
	if err != nil {
		appErr := providerError("failed to create booking", err)
		s.metrics.recordProviderError(ctx, "booking", appErr.Code)
		log.Error("CreateOrder", logger.Field{Key: "error", Value: err})
		return nil, appErr
	}

	s.metrics.bookings.Add(ctx, 1, metric.WithAttributes(attribute.String("currency", order.TotalCurrency)))
	log.Info("Booking created", logger.Field{Key: "order_id", Value: order.ID})

	return &BookingResponse{
		BookingRef:       ref,
		OrderID:          order.ID,
		BookingReference: order.BookingReference,
		TotalAmount:      order.TotalAmount,
		TotalCurrency:    order.TotalCurrency,
		Price:            format.Price(order.TotalAmount, order.TotalCurrency),
		LiveMode:         order.LiveMode,
	}, nil
}
