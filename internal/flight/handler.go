package flight

import (
	"errors"
	"net/http"
	"skybook/pkg/logger"
	"skybook/pkg/telemetry"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service *Service
	logger  logger.Client
}

func NewFlightHandler(s *Service, log logger.Client) *FlightHandler {
	return &FlightHandler{
		service: s,
		logger:  log,
	}
}

func (h *FlightHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/v1/flights/search", h.SearchFlightsHandler)
	router.POST("/v1/flights/filter", h.FilterFlightsHandler)
	router.GET("/v1/offers/:id", h.GetOfferHandler)
	router.GET("/v1/airports", h.SearchAirportsHandler)
	router.POST("/v1/bookings", h.CreateBookingHandler)
}

// SearchFlightsHandler godoc
// @Summary      Search flights
// @Description  Query the provider for offers and return them unfiltered, cheapest first
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search Criteria"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /v1/flights/search [post]
func (h *FlightHandler) SearchFlightsHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeValidation,
		})
		return
	}

	response, err := h.service.SearchFlights(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// FilterFlightsHandler godoc
// @Summary      Filter existing flight results
// @Description  Apply price range, airline and stop filters and a sort order to a search
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body FilterRequest true "Filter Criteria"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/flights/filter [post]
func (h *FlightHandler) FilterFlightsHandler(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format: " + err.Error(),
			"code":  ErrorCodeValidation,
		})
		return
	}

	response, err := h.service.FilterFlights(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetOfferHandler godoc
// @Summary      Offer detail
// @Tags         offers
// @Produce      json
// @Param        id path string true "Offer ID"
// @Success      200 {object} OfferResponse
// @Failure      404 {object} map[string]string
// @Router       /v1/offers/{id} [get]
func (h *FlightHandler) GetOfferHandler(c *gin.Context) {
	summary, err := h.service.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, OfferResponse{Data: *summary})
}

// SearchAirportsHandler godoc
// @Summary      Airport autocomplete
// @Tags         airports
// @Produce      json
// @Param        query query string true "Name, code, city or country"
// @Param        limit query int false "Maximum results"
// @Success      200 {object} AirportResponse
// @Router       /v1/airports [get]
func (h *FlightHandler) SearchAirportsHandler(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(c, validationError("limit must be a number"))
			return
		}
		limit = n
	}

	airports, err := h.service.SearchAirports(c.Request.Context(), c.Query("query"), limit)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, AirportResponse{Data: airports})
}

// CreateBookingHandler godoc
// @Summary      Book an offer
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body BookingRequest true "Booking"
// @Success      201 {object} BookingResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/bookings [post]
func (h *FlightHandler) CreateBookingHandler(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeValidation,
		})
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// fail logs err on the request logger and writes the error response.
func (h *FlightHandler) fail(c *gin.Context, err error) {
	log := telemetry.LoggerFrom(c, h.logger)

	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status < http.StatusInternalServerError {
		log.Warn("Request rejected", logger.Field{Key: "path", Value: c.FullPath()}, logger.Field{Key: "error", Value: err})
	} else {
		log.Error("Request failed", logger.Field{Key: "path", Value: c.FullPath()}, logger.Field{Key: "error", Value: err})
	}

	sendError(c, err)
}

func sendError(c *gin.Context, err error) {
	var appErr *AppError

	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	// Default to 500 for unknown errors
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}
