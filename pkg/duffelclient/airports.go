package duffelclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"skybook/pkg/logger"
	"strconv"
)

const (
	airportPageSize = 200
	// upper bound on pages fetched; the provider lists a few thousand airports
	maxAirportPages = 100
)

type City struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	IATACode string `json:"iata_code,omitempty"`
}

type Airport struct {
	ID              string  `json:"id"`
	IATACode        string  `json:"iata_code"`
	ICAOCode        string  `json:"icao_code,omitempty"`
	Name            string  `json:"name"`
	CityName        string  `json:"city_name,omitempty"`
	IATACountryCode string  `json:"iata_country_code,omitempty"`
	TimeZone        string  `json:"time_zone,omitempty"`
	Latitude        float64 `json:"latitude,omitempty"`
	Longitude       float64 `json:"longitude,omitempty"`
	City            *City   `json:"city,omitempty"`
}

// ListAirports walks every page of the airport catalogue.
func (c *Client) ListAirports(ctx context.Context) ([]Airport, error) {
	var all []Airport
	after := ""

	for page := 0; page < maxAirportPages; page++ {
		query := url.Values{"limit": {strconv.Itoa(airportPageSize)}}
		if after != "" {
			query.Set("after", after)
		}

		var batch []Airport
		meta, err := c.do(ctx, http.MethodGet, "/air/airports", query, nil, &batch)
		if err != nil {
			return nil, fmt.Errorf("list airports: %w", err)
		}
		all = append(all, batch...)

		if meta == nil || meta.After == "" || len(batch) == 0 {
			return all, nil
		}
		after = meta.After
	}

	c.logger.Warn("airport listing truncated", logger.Field{Key: "airports", Value: len(all)})
	return all, nil
}
