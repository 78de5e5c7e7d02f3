package duffelclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"skybook/pkg/logger"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
)

const DefaultVersion = "v2"

var tracer = otel.Tracer("skybook/duffelclient")

type Config struct {
	BaseURL string
	APIKey  string
	Version string
	// RatePerSecond and Burst bound outgoing calls; zero disables limiting.
	RatePerSecond float64
	Burst         int
}

// Client talks to the flight-data provider's REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	version    string
	limiter    *rate.Limiter
	logger     logger.Client
}

func NewClient(httpClient *http.Client, cfg Config, log logger.Client) *Client {
	version := cfg.Version
	if version == "" {
		version = DefaultVersion
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		version:    version,
		limiter:    limiter,
		logger:     log,
	}
}

// envelope is the provider's response wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta *pageMeta       `json:"meta,omitempty"`
}

type pageMeta struct {
	After  string `json:"after"`
	Before string `json:"before"`
	Limit  int    `json:"limit"`
}

// do sends one request and decodes the "data" member into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) (*pageMeta, error) {
	ctx, span := tracer.Start(ctx, method+" "+path)
	defer span.End()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(map[string]any{"data": body})
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		c.logger.Error("failed to build provider request", logger.Field{Key: "error", Value: err})
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Duffel-Version", c.version)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return nil, fmt.Errorf("external api call failed: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeAPIError(resp)
		span.SetStatus(codes.Error, apiErr.Error())
		c.logger.Warn("provider returned error",
			logger.Field{Key: "path", Value: path},
			logger.Field{Key: "status", Value: resp.StatusCode},
			logger.Field{Key: "code", Value: apiErr.Code},
		)
		return nil, apiErr
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("failed to decode provider data: %w", err)
		}
	}
	return env.Meta, nil
}
