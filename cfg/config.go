package cfg

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

type DuffelConfig struct {
	BaseURL        string
	APIKey         string
	Version        string
	TimeoutSeconds int
	RatePerSecond  float64
	Burst          int
}

type ObservabilityConfig struct {
	Enabled      bool
	OTLPEndpoint string
	ServiceName  string
	Environment  string
}

type Config struct {
	AppEnv                 string
	AppPort                string
	RedisConfig            RedisConfig
	DuffelConfig           DuffelConfig
	Observability          ObservabilityConfig
	CacheTTLMinutes        int
	AirportCacheTTLMinutes int
	SnowflakeNodeID        int64
	CORSAllowOrigins       []string
}

// Load reads the environment, optionally seeded from a .env file, and
// reports every missing or malformed variable at once.
func Load() (*Config, error) {
	var errs []error

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)
	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)
	redisPassword := optionalEnv("REDIS_PASSWORD", "")

	duffelBaseURL := mustEnv("DUFFEL_BASE_URL", &errs)
	duffelAPIKey := mustEnv("DUFFEL_API_KEY", &errs)
	duffelVersion := optionalEnv("DUFFEL_API_VERSION", "v2")
	duffelTimeout := intEnv("DUFFEL_TIMEOUT_SECONDS", 10, &errs)
	duffelRPS := floatEnv("DUFFEL_RATE_LIMIT_RPS", 5, &errs)
	duffelBurst := intEnv("DUFFEL_RATE_LIMIT_BURST", 10, &errs)

	cacheTTLMinutes := intEnv("CACHE_TTL_MINUTES", 15, &errs)
	airportCacheTTLMinutes := intEnv("AIRPORT_CACHE_TTL_MINUTES", 1440, &errs)
	nodeID := intEnv("SNOWFLAKE_NODE_ID", 1, &errs)

	otelEnabled := boolEnv("OTEL_ENABLED", false, &errs)
	otelEndpoint := optionalEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	if otelEnabled && otelEndpoint == "" {
		errs = append(errs, errors.New("missing env: OTEL_EXPORTER_OTLP_ENDPOINT"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		RedisConfig: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: redisPassword,
		},
		DuffelConfig: DuffelConfig{
			BaseURL:        duffelBaseURL,
			APIKey:         duffelAPIKey,
			Version:        duffelVersion,
			TimeoutSeconds: duffelTimeout,
			RatePerSecond:  duffelRPS,
			Burst:          duffelBurst,
		},
		Observability: ObservabilityConfig{
			Enabled:      otelEnabled,
			OTLPEndpoint: otelEndpoint,
			ServiceName:  optionalEnv("OTEL_SERVICE_NAME", "skybook"),
			Environment:  appEnv,
		},
		CacheTTLMinutes:        cacheTTLMinutes,
		AirportCacheTTLMinutes: airportCacheTTLMinutes,
		SnowflakeNodeID:        int64(nodeID),
		CORSAllowOrigins:       splitList(optionalEnv("CORS_ALLOW_ORIGINS", "*")),
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func optionalEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int, errs *[]error) int {
	raw := optionalEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return v
}

func floatEnv(key string, fallback float64, errs *[]error) float64 {
	raw := optionalEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return v
}

func boolEnv(key string, fallback bool, errs *[]error) bool {
	raw := optionalEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
