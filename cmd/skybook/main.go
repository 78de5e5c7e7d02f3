package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"skybook/cfg"
	"skybook/internal/flight"
	"skybook/pkg/cache"
	"skybook/pkg/duffelclient"
	"skybook/pkg/idgen"
	"skybook/pkg/logger"
	"skybook/pkg/telemetry"
	"syscall"
	"time"

	_ "skybook/cmd/skybook/docs" // swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           Skybook Flight API
// @version         1.0
// @description     Search, filter and book flight offers.
// @BasePath        /
// @schemes         http
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Otel
	// ============
	shutdownOtel, err := telemetry.Init(context.Background(), config.Observability, zlogger)
	if err != nil {
		zlogger.Error("failed to initialize OpenTelemetry, continuing without tracing/metrics", logger.Field{Key: "error", Value: err})
		shutdownOtel = func(context.Context) error { return nil }
	}

	// ============
	// Cache
	// ============
	store := newStore(config.RedisConfig, zlogger)
	defer store.Close()

	// ============
	// IDs
	// ============
	ids, err := idgen.NewSnowflakeGenerator(config.SnowflakeNodeID)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout: time.Duration(config.DuffelConfig.TimeoutSeconds) * time.Second,
	}
	duffel := duffelclient.NewClient(httpClient, duffelclient.Config{
		BaseURL:       config.DuffelConfig.BaseURL,
		APIKey:        config.DuffelConfig.APIKey,
		Version:       config.DuffelConfig.Version,
		RatePerSecond: config.DuffelConfig.RatePerSecond,
		Burst:         config.DuffelConfig.Burst,
	}, zlogger)

	// ============
	// Internal Service
	// ============
	flightSvc := flight.NewService(duffel, store, ids, flight.Options{
		CacheTTLMinutes:        config.CacheTTLMinutes,
		AirportCacheTTLMinutes: config.AirportCacheTTLMinutes,
	}, zlogger)
	flightHandler := flight.NewFlightHandler(flightSvc, zlogger)

	// ============
	// HTTP
	// ============
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(config.Observability.ServiceName))
	r.Use(telemetry.TraceLoggerMiddleware(zlogger))
	r.Use(newCORS(config.CORSAllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "cache": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	flightHandler.RegisterRoutes(r)
	initSwagger(r)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlogger.Info("Starting server", logger.Field{Key: "addr", Value: server.Addr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zlogger.Info("Shutting down", logger.Field{Key: "signal", Value: sig.String()})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zlogger.Error("HTTP server shutdown error", logger.Field{Key: "error", Value: err})
	}
	if err := shutdownOtel(ctx); err != nil {
		zlogger.Error("failed to shutdown OpenTelemetry", logger.Field{Key: "error", Value: err})
	}
}

type cacheStore interface {
	cache.Cache
	Ping(ctx context.Context) error
	Close() error
}

// newStore connects to Redis. Without it the service still answers, it
// just queries the provider on every request.
func newStore(config cfg.RedisConfig, log logger.Client) cacheStore {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redis, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		Addr:     config.Addr(),
		Password: config.Password,
	})
	if err != nil {
		log.Error("Failed to connect to Redis, caching disabled",
			logger.Field{Key: "addr", Value: config.Addr()},
			logger.Field{Key: "error", Value: err},
		)
		return cache.NewNoOpCache()
	}

	log.Info("Redis cache enabled", logger.Field{Key: "addr", Value: config.Addr()})
	return redis
}

func newCORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "traceparent"}
	corsConfig.ExposeHeaders = []string{"X-Trace-Id"}
	return cors.New(corsConfig)
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>Skybook API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(http.StatusOK, html)
	})
}
