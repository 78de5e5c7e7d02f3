package telemetry

import (
	"skybook/pkg/logger"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

const loggerKey = "logger"

// TraceLoggerMiddleware stamps a request-scoped logger with the trace and
// span ids of the active span and logs request completion. It must run
// after the otelgin middleware.
func TraceLoggerMiddleware(log logger.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := log
		span := trace.SpanFromContext(c.Request.Context())
		if sc := span.SpanContext(); sc.IsValid() {
			traceID := sc.TraceID().String()
			c.Set("trace_id", traceID)
			c.Set("span_id", sc.SpanID().String())
			c.Header("X-Trace-Id", traceID)

			reqLog = log.With(
				logger.Field{Key: "trace_id", Value: traceID},
				logger.Field{Key: "span_id", Value: sc.SpanID().String()},
			)
		}
		c.Set(loggerKey, reqLog)

		start := time.Now()
		c.Next()

		reqLog.Info("request completed",
			logger.Field{Key: "method", Value: c.Request.Method},
			logger.Field{Key: "path", Value: c.FullPath()},
			logger.Field{Key: "status", Value: c.Writer.Status()},
			logger.Field{Key: "latency_ms", Value: time.Since(start).Milliseconds()},
		)
	}
}

// LoggerFrom returns the request-scoped logger, or fallback outside a
// traced request.
func LoggerFrom(c *gin.Context, fallback logger.Client) logger.Client {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(logger.Client); ok {
			return l
		}
	}
	return fallback
}
