package httpapi

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const loggerContextKey = "httpapi.logger"
const traceIDContextKey = "trace_id"
const maxMultipartBody = 100 * 1024 * 1024 // 100MB

// setupMiddleware installs the request pipeline: panic recovery, a
// structured access logger, CORS, security headers, trace-id assignment,
// and a body-size ceiling on multipart uploads.
func setupMiddleware(r *gin.Engine) {
	r.Use(recoveryMiddleware())
	r.Use(traceIDMiddleware())
	r.Use(accessLogMiddleware())
	r.Use(cors.New(corsConfig()))
	r.Use(securityHeadersMiddleware())
	r.Use(bodySizeLimitMiddleware())
}

// recoveryMiddleware recovers from panics in handlers, logs the cause
// with zerolog instead of gin's default stderr writer, and returns 500.
func recoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		logFromContext(c).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		sendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		c.Abort()
	})
}

// traceIDMiddleware honors an inbound X-Trace-Id or mints a fresh
// google/uuid one, echoes it back, and attaches a trace-scoped zerolog
// sublogger to the request context for every downstream handler to use.
func traceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Trace-Id")
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Header("X-Trace-Id", traceID)
		c.Set(traceIDContextKey, traceID)

		sublogger := log.With().Str("component", "httpapi").Str("trace_id", traceID).Logger()
		c.Set(loggerContextKey, &sublogger)
		c.Next()
	}
}

// accessLogMiddleware emits one structured log line per request.
func accessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logFromContext(c).Info().
			Str("client_ip", c.ClientIP()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("user_agent", c.Request.UserAgent()).
			Msg("request handled")
	}
}

// securityHeadersMiddleware sets the same conservative response headers
// the original server set.
func securityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Next()
	}
}

// bodySizeLimitMiddleware caps multipart uploads (cover/payload files)
// at 100MB so a malicious Content-Length can't exhaust server memory.
func bodySizeLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxMultipartBody)
		}
		c.Next()
	}
}

// corsConfig mirrors the original allow-list, extended with the
// key-file exchange header this API adds.
func corsConfig() cors.Config {
	return cors.Config{
		AllowOrigins: allowedOrigins(),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"X-CSRF-Token",
			"Authorization",
			"X-API-Key",
			"X-Trace-Id",
		},
		ExposeHeaders: []string{
			"Content-Disposition",
			"X-Key-File",
			"X-Secret-Size",
			"X-Processing-Time",
			"X-Trace-Id",
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func allowedOrigins() []string {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
}

// logFromContext returns the request's trace-scoped logger, falling
// back to the global logger if the trace-id middleware hasn't run (e.g.
// in a unit test that invokes a handler directly).
func logFromContext(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(loggerContextKey); ok {
		if l, ok := v.(*zerolog.Logger); ok {
			return l
		}
	}
	return &log.Logger
}
