package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/tair/barcode-inventory/pkg/logger"
)

// MiddlewareConfig holds configuration for middlewares
type MiddlewareConfig struct {
	EnableLogging   bool
	EnableCORS      bool
	EnableRecovery  bool
	EnableTimeout   bool
	TimeoutDuration time.Duration
	CORSOptions     cors.Options
}

// DefaultMiddlewareConfig returns default middleware configuration
func DefaultMiddlewareConfig() *MiddlewareConfig {
	return &MiddlewareConfig{
		EnableLogging:   true,
		EnableCORS:      true,
		EnableRecovery:  true,
		EnableTimeout:   true,
		TimeoutDuration: 30 * time.Second,
		CORSOptions: cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		},
	}
}

// RegisterMiddlewares registers all configured middlewares to the router
func RegisterMiddlewares(router *mux.Router, config *MiddlewareConfig) {
	// Recovery middleware (first - catches panics)
	if config.EnableRecovery {
		router.Use(RecoveryMiddleware())
	}

	// Timeout middleware (early - sets request timeout)
	if config.EnableTimeout {
		router.Use(TimeoutMiddleware(config.TimeoutDuration))
	}

	// Logging middleware (logs all requests)
	if config.EnableLogging {
		router.Use(LoggingMiddleware)
	}

	// Request ID middleware (for correlation)
	router.Use(RequestIDMiddleware())
}

// RecoveryMiddleware recovers from panics and returns 500 error
func RecoveryMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Logger.Error().
						Interface("panic", err).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("Panic recovered")

					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// TimeoutMiddleware sets a timeout for HTTP requests
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, "Request timeout")
	}
}

// LoggingMiddleware logs every request with method, path, status and duration
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		logger.Logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Str("request_id", w.Header().Get("X-Request-ID")).
			Msg("HTTP request")
	})
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}

			w.Header().Set("X-Request-ID", requestID)
			r.Header.Set("X-Request-ID", requestID)

			next.ServeHTTP(w, r)
		})
	}
}

// SetupCORS creates and configures CORS middleware
func SetupCORS(config *MiddlewareConfig) func(http.Handler) http.Handler {
	if !config.EnableCORS {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	c := cors.New(config.CORSOptions)
	return c.Handler
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
