package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/abgdnv/catalog/pkg/config"
	"github.com/abgdnv/catalog/pkg/metrics"
	"github.com/abgdnv/catalog/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// HTTPConfig has the configuration for the HTTP server.
type HTTPConfig struct {
	Port           int
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	ReadHeader     time.Duration
}

// NewHTTPServer creates and configures a new HTTP server instance.
func NewHTTPServer(cfg HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ReadHeaderTimeout: cfg.ReadHeader,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
}

// RouterOptions tunes the middleware chain built by NewChiRouter.
type RouterOptions struct {
	CORS config.CORSConfig
	// Metrics instruments every request when set.
	Metrics *metrics.Metrics
	// PanicMessage is the error text returned when a handler panics.
	PanicMessage string
}

// NewChiRouter creates a new Chi router with a set of middleware for request ID
// injection, structured logging, recovery, CORS and optional metrics.
func NewChiRouter(logger *slog.Logger, opts RouterOptions) *chi.Mux {
	panicMessage := opts.PanicMessage
	if panicMessage == "" {
		panicMessage = http.StatusText(http.StatusInternalServerError)
	}

	mux := chi.NewRouter()
	mux.Use(web.RequestIDInjector)
	mux.Use(web.StructuredLogger(logger))
	mux.Use(web.Recoverer(logger, panicMessage))
	if opts.Metrics != nil {
		mux.Use(opts.Metrics.Middleware)
	}
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORS.AllowedOrigins,
		AllowedMethods:   opts.CORS.AllowedMethods,
		AllowedHeaders:   opts.CORS.AllowedHeaders,
		AllowCredentials: false,
		MaxAge:           int(opts.CORS.MaxAge.Seconds()),
	}))
	return mux
}
