// Package app contains the application setup for the catalog service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/catalog/internal/config"
	"github.com/abgdnv/catalog/internal/service"
	"github.com/abgdnv/catalog/internal/store"
	"github.com/abgdnv/catalog/internal/transport/rest"
	"github.com/abgdnv/catalog/pkg/messaging"
	"github.com/abgdnv/catalog/pkg/metrics"
	"github.com/abgdnv/catalog/pkg/server"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// ServiceName labels metrics and prefixes environment variables.
const ServiceName = "catalog"

type Dependencies struct {
	ProductService service.ProductService
	Store          store.ProductStore
	Metrics        *metrics.Metrics
	Logger         *slog.Logger
}

// SetupDependencies creates a store holding the startup catalog and the service on top of it.
func SetupDependencies(publisher messaging.Publisher, logger *slog.Logger) (*Dependencies, error) {
	seed, err := store.SeedProducts(store.NanoID)
	if err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}
	productStore := store.NewInMemoryStore(store.WithSeed(seed))
	logger.Info("Catalog seeded", slog.Int("products", len(seed)))

	m := metrics.New(ServiceName)
	m.Register(catalogSizeGauge(productStore))

	return &Dependencies{
		ProductService: service.NewService(productStore, publisher, logger),
		Store:          productStore,
		Metrics:        m,
		Logger:         logger,
	}, nil
}

// catalogSizeGauge reports how many products the store currently holds.
func catalogSizeGauge(s store.ProductStore) prometheus.Collector {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "catalog_products",
		Help:        "Number of products in the catalog",
		ConstLabels: prometheus.Labels{"service": ServiceName},
	}, func() float64 {
		products, err := s.FindAll(context.Background())
		if err != nil {
			return 0
		}
		return float64(len(products))
	})
}

// SetupHttpHandler builds the router with middleware and all catalog routes.
// Used by tests to exercise the full HTTP stack without a listener.
func SetupHttpHandler(deps *Dependencies, cfg *config.Config) http.Handler {
	opts := server.RouterOptions{
		CORS:         cfg.CORS,
		PanicMessage: rest.MsgInternalError,
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = deps.Metrics
	}
	mux := server.NewChiRouter(deps.Logger, opts)
	wireRoutes(mux, deps, cfg)
	return mux
}

// wireRoutes sets up the HTTP routes for the catalog service.
func wireRoutes(mux *chi.Mux, deps *Dependencies, cfg *config.Config) {
	if cfg.Metrics.Enabled {
		mux.Method(http.MethodGet, cfg.Metrics.Path, deps.Metrics.Handler())
	}
	productHandler := rest.NewHandler(deps.ProductService, deps.Logger)
	productHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the catalog service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps, cfg)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
