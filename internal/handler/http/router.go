package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/promoworks/catalog-api/internal/service"
	"github.com/promoworks/catalog-api/pkg/health"
	"github.com/promoworks/catalog-api/pkg/middleware"
)

// RouterConfig holds the router's cross-cutting settings.
type RouterConfig struct {
	ServiceName    string
	Environment    string
	AllowedOrigins []string
	TracingEnabled bool
	CacheMaxAge    int
}

// NewRouter creates a chi router with all catalog routes registered.
func NewRouter(
	catalogService *service.CatalogService,
	healthHandler *health.Handler,
	logger *slog.Logger,
	cfg RouterConfig,
) http.Handler {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.Environment = cfg.Environment
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg.AllowedOrigins = cfg.AllowedOrigins
	}

	// Global middleware. Request logging sets the correlation ID, tracing the
	// span context; RequestLogger builds the enriched request-scoped logger
	// from both, so order matters.
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	if cfg.TracingEnabled {
		r.Use(middleware.Tracing(cfg.ServiceName))
	}
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics(cfg.ServiceName))

	// Health and metrics endpoints.
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	// Catalog API endpoints.
	catalogHandler := NewCatalogHandler(catalogService, logger)

	r.Route("/api/products/{productId}", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		if cfg.CacheMaxAge > 0 {
			r.Use(middleware.CacheControl(cfg.CacheMaxAge))
		}

		r.Get("/", catalogHandler.GetProduct)
		r.Get("/variants/{variantId}", catalogHandler.GetVariant)
		r.Get("/variant-by-attributes", catalogHandler.GetVariantByAttributes)
		r.Post("/pricing", catalogHandler.CalculatePricing)
	})

	return r
}
