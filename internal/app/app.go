package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/promoworks/catalog-api/internal/config"
	handler "github.com/promoworks/catalog-api/internal/handler/http"
	"github.com/promoworks/catalog-api/internal/repository/jsonfile"
	"github.com/promoworks/catalog-api/internal/service"
	"github.com/promoworks/catalog-api/pkg/health"
	"github.com/promoworks/catalog-api/pkg/tracing"
)

const serviceName = "catalog-api"

// App wires together all dependencies and runs the catalog service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	repo            *jsonfile.Repository
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize tracing (no-op when disabled).
	tracingShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:  serviceName,
		Environment:  cfg.Environment,
		OTLPEndpoint: cfg.OTELEndpoint,
		SampleRate:   cfg.OTELSampleRate,
		Enabled:      cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// Load the catalog once at startup; requests share the immutable snapshot.
	repo := jsonfile.New(cfg.CatalogPath, logger)
	if err := repo.Reload(ctx); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	catalogService := service.NewCatalogService(repo, logger)

	healthHandler := health.NewHandler()
	healthHandler.Register("catalog", repo.Healthy)

	router := handler.NewRouter(catalogService, healthHandler, logger, handler.RouterConfig{
		ServiceName:    serviceName,
		Environment:    cfg.Environment,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		TracingEnabled: cfg.OTELEnabled,
		CacheMaxAge:    cfg.CacheMaxAgeSeconds,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		repo:            repo,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
// SIGHUP triggers an atomic catalog reload without interrupting requests.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	reloadCh := make(chan os.Signal, 1)
	signal.Notify(reloadCh, syscall.SIGHUP)
	defer signal.Stop(reloadCh)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("shutdown signal received")
			return a.Shutdown()
		case err := <-errCh:
			return err
		case <-reloadCh:
			a.logger.Info("reload signal received")
			if err := a.repo.Reload(ctx); err != nil {
				// Keep serving the previous snapshot.
				a.logger.Error("catalog reload failed", slog.String("error", err.Error()))
			}
		}
	}
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
