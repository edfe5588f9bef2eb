package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	boutiqueserver "github.com/Apurer/go-gin-boutique-api/go"
	storeobs "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/observability"
	storepostgres "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/persistence/postgres"
	storesqlite "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/persistence/sqlite"
	storeworkflows "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/workflows"
	storeapp "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application"
	storeports "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/ports"
	platformobservability "github.com/Apurer/go-gin-boutique-api/internal/platform/observability"
	platformsqlite "github.com/Apurer/go-gin-boutique-api/internal/platform/sqlite"
)

// Run boots the boutique HTTP API with observability, repositories, and workflows wired.
// It returns when ctx is cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	instruments, shutdown, err := platformobservability.Init(ctx, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	storeRepo, cleanupRepo := BuildStoreRepository(ctx, cfg, logger)
	defer cleanupRepo()
	storeService := NewStoreService(storeRepo, instruments)

	workflows, closeWorkflows := NewStoreWorkflows(cfg, storeRepo, storeService, instruments)
	defer closeWorkflows()

	handlers := boutiqueserver.ApiHandleFunctions{
		BoutiqueAPI: boutiqueserver.NewBoutiqueAPI(storeService, workflows),
	}
	router := NewEngine(cfg.ServiceName, logger)
	boutiqueserver.NewRouterWithGinEngine(router, handlers)

	server := &http.Server{Addr: cfg.Addr(), Handler: router, ReadHeaderTimeout: 10 * time.Second}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Boutique API listening", slog.String("addr", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Boutique API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("Boutique API shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

// NewEngine builds the gin engine with recovery, tracing, and request logging installed
// ahead of any route.
func NewEngine(serviceName string, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(serviceName), boutiqueserver.RequestLogger(logger))
	return router
}

// NewStoreService decorates the core boutique service with the process instruments.
func NewStoreService(repo storeports.Repository, instruments *platformobservability.Instruments) storeports.Service {
	return storeobs.New(
		storeapp.NewService(repo),
		storeobs.WithLogger(effectiveLogger(instruments)),
		storeobs.WithTracer(instruments.Tracer("internal.boutiques.application")),
		storeobs.WithMeter(instruments.Meter("internal.boutiques.application")),
	)
}

// NewStoreWorkflows routes store creation through Temporal when a worker would persist into the
// same repository as this process. Otherwise stores are created inline.
func NewStoreWorkflows(cfg Config, repo storeports.Repository, service storeports.Service, instruments *platformobservability.Instruments) (storeports.WorkflowOrchestrator, func()) {
	logger := effectiveLogger(instruments)
	inline := storeworkflows.NewInlineStoreWorkflows(service)
	if !sharesStoreRepository(cfg, repo) {
		logger.Warn("store repository is local to this process, creating stores inline")
		return inline, func() {}
	}
	temporalClient, err := ConnectTemporalClient(cfg, instruments)
	if err != nil {
		logger.Warn("Temporal workflows unavailable, creating stores inline", slog.String("error", err.Error()))
		return inline, func() {}
	}
	logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	return storeworkflows.NewTemporalStoreWorkflows(temporalClient), temporalClient.Close
}

// sharesStoreRepository reports whether another process opening cfg reaches the same stores as repo.
func sharesStoreRepository(cfg Config, repo storeports.Repository) bool {
	switch repo.(type) {
	case *storepostgres.Repository:
		return true
	case *storesqlite.Repository:
		return cfg.SQLitePath != platformsqlite.MemoryPath
	default:
		return false
	}
}

// ConnectTemporalClient dials Temporal with tracing and structured logging, unless disabled.
func ConnectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
