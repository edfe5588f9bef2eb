package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/go-gin-boutique-api/internal/app/api"
	platformobservability "github.com/Apurer/go-gin-boutique-api/internal/platform/observability"
	storeactivities "github.com/Apurer/go-gin-boutique-api/internal/platform/temporal/activities/boutiques"
	storeworkflows "github.com/Apurer/go-gin-boutique-api/internal/platform/temporal/workflows/boutiques"
)

func main() {
	ctx := context.Background()
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	serviceName := cfg.ServiceName + "-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	storeRepo, cleanupRepo := api.BuildStoreRepository(ctx, cfg, logger)
	defer cleanupRepo()
	storeActivities := storeactivities.NewActivities(api.NewStoreService(storeRepo, instruments))

	if cfg.TemporalDisabled {
		logger.Error("TEMPORAL_DISABLED is set; the worker has nothing to do")
		os.Exit(1)
	}
	temporalClient, err := api.ConnectTemporalClient(cfg, instruments)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, storeworkflows.StoreCreationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(storeworkflows.StoreCreationWorkflow, workflow.RegisterOptions{Name: storeworkflows.StoreCreationWorkflowName})
	w.RegisterActivityWithOptions(storeActivities.CreateStore, activity.RegisterOptions{Name: storeactivities.CreateStoreActivityName})

	logger.Info("worker listening", slog.String("taskQueue", storeworkflows.StoreCreationTaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
