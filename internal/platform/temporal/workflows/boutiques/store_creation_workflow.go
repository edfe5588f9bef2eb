package boutiques

import (
	"go.temporal.io/sdk/workflow"

	storetypes "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application/types"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
	"github.com/Apurer/go-gin-boutique-api/internal/platform/temporal/sequences"
)

const (
	// StoreCreationWorkflowName is the public identifier for registering the workflow.
	StoreCreationWorkflowName = "boutiques.workflows.Creation"
	// StoreCreationTaskQueue is the queue consumed by the worker processing store workflows.
	StoreCreationTaskQueue = "BOUTIQUE_CREATION"
)

// StoreCreationWorkflowInput captures the payload required to create a store.
type StoreCreationWorkflowInput struct {
	Command storetypes.CreateStoreInput
	TraceID string
}

// StoreCreationWorkflow orchestrates the activities needed to persist a store.
func StoreCreationWorkflow(ctx workflow.Context, input StoreCreationWorkflowInput) (*domain.Store, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("StoreCreationWorkflow started", withTraceID(input.TraceID)...)
	store, err := sequences.RunStorePersistenceSequence(ctx, input.Command)
	if err != nil {
		logger.Error("StoreCreationWorkflow failed", withTraceID(input.TraceID, "error", err)...)
		return nil, err
	}
	logger.Info("StoreCreationWorkflow completed", withTraceID(input.TraceID, "storeId", store.ID)...)
	return store, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
