package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	storetypes "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application/types"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
	storeactivities "github.com/Apurer/go-gin-boutique-api/internal/platform/temporal/activities/boutiques"
)

// PersistOptions runs the create activity exactly once; a failed flush is reported, never replayed.
var PersistOptions = workflow.ActivityOptions{
	StartToCloseTimeout: 30 * time.Second,
	RetryPolicy: &temporal.RetryPolicy{
		MaximumAttempts: 1,
	},
}

// RunStorePersistenceSequence executes the activities needed to persist a store.
func RunStorePersistenceSequence(ctx workflow.Context, input storetypes.CreateStoreInput) (*domain.Store, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("store persistence sequence started", "placeholder", input.IsEmpty())

	var store domain.Store
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, PersistOptions), storeactivities.CreateStoreActivityName, input).Get(ctx, &store)
	if err != nil {
		logger.Error("store persistence sequence failed", "error", err)
		return nil, err
	}
	logger.Info("store persistence sequence persisted", "storeId", store.ID)
	return &store, nil
}
