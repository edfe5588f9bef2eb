package boutiques

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	storetypes "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application/types"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/ports"
)

// CreateStoreActivityName persists a new store through the application service.
const CreateStoreActivityName = "boutiques.activities.CreateStore"

// Activities groups activities that operate on the boutiques bounded context.
type Activities struct {
	service ports.Service
}

// NewActivities wires the boutique service into the Temporal activities bundle.
func NewActivities(service ports.Service) *Activities {
	return &Activities{service: service}
}

// CreateStore stores a new boutique and returns it with its assigned id.
func (a *Activities) CreateStore(ctx context.Context, input storetypes.CreateStoreInput) (*domain.Store, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("store create activity not initialized")
		return nil, errors.New("store create activity not initialized")
	}
	logger.Info("CreateStore activity started", "placeholder", input.IsEmpty())
	store, err := a.service.Create(ctx, input)
	if err != nil {
		logger.Error("CreateStore activity failed", "error", err)
		return nil, err
	}
	logger.Info("CreateStore activity completed", "storeId", store.ID)
	return store, nil
}
