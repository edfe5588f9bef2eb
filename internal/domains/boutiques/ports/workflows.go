package ports

import (
	"context"

	storetypes "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application/types"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
)

// WorkflowOrchestrator runs store creation either inline or on a durable workflow engine.
type WorkflowOrchestrator interface {
	CreateStore(ctx context.Context, input storetypes.CreateStoreInput) (*domain.Store, error)
}
