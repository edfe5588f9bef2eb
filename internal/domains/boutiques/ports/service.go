package ports

import (
	"context"

	storetypes "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application/types"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
)

// Service exposes the boutique use cases to adapters (inbound/driving port).
type Service interface {
	List(ctx context.Context) ([]*domain.Store, error)
	FindByName(ctx context.Context, name string) ([]*domain.Store, error)
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
	SortByOpinion(ctx context.Context, input storetypes.OpinionRange) ([]*domain.Store, error)
	Create(ctx context.Context, input storetypes.CreateStoreInput) (*domain.Store, error)
	Update(ctx context.Context, input storetypes.UpdateStoreInput) (*domain.Store, error)
	Delete(ctx context.Context, id int64) error
}
