package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
)

var (
	ErrNotFound = errors.New("store not found")
	// ErrInvalidArgument is returned for lookups the caller should have rejected.
	ErrInvalidArgument = errors.New("invalid repository argument")
)

// Repository persists stores and exposes the lookups used by the API.
// Save and Delete flush before returning.
type Repository interface {
	List(ctx context.Context) ([]*domain.Store, error)
	FindByName(ctx context.Context, name string) ([]*domain.Store, error)
	FindByOpinionRange(ctx context.Context, min, max int32) ([]*domain.Store, error)
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
	Save(ctx context.Context, store *domain.Store) (*domain.Store, error)
	Delete(ctx context.Context, id int64) error
}
