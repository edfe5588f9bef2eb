package application

import (
	"context"

	storetypes "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application/types"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/ports"
)

// Service orchestrates the boutique use cases.
type Service struct {
	repo ports.Repository
}

// NewService wires the boutique service with its repository.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// List returns every persisted store.
func (s *Service) List(ctx context.Context) ([]*domain.Store, error) {
	stores, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return stores, nil
}

// FindByName returns the stores whose name matches exactly.
func (s *Service) FindByName(ctx context.Context, name string) ([]*domain.Store, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	stores, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, mapError(err)
	}
	return stores, nil
}

// GetByID loads a single store.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	store, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return store, nil
}

// SortByOpinion returns the stores rated within the inclusive range.
func (s *Service) SortByOpinion(ctx context.Context, input storetypes.OpinionRange) ([]*domain.Store, error) {
	if input.Min > input.Max {
		return []*domain.Store{}, nil
	}
	stores, err := s.repo.FindByOpinionRange(ctx, input.Min, input.Max)
	if err != nil {
		return nil, mapError(err)
	}
	return stores, nil
}

// Create persists a new store. An empty input produces the placeholder store.
func (s *Service) Create(ctx context.Context, input storetypes.CreateStoreInput) (*domain.Store, error) {
	store, err := buildStore(input)
	if err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, store)
	if err != nil {
		return nil, persistenceError(err)
	}
	return saved, nil
}

// Update rates an existing store, defaulting to domain.DefaultOpinion.
func (s *Service) Update(ctx context.Context, input storetypes.UpdateStoreInput) (*domain.Store, error) {
	store, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	opinion := domain.DefaultOpinion
	if input.Opinion != nil {
		opinion = *input.Opinion
	}
	store.Rate(opinion)
	saved, err := s.repo.Save(ctx, store)
	if err != nil {
		return nil, persistenceError(err)
	}
	return saved, nil
}

// Delete removes a store.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return persistenceError(err)
	}
	return nil
}

func buildStore(input storetypes.CreateStoreInput) (*domain.Store, error) {
	store := domain.NewPlaceholderStore()
	if input.IsEmpty() {
		return store, nil
	}
	if input.Name != nil {
		if err := store.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	address, city, postalCode := store.Address, store.City, store.PostalCode
	if input.Address != nil {
		address = *input.Address
	}
	if input.City != nil {
		city = *input.City
	}
	if input.PostalCode != nil {
		postalCode = *input.PostalCode
	}
	if err := store.Relocate(address, city, postalCode); err != nil {
		return nil, err
	}
	return store, nil
}

var _ ports.Service = (*Service)(nil)
