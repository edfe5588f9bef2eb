package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory store persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	stores map[int64]*domain.Store
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{stores: map[int64]*domain.Store{}}
}

func (r *Repository) List(_ context.Context) ([]*domain.Store, error) {
	return r.filter(func(*domain.Store) bool { return true }), nil
}

func (r *Repository) FindByName(_ context.Context, name string) ([]*domain.Store, error) {
	if name == "" {
		return nil, ports.ErrInvalidArgument
	}
	return r.filter(func(s *domain.Store) bool { return s.Name == name }), nil
}

func (r *Repository) FindByOpinionRange(_ context.Context, min, max int32) ([]*domain.Store, error) {
	return r.filter(func(s *domain.Store) bool { return s.HasOpinionBetween(min, max) }), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	store, ok := r.stores[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return store.Clone(), nil
}

// Save inserts stores without an id and replaces existing ones. Ids are never reused.
func (r *Repository) Save(_ context.Context, store *domain.Store) (*domain.Store, error) {
	if store == nil {
		return nil, errors.New("store is nil")
	}
	clone := store.Clone()
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		if err := clone.AssignID(r.nextID); err != nil {
			return nil, err
		}
	} else if _, ok := r.stores[clone.ID]; !ok {
		return nil, ports.ErrNotFound
	}
	r.stores[clone.ID] = clone
	return clone.Clone(), nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stores[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.stores, id)
	return nil
}

// Seed stores a fully formed store under its own id, used by contract tests.
func (r *Repository) Seed(store *domain.Store) {
	clone := store.Clone()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores[clone.ID] = clone
	if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
}

// Reset drops every store but keeps the id counter so ids stay unique.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores = map[int64]*domain.Store{}
}

func (r *Repository) filter(keep func(*domain.Store) bool) []*domain.Store {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Store, 0, len(r.stores))
	for _, store := range r.stores {
		if keep(store) {
			list = append(list, store.Clone())
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}
