package mapper

import (
	storetypes "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application/types"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
)

// Store represents the transport-layer shape used by the HTTP handlers.
type Store struct {
	ID         int64
	Name       string
	Address    string
	City       string
	PostalCode int32
	Opinion    *int32
}

// StorePayload carries the optional fields accepted on creation.
type StorePayload struct {
	Name       *string
	Address    *string
	City       *string
	PostalCode *int32
}

// FromDomainStore converts a domain store to the transport representation.
func FromDomainStore(store *domain.Store) Store {
	if store == nil {
		return Store{}
	}
	clone := store.Clone()
	return Store{
		ID:         clone.ID,
		Name:       clone.Name,
		Address:    clone.Address,
		City:       clone.City,
		PostalCode: clone.PostalCode,
		Opinion:    clone.Opinion,
	}
}

// FromDomainStores converts a list, preserving order.
func FromDomainStores(stores []*domain.Store) []Store {
	result := make([]Store, 0, len(stores))
	for _, store := range stores {
		if store == nil {
			continue
		}
		result = append(result, FromDomainStore(store))
	}
	return result
}

// ToCreateInput maps a creation payload onto the application command.
func ToCreateInput(payload StorePayload) storetypes.CreateStoreInput {
	return storetypes.CreateStoreInput{
		Name:       payload.Name,
		Address:    payload.Address,
		City:       payload.City,
		PostalCode: payload.PostalCode,
	}
}

// ToUpdateInput maps an update request onto the application command.
func ToUpdateInput(id int64, opinion *int32) storetypes.UpdateStoreInput {
	return storetypes.UpdateStoreInput{ID: id, Opinion: opinion}
}
