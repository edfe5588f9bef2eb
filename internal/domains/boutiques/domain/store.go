package domain

import (
	"errors"
	"strings"
)

// Placeholder values used when a store is created without a payload.
const (
	PlaceholderName       = "Test creation"
	PlaceholderAddress    = "3 Rue Paris"
	PlaceholderCity       = "Paris"
	PlaceholderPostalCode = 75001

	// DefaultOpinion is applied by updates that do not carry an opinion.
	DefaultOpinion int32 = 10
)

var (
	ErrEmptyName         = errors.New("store name is required")
	ErrInvalidPostalCode = errors.New("postal code must be greater or equal to zero")
	ErrImmutableID       = errors.New("store id cannot be changed once assigned")
)

// Store models a retail location (boutique).
type Store struct {
	ID         int64
	Name       string
	Address    string
	City       string
	PostalCode int32
	// Opinion stays nil until an update rates the store.
	Opinion *int32
}

// NewStore validates and constructs a Store that has not been persisted yet.
func NewStore(name, address, city string, postalCode int32) (*Store, error) {
	s := &Store{Address: address, City: city}
	if err := s.Rename(name); err != nil {
		return nil, err
	}
	if err := s.Relocate(address, city, postalCode); err != nil {
		return nil, err
	}
	return s, nil
}

// NewPlaceholderStore returns the store persisted by a create request without payload.
func NewPlaceholderStore() *Store {
	return &Store{
		Name:       PlaceholderName,
		Address:    PlaceholderAddress,
		City:       PlaceholderCity,
		PostalCode: PlaceholderPostalCode,
	}
}

// Rename changes the store name.
func (s *Store) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	s.Name = name
	return nil
}

// Relocate replaces the postal address.
func (s *Store) Relocate(address, city string, postalCode int32) error {
	if postalCode < 0 {
		return ErrInvalidPostalCode
	}
	s.Address = address
	s.City = city
	s.PostalCode = postalCode
	return nil
}

// Rate sets the opinion score.
func (s *Store) Rate(opinion int32) {
	s.Opinion = &opinion
}

// AssignID sets the identity handed out by the persistence layer.
func (s *Store) AssignID(id int64) error {
	if s.ID != 0 && s.ID != id {
		return ErrImmutableID
	}
	s.ID = id
	return nil
}

// HasOpinionBetween reports whether the store is rated within [min, max].
func (s *Store) HasOpinionBetween(min, max int32) bool {
	if s.Opinion == nil || min > max {
		return false
	}
	return *s.Opinion >= min && *s.Opinion <= max
}

// Clone returns a deep copy so adapters never share the opinion pointer.
func (s *Store) Clone() *Store {
	if s == nil {
		return nil
	}
	clone := *s
	if s.Opinion != nil {
		opinion := *s.Opinion
		clone.Opinion = &opinion
	}
	return &clone
}
