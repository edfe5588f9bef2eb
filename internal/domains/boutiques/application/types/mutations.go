package types

// CreateStoreInput carries optional caller-supplied fields for a new store.
// Nil fields keep the placeholder values.
type CreateStoreInput struct {
	Name       *string
	Address    *string
	City       *string
	PostalCode *int32
}

// IsEmpty reports whether no field was supplied.
func (in CreateStoreInput) IsEmpty() bool {
	return in.Name == nil && in.Address == nil && in.City == nil && in.PostalCode == nil
}

// UpdateStoreInput targets an existing store. A nil Opinion applies the default rating.
type UpdateStoreInput struct {
	ID      int64
	Opinion *int32
}
