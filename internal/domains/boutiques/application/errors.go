package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/ports"
)

var (
	// ErrValidation signals a missing or malformed request parameter.
	ErrValidation = errors.New("validation failed")
	// ErrPersistence signals that persisting or flushing a change failed.
	ErrPersistence = errors.New("persistence failed")
	// ErrSerializationFormat signals an undecodable payload.
	ErrSerializationFormat = errors.New("malformed payload")
)

// ErrMissingName is returned by FindByName when the nom parameter is absent.
var ErrMissingName = fmt.Errorf("%w: Parameter nom is missing", ErrValidation)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrInvalidPostalCode) ||
		errors.Is(err, ports.ErrInvalidArgument) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return err
}

// persistenceError classifies a failed persist/flush. Not-found stays distinguishable.
func persistenceError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrNotFound) || errors.Is(err, ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
