package repository

import (
	"context"
	"errors"

	"campus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when no location matches a lookup.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines persistence operations for locations.
type LocationRepository interface {
	// FindAll returns every location ordered by name.
	FindAll(ctx context.Context) ([]*entity.Location, error)

	// FindByID returns the location with the given ID or ErrLocationNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// Create persists a new location. A duplicate name yields domainerrors.ErrLocationNameExists.
	Create(ctx context.Context, location *entity.Location) error
}
